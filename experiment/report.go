// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report summarizes one run of one experiment.
type Report struct {
	Name   string `yaml:"name"`
	RunID  string `yaml:"run_id"`
	Trials int    `yaml:"trials"`
	Passed int    `yaml:"passed"`
	// MaxDeviation is the largest observed distance from the expected value,
	// for experiments that measure one.
	MaxDeviation float64  `yaml:"max_deviation,omitempty"`
	Details      []string `yaml:"details,omitempty"`
}

// Failed returns the number of trials in which the law did not hold.
func (r Report) Failed() int { return r.Trials - r.Passed }

// Holds reports whether every trial passed.
func (r Report) Holds() bool { return r.Trials > 0 && r.Passed == r.Trials }

// String renders a one-line summary.
func (r Report) String() string {
	verdict := "holds"
	if !r.Holds() {
		verdict = "does not hold"
	}
	return fmt.Sprintf("%s: %d/%d trials passed, law %s", r.Name, r.Passed, r.Trials, verdict)
}

// EncodeYAML writes reports as a YAML sequence.
func EncodeYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return enc.Close()
}
