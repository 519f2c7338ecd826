// SPDX-License-Identifier: MIT
// Package experiment: run configuration.
//
// Config is plain data so it decodes straight from YAML. Every loader starts
// from DefaultConfig, so a file only needs the keys it wants to change.

package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/linear/linalg"
	"gopkg.in/yaml.v3"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTrials is the number of trials per experiment.
	DefaultTrials = 10
	// DefaultSize is the matrix side and vector dimension.
	DefaultSize = 3
	// DefaultKind is the element kind of random operands.
	DefaultKind = "int"
	// DefaultScalarLow and DefaultScalarHigh bound random scalars (inclusive).
	DefaultScalarLow  = -20
	DefaultScalarHigh = 20
)

// Config controls a run.
type Config struct {
	// Trials per experiment; at least 1.
	Trials int `yaml:"trials"`
	// Size is the side of square operands and the dimension of vectors.
	// Symmetric experiments draw their side from [2, Size].
	Size int `yaml:"size"`
	// Kind is "int" or "float".
	Kind string `yaml:"kind"`
	// ScalarLow and ScalarHigh bound the integer scalars k (inclusive);
	// ScalarHigh-ScalarLow must stay below math.MaxInt.
	ScalarLow  int `yaml:"scalar_low"`
	ScalarHigh int `yaml:"scalar_high"`
	// Seed is the base seed; experiment i of a RunAll uses Seed+i.
	Seed int64 `yaml:"seed"`
	// Experiments selects what RunAll runs; empty means all.
	Experiments []string `yaml:"experiments,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Trials:     DefaultTrials,
		Size:       DefaultSize,
		Kind:       DefaultKind,
		ScalarLow:  DefaultScalarLow,
		ScalarHigh: DefaultScalarHigh,
	}
}

// Validate reports the first invalid field, wrapped around ErrInvalidConfig.
// Unknown experiment names match ErrUnknownExperiment instead.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return configErrorf("trials", "must be >= 1, got %d", c.Trials)
	}
	if c.Size < linalg.MinDimension {
		return configErrorf("size", "must be >= %d, got %d", linalg.MinDimension, c.Size)
	}
	if _, err := linalg.ParseElementKind(c.Kind); err != nil {
		return configErrorf("kind", "%q is not int or float", c.Kind)
	}
	if c.ScalarLow > c.ScalarHigh {
		return configErrorf("scalar_low", "%d exceeds scalar_high %d", c.ScalarLow, c.ScalarHigh)
	}
	if d := c.ScalarHigh - c.ScalarLow; d < 0 || d == math.MaxInt {
		return configErrorf("scalar_low", "range %d..%d is too wide", c.ScalarLow, c.ScalarHigh)
	}
	if c.ScalarLow == 0 && c.ScalarHigh == 0 {
		return configErrorf("scalar_low", "scalar range must contain a non-zero value")
	}
	for _, name := range c.Experiments {
		if _, err := Lookup(name); err != nil {
			return err
		}
	}
	return nil
}

// elementKind returns the parsed Kind; c must be valid.
func (c Config) elementKind() linalg.ElementKind {
	k, _ := linalg.ParseElementKind(c.Kind)
	return k
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected. Empty input yields DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("yaml unmarshal: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
