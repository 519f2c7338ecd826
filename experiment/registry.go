// SPDX-License-Identifier: MIT
// Package experiment: registry and runners.
//
// Purpose:
//   - Map experiment names to their trial functions.
//   - Drive the trial loop (context checks, pass counting, run IDs).
//   - Run several experiments concurrently with independent sources.

package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Experiment is a registered, named law check.
type Experiment struct {
	Name        string
	Description string
	trial       trialFunc
}

// trialFunc runs trial i and reports whether the law held.
type trialFunc func(env *trialEnv, i int) (bool, error)

var registry = map[string]Experiment{
	"distributivity": {
		Name:        "distributivity",
		Description: "k(M1+M2) == kM1 + kM2",
		trial:       distributivityTrial,
	},
	"trace-linearity": {
		Name:        "trace-linearity",
		Description: "tr(M1+M2) == tr M1 + tr M2 and tr(kM) == k tr M",
		trial:       traceLinearityTrial,
	},
	"symmetric-add": {
		Name:        "symmetric-add",
		Description: "the sum of symmetric matrices is symmetric",
		trial:       symmetricTrial(symAdd),
	},
	"symmetric-mul": {
		Name:        "symmetric-mul",
		Description: "the product of symmetric matrices is symmetric",
		trial:       symmetricTrial(symMul),
	},
	"symmetric-hadamard": {
		Name:        "symmetric-hadamard",
		Description: "the Hadamard product of symmetric matrices is symmetric",
		trial:       symmetricTrial(symHadamard),
	},
	"dot-commutativity": {
		Name:        "dot-commutativity",
		Description: "a·b == b·a",
		trial:       dotCommutativityTrial,
	},
	"dot-sign": {
		Name:        "dot-sign",
		Description: "scaling both operands keeps the sign of a·b; scaling one flips it iff k < 0",
		trial:       dotSignTrial,
	},
	"identity": {
		Name:        "identity",
		Description: "M × I == I × M == M",
		trial:       identityTrial,
	},
	"circle-transform": {
		Name:        "circle-transform",
		Description: "unit circle points post-multiplied by T land on the image ellipse",
		trial:       circleTransformTrial,
	},
}

// Names returns the registered experiment names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the experiment registered under name.
func Lookup(name string) (Experiment, error) {
	e, ok := registry[name]
	if !ok {
		return Experiment{}, fmt.Errorf("%q: %w", name, ErrUnknownExperiment)
	}
	return e, nil
}

// Run validates cfg and runs the named experiment with r as its only source
// of randomness.
func Run(ctx context.Context, name string, cfg Config, r *rand.Rand) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	e, err := Lookup(name)
	if err != nil {
		return Report{}, err
	}
	return e.Run(ctx, cfg, r)
}

// Run executes cfg.Trials trials. ctx is checked before each trial; on
// cancellation the context error is returned and no Report is produced.
// cfg must already be valid.
func (e Experiment) Run(ctx context.Context, cfg Config, r *rand.Rand) (Report, error) {
	env := &trialEnv{cfg: cfg, kind: cfg.elementKind(), rng: r}
	rep := Report{Name: e.Name, RunID: uuid.New().String(), Trials: cfg.Trials}

	for i := 0; i < cfg.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("%s: trial %d: %w", e.Name, i, err)
		}
		ok, err := e.trial(env, i)
		if err != nil {
			return Report{}, fmt.Errorf("%s: trial %d: %w", e.Name, i, err)
		}
		if ok {
			rep.Passed++
		}
	}
	rep.MaxDeviation = env.maxDev
	rep.Details = env.details

	return rep, nil
}

// RunAll runs cfg.Experiments (all registered experiments when empty)
// concurrently. Experiment i gets its own source seeded with cfg.Seed+i, so
// results depend only on cfg. Reports come back in selection order. The
// first error cancels the remaining runs.
func RunAll(ctx context.Context, cfg Config) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	names := cfg.Experiments
	if len(names) == 0 {
		names = Names()
	}

	reports := make([]Report, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		e, _ := Lookup(name)
		g.Go(func() error {
			r := rand.New(rand.NewSource(cfg.Seed + int64(i))) //nolint:gosec // experiments, not security
			rep, err := e.Run(gctx, cfg, r)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
