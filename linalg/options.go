// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for the random factories.
// This file defines:
//   - RandomOption / randomOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRandomOptions helper (internal) that fills the defaults.
//
// Design goals:
//   - No global state: every factory call owns its randomness source.
//   - Reproducibility is opt-in: inject a seeded *rand.Rand via WithRand.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package linalg

import (
	"math"
	"math/rand"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultIntLow and DefaultIntHigh bound integer samples (both inclusive).
	DefaultIntLow  = -100
	DefaultIntHigh = 100

	// DefaultFloatLow and DefaultFloatHigh bound float samples: [low, high).
	DefaultFloatLow  = -100.0
	DefaultFloatHigh = 100.0
)

// RandomOption configures RandomVector and RandomMatrix.
type RandomOption func(*randomOptions)

type randomOptions struct {
	rng     *rand.Rand
	intLo   int
	intHi   int
	floatLo float64
	floatHi float64
}

// WithRand injects the randomness source. Pass a seeded source for
// reproducible samples. Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("linalg: WithRand(nil)")
	}
	return func(o *randomOptions) { o.rng = r }
}

// WithIntBounds overrides the inclusive integer range. Panics if lo > hi
// or if the range holds more than math.MaxInt values, i.e. hi-lo must be
// below math.MaxInt.
func WithIntBounds(lo, hi int) RandomOption {
	if lo > hi {
		panic("linalg: WithIntBounds: lo > hi")
	}
	if d := hi - lo; d < 0 || d == math.MaxInt {
		panic("linalg: WithIntBounds: range too wide")
	}
	return func(o *randomOptions) { o.intLo, o.intHi = lo, hi }
}

// WithFloatBounds overrides the half-open float range [lo, hi).
// Panics if lo > hi, either bound is NaN/±Inf, or hi-lo overflows to +Inf.
func WithFloatBounds(lo, hi float64) RandomOption {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		panic("linalg: WithFloatBounds: bounds must be finite")
	}
	if lo > hi {
		panic("linalg: WithFloatBounds: lo > hi")
	}
	if math.IsInf(hi-lo, 0) {
		panic("linalg: WithFloatBounds: range too wide")
	}
	return func(o *randomOptions) { o.floatLo, o.floatHi = lo, hi }
}

// gatherRandomOptions applies opts over the defaults. Without WithRand a
// fresh time-seeded source is created for this call only.
func gatherRandomOptions(opts []RandomOption) randomOptions {
	o := randomOptions{
		intLo:   DefaultIntLow,
		intHi:   DefaultIntHigh,
		floatLo: DefaultFloatLow,
		floatHi: DefaultFloatHigh,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not for security
	}
	return o
}
