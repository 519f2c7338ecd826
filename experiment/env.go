// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/linear/linalg"
	"github.com/katalvlaran/linear/number"
)

// maxDetails caps the notes kept per run.
const maxDetails = 5

// trialEnv is the state shared by the trials of one run. It is owned by a
// single goroutine.
type trialEnv struct {
	cfg     Config
	kind    linalg.ElementKind
	rng     *rand.Rand
	details []string
	maxDev  float64
}

// square draws an n×n matrix of the configured kind.
func (e *trialEnv) square(n int) (*linalg.Matrix, error) {
	return linalg.RandomMatrix(n, n, e.kind, linalg.WithRand(e.rng))
}

// vector draws a vector of dimension cfg.Size.
func (e *trialEnv) vector() (*linalg.Vector, error) {
	return linalg.RandomVector(e.cfg.Size, e.kind, linalg.WithRand(e.rng))
}

// scalar draws an integer from [ScalarLow, ScalarHigh].
func (e *trialEnv) scalar() int {
	return e.cfg.ScalarLow + e.rng.Intn(e.cfg.ScalarHigh-e.cfg.ScalarLow+1)
}

// nonZeroScalar draws until the scalar is non-zero. Validate guarantees
// the range holds one.
func (e *trialEnv) nonZeroScalar() number.Number {
	for {
		if k := e.scalar(); k != 0 {
			return number.Int(k)
		}
	}
}

// side draws a matrix side from [MinDimension, cfg.Size].
func (e *trialEnv) side() int {
	return linalg.MinDimension + e.rng.Intn(e.cfg.Size-linalg.MinDimension+1)
}

// note records a detail line, keeping only the first few.
func (e *trialEnv) note(format string, args ...any) {
	if len(e.details) < maxDetails {
		e.details = append(e.details, fmt.Sprintf(format, args...))
	}
}

// observe tracks the largest deviation seen.
func (e *trialEnv) observe(dev float64) {
	if dev > e.maxDev {
		e.maxDev = dev
	}
}
