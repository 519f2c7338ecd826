// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers.
//
// Purpose:
//   - Small fixtures to build Vectors and Matrices from int/float literals.
//   - Seeded randomness so property tests are reproducible.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linear/linalg"
	"github.com/katalvlaran/linear/number"
)

// propertySeed drives every randomized test in the package.
const propertySeed = 20240601

// propertyTrials is the number of random cases per property.
const propertyTrials = 50

// vec builds a real Vector from ints or fails the test.
func vec(t *testing.T, xs ...int) *linalg.Vector {
	t.Helper()
	v, err := linalg.NewVector(number.Ints(xs...)...)
	if err != nil {
		t.Fatalf("NewVector(%v): %v", xs, err)
	}
	return v
}

// fvec builds a real Vector from floats or fails the test.
func fvec(t *testing.T, xs ...float64) *linalg.Vector {
	t.Helper()
	v, err := linalg.NewVector(number.Reals(xs...)...)
	if err != nil {
		t.Fatalf("NewVector(%v): %v", xs, err)
	}
	return v
}

// mat builds a Matrix from int rows or fails the test.
func mat(t *testing.T, rows ...[]int) *linalg.Matrix {
	t.Helper()
	vs := make([]*linalg.Vector, len(rows))
	for i, r := range rows {
		vs[i] = vec(t, r...)
	}
	m, err := linalg.NewMatrix(vs...)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

// newRand returns a deterministic source for property tests.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(propertySeed))
}

// randomSquare draws an n×n integer Matrix from r or fails the test.
func randomSquare(t *testing.T, r *rand.Rand, n int) *linalg.Matrix {
	t.Helper()
	m, err := linalg.RandomMatrix(n, n, linalg.ElementInt, linalg.WithRand(r))
	if err != nil {
		t.Fatalf("RandomMatrix(%d,%d): %v", n, n, err)
	}
	return m
}
