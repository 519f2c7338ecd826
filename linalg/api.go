// SPDX-License-Identifier: MIT
// Package linalg: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks (free-function forms of the
//     methods, constructors by size, symmetric helpers).
//   - Avoid any logic duplication: each facade delegates to the canonical
//     method and only adds an operation tag to errors.

package linalg

import "github.com/katalvlaran/linear/number"

// Identity returns I_n. n must be at least MinDimension (ErrDimension).
func Identity(n int) (*Matrix, error) {
	if n < MinDimension {
		return nil, linalgErrorf(opIdentityOfDim, ErrDimension)
	}
	return identity(n), nil
}

// Sum is a free-function alias for a.Add(b).
func Sum(a, b *Matrix) (*Matrix, error) { return a.Add(b) }

// Product is a free-function alias for a.Mul(b).
func Product(a, b *Matrix) (*Matrix, error) { return a.Mul(b) }

// T is an alias for m.Transpose().
func T(m *Matrix) (*Matrix, error) { return m.Transpose() }

// Dot is a free-function alias for a.Dot(b).
func Dot(a, b *Vector) (number.Number, error) { return a.Dot(b) }

// Symmetrize returns m + mᵀ, which is symmetric for any square m.
// Errors: ErrNonSquare for rectangular m.
func Symmetrize(m *Matrix) (*Matrix, error) {
	if err := validateSquare(m); err != nil {
		return nil, linalgErrorf(opSymmetrize, err)
	}
	mt, err := m.Transpose()
	if err != nil {
		return nil, linalgErrorf(opSymmetrize, err)
	}
	sum, err := m.Add(mt)
	if err != nil {
		return nil, linalgErrorf(opSymmetrize, err)
	}
	return sum, nil
}
