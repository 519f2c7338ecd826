// SPDX-License-Identifier: MIT

// Package dense converts between linalg values and gonum's mat types, so
// results can be handed to (or cross-checked against) a BLAS-backed
// implementation.
//
// Real conversions reject complex elements with linalg.ErrTypeKind; use
// ComplexMatrix to keep the imaginary parts. Conversions from gonum copy
// their input, and the usual linalg shape rules apply (at least two columns
// per row, at least two elements per vector).
package dense

import (
	"fmt"

	"github.com/katalvlaran/linear/linalg"
	"github.com/katalvlaran/linear/number"
	"gonum.org/v1/gonum/mat"
)

// FromMatrix returns m as a *mat.Dense.
// Errors: linalg.ErrTypeKind if m is nil or holds a complex element.
func FromMatrix(m *linalg.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("dense.FromMatrix: %w", linalg.ErrTypeKind)
	}
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range m.RowVectors() {
		if !row.IsReal() {
			return nil, fmt.Errorf("dense.FromMatrix: complex element: %w", linalg.ErrTypeKind)
		}
		for _, e := range row.All() {
			data = append(data, e.Re())
		}
	}
	return mat.NewDense(r, c, data), nil
}

// ToMatrix copies any gonum real matrix into a linalg.Matrix.
// Errors: linalg.ErrTypeKind for nil; linalg.ErrDimension for a single
// column.
func ToMatrix(a mat.Matrix) (*linalg.Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("dense.ToMatrix: %w", linalg.ErrTypeKind)
	}
	r, c := a.Dims()
	rows := make([]*linalg.Vector, r)
	for i := range rows {
		elems := make([]number.Number, c)
		for j := range elems {
			elems[j] = number.Real(a.At(i, j))
		}
		v, err := linalg.NewVector(elems...)
		if err != nil {
			return nil, fmt.Errorf("dense.ToMatrix: row %d: %w", i, err)
		}
		rows[i] = v
	}
	return linalg.NewMatrix(rows...)
}

// ComplexMatrix returns m as a *mat.CDense. Real elements get a zero
// imaginary part.
func ComplexMatrix(m *linalg.Matrix) (*mat.CDense, error) {
	if m == nil {
		return nil, fmt.Errorf("dense.ComplexMatrix: %w", linalg.ErrTypeKind)
	}
	r, c := m.Rows(), m.Cols()
	data := make([]complex128, 0, r*c)
	for _, row := range m.RowVectors() {
		for _, e := range row.All() {
			data = append(data, e.Complex128())
		}
	}
	return mat.NewCDense(r, c, data), nil
}

// FromComplex copies a gonum complex matrix into a linalg.Matrix whose
// elements are all Complex.
func FromComplex(a mat.CMatrix) (*linalg.Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("dense.FromComplex: %w", linalg.ErrTypeKind)
	}
	r, c := a.Dims()
	rows := make([]*linalg.Vector, r)
	for i := range rows {
		elems := make([]number.Number, c)
		for j := range elems {
			elems[j] = number.FromComplex(a.At(i, j))
		}
		v, err := linalg.NewVector(elems...)
		if err != nil {
			return nil, fmt.Errorf("dense.FromComplex: row %d: %w", i, err)
		}
		rows[i] = v
	}
	return linalg.NewMatrix(rows...)
}

// FromVector returns v as a *mat.VecDense.
// Errors: linalg.ErrTypeKind if v is nil or complex.
func FromVector(v *linalg.Vector) (*mat.VecDense, error) {
	if v == nil || !v.IsReal() {
		return nil, fmt.Errorf("dense.FromVector: %w", linalg.ErrTypeKind)
	}
	data := make([]float64, 0, v.Dimension())
	for _, e := range v.All() {
		data = append(data, e.Re())
	}
	return mat.NewVecDense(len(data), data), nil
}

// ToVector copies a gonum vector into a linalg.Vector.
// Errors: linalg.ErrTypeKind for nil; linalg.ErrDimension for length < 2.
func ToVector(x mat.Vector) (*linalg.Vector, error) {
	if x == nil {
		return nil, fmt.Errorf("dense.ToVector: %w", linalg.ErrTypeKind)
	}
	elems := make([]number.Number, x.Len())
	for i := range elems {
		elems[i] = number.Real(x.AtVec(i))
	}
	v, err := linalg.NewVector(elems...)
	if err != nil {
		return nil, fmt.Errorf("dense.ToVector: %w", err)
	}
	return v, nil
}
