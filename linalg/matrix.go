// SPDX-License-Identifier: MIT

package linalg

import (
	"strings"

	"github.com/katalvlaran/linear/number"
)

// Matrix is an immutable, ordered collection of row Vectors of equal
// dimension. It always has at least one row and at least MinDimension
// columns. Column Vectors produced for multiplication are fresh copies,
// never aliases into the rows.
type Matrix struct {
	rows []*Vector // len >= 1, every row has dimension == cols
	cols int
}

// NewMatrix builds a Matrix from one or more row Vectors.
//
// Errors:
//   - ErrInvalidArgument if no rows are given.
//   - ErrTypeKind if any row is nil or the row dimensions differ.
//
// The row slice is copied; the Vectors themselves are immutable and shared.
func NewMatrix(rows ...*Vector) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, linalgErrorf(opNewMatrix, ErrInvalidArgument)
	}
	for _, r := range rows {
		if r == nil {
			return nil, linalgErrorf(opNewMatrix, ErrTypeKind)
		}
	}
	cols := rows[0].Dimension()
	for _, r := range rows[1:] {
		if r.Dimension() != cols {
			return nil, linalgErrorf(opNewMatrix, ErrTypeKind)
		}
	}
	cp := make([]*Vector, len(rows))
	copy(cp, rows)

	return &Matrix{rows: cp, cols: cols}, nil
}

// MatrixOf builds a Matrix from a loosely typed input: a single *Vector
// (yielding a 1×n matrix), a []*Vector, or a []any whose items are all
// *Vector.
//
// Errors:
//   - ErrInvalidArgument for nil, a nil *Vector, or an empty collection.
//   - ErrTypeKind for any other input type or a non-Vector item.
func MatrixOf(rows any) (*Matrix, error) {
	switch x := rows.(type) {
	case nil:
		return nil, linalgErrorf(opMatrixOf, ErrInvalidArgument)
	case *Vector:
		if x == nil {
			return nil, linalgErrorf(opMatrixOf, ErrInvalidArgument)
		}
		return NewMatrix(x)
	case []*Vector:
		return NewMatrix(x...)
	case []any:
		if len(x) == 0 {
			return nil, linalgErrorf(opMatrixOf, ErrInvalidArgument)
		}
		vs := make([]*Vector, len(x))
		for i, item := range x {
			v, ok := item.(*Vector)
			if !ok {
				return nil, linalgErrorf(opMatrixOf, ErrTypeKind)
			}
			vs[i] = v
		}
		return NewMatrix(vs...)
	default:
		return nil, linalgErrorf(opMatrixOf, ErrTypeKind)
	}
}

// MustMatrix is NewMatrix for literals; it panics on error.
func MustMatrix(rows ...*Vector) *Matrix {
	m, err := NewMatrix(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns (the dimension of every row).
func (m *Matrix) Cols() int { return m.cols }

// IsSquare reports Rows() == Cols().
func (m *Matrix) IsSquare() bool { return len(m.rows) == m.cols }

// Row returns row i, or ErrOutOfRange.
func (m *Matrix) Row(i int) (*Vector, error) {
	if err := validateMatrix(m); err != nil {
		return nil, linalgErrorf(opMatrixRow, err)
	}
	if err := validateIndex(i, len(m.rows)); err != nil {
		return nil, linalgErrorf(opMatrixRow, err)
	}
	return m.rows[i], nil
}

// Column returns a fresh Vector holding column j.
// Errors: ErrOutOfRange; ErrDimension for a 1-row matrix, whose columns
// are too short to form a Vector.
func (m *Matrix) Column(j int) (*Vector, error) {
	if err := validateMatrix(m); err != nil {
		return nil, linalgErrorf(opMatrixColumn, err)
	}
	if err := validateIndex(j, m.cols); err != nil {
		return nil, linalgErrorf(opMatrixColumn, err)
	}
	v, err := NewVector(m.column(j)...)
	if err != nil {
		return nil, linalgErrorf(opMatrixColumn, err)
	}
	return v, nil
}

// column copies column j into a new slice; j must be valid.
func (m *Matrix) column(j int) []number.Number {
	out := make([]number.Number, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.elems[j]
	}
	return out
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) (number.Number, error) {
	if err := validateMatrix(m); err != nil {
		return number.Number{}, linalgErrorf(opMatrixAt, err)
	}
	if err := validateIndex(i, len(m.rows)); err != nil {
		return number.Number{}, linalgErrorf(opMatrixAt, err)
	}
	if err := validateIndex(j, m.cols); err != nil {
		return number.Number{}, linalgErrorf(opMatrixAt, err)
	}
	return m.rows[i].elems[j], nil
}

// RowVectors returns the rows in order. The slice is a copy.
func (m *Matrix) RowVectors() []*Vector {
	out := make([]*Vector, len(m.rows))
	copy(out, m.rows)
	return out
}

// Equal reports whether other has the same number of rows and every row
// pair is Vector-equal (same tolerance). A nil other is never equal.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.EqualWithin(other, DefaultTolerance)
}

// EqualWithin is Equal with an explicit absolute tolerance.
func (m *Matrix) EqualWithin(other *Matrix, tol float64) bool {
	if m == nil || other == nil {
		return false
	}
	if len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].EqualWithin(other.rows[i], tol) {
			return false
		}
	}
	return true
}

// String renders "Matrix:" followed by one parenthesized row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteString("Matrix:\n")
	for _, r := range m.rows {
		b.WriteString(r.tuple())
		b.WriteByte('\n')
	}
	return b.String()
}

// mapRows applies f to every row and assembles the results.
// The first error aborts and is returned as-is.
func (m *Matrix) mapRows(f func(i int, r *Vector) (*Vector, error)) (*Matrix, error) {
	out := make([]*Vector, len(m.rows))
	for i, r := range m.rows {
		v, err := f(i, r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewMatrix(out...)
}
