// SPDX-License-Identifier: MIT
// Package linalg: Matrix kernels.
//
// Purpose:
//   - Row-wise Add/Sub/Scale built on the Vector layer.
//   - Matrix products (Mul, MatVec, PostMultiply, Hadamard) and the Multiply
//     dispatcher.
//   - Structural transforms: Identity, Shift, Transpose, HermitianTranspose,
//     Diagonal, Trace.
//
// Notes:
//   - Every kernel validates first, then allocates exactly one result.
//   - Row-pair failures from the Vector layer are re-tagged with the Matrix op
//     while keeping the sentinel (errors.Is still matches).

package linalg

import "github.com/katalvlaran/linear/number"

// Add returns m + other, adding corresponding rows.
// Errors: ErrTypeKind (nil receiver or other), ErrDimension (row count or
// column mismatch; the latter surfaces from Vector.Add).
// Complexity: O(rows·cols).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := validateMatrixOperand(m, other); err != nil {
		return nil, linalgErrorf(opMatrixAdd, err)
	}
	out, err := m.mapRows(func(i int, r *Vector) (*Vector, error) {
		return r.Add(other.rows[i])
	})
	if err != nil {
		return nil, linalgErrorf(opMatrixAdd, err)
	}
	return out, nil
}

// Sub returns m − other, defined as m.Add(other.ScaleBy(-1)).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, linalgErrorf(opMatrixSub, ErrTypeKind)
	}
	out, err := m.Add(other.ScaleBy(number.Int(-1)))
	if err != nil {
		return nil, linalgErrorf(opMatrixSub, err)
	}
	return out, nil
}

// ScaleBy returns k·m.
func (m *Matrix) ScaleBy(k number.Number) *Matrix {
	out := make([]*Vector, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Scale(k)
	}
	return &Matrix{rows: out, cols: m.cols}
}

// PostMultiply right-multiplies every row by t: row i of the result is
// m.Row(i) × t. This equals the matrix product m × t.
// Errors: ErrTypeKind (nil receiver or t), ErrDimension (t.Rows() != m.Cols()).
func (m *Matrix) PostMultiply(t *Matrix) (*Matrix, error) {
	if m == nil || t == nil {
		return nil, linalgErrorf(opPostMultiply, ErrTypeKind)
	}
	out, err := m.mapRows(func(_ int, r *Vector) (*Vector, error) {
		return r.VecMat(t)
	})
	if err != nil {
		return nil, linalgErrorf(opPostMultiply, err)
	}
	return out, nil
}

// Scale dispatches on k's tag: a scalar scales every row, a matrix
// post-multiplies every row (see PostMultiply). Anything else fails with
// ErrTypeKind.
func (m *Matrix) Scale(k Value) (*Matrix, error) {
	if err := validateMatrix(m); err != nil {
		return nil, linalgErrorf(opMatrixScale, err)
	}
	switch k.Kind() {
	case KindScalar:
		s, _ := k.AsScalar()
		return m.ScaleBy(s), nil
	case KindMatrix:
		t, ok := k.AsMatrix()
		if !ok {
			break
		}
		out, err := m.PostMultiply(t)
		if err != nil {
			return nil, linalgErrorf(opMatrixScale, err)
		}
		return out, nil
	}

	return nil, linalgErrorf(opMatrixScale, ErrTypeKind)
}

// Mul returns the standard product m × other:
//
//	out[i][j] = dot(m.Row(i), other.Column(j))
//
// Errors: ErrTypeKind (nil receiver or other), ErrDimension
// (other.Rows() != m.Cols()).
// Complexity: O(r·n·c).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m == nil || other == nil {
		return nil, linalgErrorf(opMatrixMul, ErrTypeKind)
	}
	if len(other.rows) != m.cols {
		return nil, linalgErrorf(opMatrixMul, ErrDimension)
	}

	// Synthesize the columns of other once.
	cols := make([][]number.Number, other.cols)
	for j := range cols {
		cols[j] = other.column(j)
	}
	out := make([]*Vector, len(m.rows))
	for i, r := range m.rows {
		row := make([]number.Number, other.cols)
		for j, c := range cols {
			row[j] = dot(r.elems, c)
		}
		out[i] = fromTrusted(row)
	}

	return &Matrix{rows: out, cols: other.cols}, nil
}

// MatVec returns the column product m × v, whose i-th element is
// dot(m.Row(i), v).
// Errors: ErrTypeKind (nil receiver or v); ErrDimension if
// m.Cols() != v.Dimension() or if m has a single row (the result would be a 1-element Vector).
func (m *Matrix) MatVec(v *Vector) (*Vector, error) {
	if m == nil || v == nil {
		return nil, linalgErrorf(opMatVec, ErrTypeKind)
	}
	if m.cols != v.Dimension() {
		return nil, linalgErrorf(opMatVec, ErrDimension)
	}
	out := make([]number.Number, len(m.rows))
	for i, r := range m.rows {
		out[i] = dot(r.elems, v.elems)
	}
	res, err := NewVector(out...)
	if err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	return res, nil
}

// Multiply dispatches on the operand's tag:
//   - matrix → Mul, returned as a matrix Value;
//   - vector → MatVec, returned as a vector Value;
//   - anything else → Scale, returned as a matrix Value.
func (m *Matrix) Multiply(operand Value) (Value, error) {
	if err := validateMatrix(m); err != nil {
		return Value{}, linalgErrorf(opMatrixMultip, err)
	}
	switch operand.Kind() {
	case KindMatrix:
		if other, ok := operand.AsMatrix(); ok {
			out, err := m.Mul(other)
			if err != nil {
				return Value{}, linalgErrorf(opMatrixMultip, err)
			}
			return MatrixValue(out), nil
		}
	case KindVector:
		if v, ok := operand.AsVector(); ok {
			out, err := m.MatVec(v)
			if err != nil {
				return Value{}, linalgErrorf(opMatrixMultip, err)
			}
			return VectorValue(out), nil
		}
	}

	out, err := m.Scale(operand)
	if err != nil {
		return Value{}, linalgErrorf(opMatrixMultip, err)
	}
	return MatrixValue(out), nil
}

// Hadamard returns the element-wise product m ⊙ other.
// Errors: ErrTypeKind (nil receiver or other), ErrDimension (shape mismatch).
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if err := validateSameShape(m, other); err != nil {
		return nil, linalgErrorf(opHadamard, err)
	}
	out := make([]*Vector, len(m.rows))
	for i, r := range m.rows {
		row := make([]number.Number, m.cols)
		for j := range row {
			row[j] = r.elems[j].Mul(other.rows[i].elems[j])
		}
		out[i] = fromTrusted(row)
	}
	return &Matrix{rows: out, cols: m.cols}, nil
}

// Identity returns the identity matrix with m's dimensions: ones on the
// diagonal, zeros elsewhere.
// Errors: ErrNonSquare (matches ErrTypeKind) for a rectangular m.
func (m *Matrix) Identity() (*Matrix, error) {
	if err := validateSquare(m); err != nil {
		return nil, linalgErrorf(opIdentity, err)
	}
	return identity(m.cols), nil
}

// identity builds I_n; n >= MinDimension.
func identity(n int) *Matrix {
	out := make([]*Vector, n)
	for i := range out {
		row := make([]number.Number, n)
		for j := range row {
			row[j] = number.Zero
		}
		row[i] = number.One
		out[i] = fromTrusted(row)
	}
	return &Matrix{rows: out, cols: n}
}

// Shift returns m + k·I.
// Errors: ErrNonSquare via Identity.
func (m *Matrix) Shift(k number.Number) (*Matrix, error) {
	id, err := m.Identity()
	if err != nil {
		return nil, linalgErrorf(opShift, err)
	}
	out, err := m.Add(id.ScaleBy(k))
	if err != nil {
		return nil, linalgErrorf(opShift, err)
	}
	return out, nil
}

// Transpose returns mᵀ: row j of the result is column j of m, so the
// result has Cols() rows and Rows() columns. No conjugation is applied.
// Errors: ErrDimension for a 1-row matrix (its columns cannot form Vectors).
func (m *Matrix) Transpose() (*Matrix, error) {
	return m.transpose(false, opTranspose)
}

// HermitianTranspose returns the conjugate transpose mᴴ. Every element of
// the result is Complex, including those that started out Real.
// Errors: as Transpose.
func (m *Matrix) HermitianTranspose() (*Matrix, error) {
	return m.transpose(true, opHermitian)
}

func (m *Matrix) transpose(conj bool, tag string) (*Matrix, error) {
	if err := validateMatrix(m); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	if len(m.rows) < MinDimension {
		return nil, linalgErrorf(tag, ErrDimension)
	}
	out := make([]*Vector, m.cols)
	for j := range out {
		col := m.column(j)
		if conj {
			for i := range col {
				col[i] = col[i].Conj()
			}
		}
		out[j] = fromTrusted(col)
	}
	return &Matrix{rows: out, cols: len(m.rows)}, nil
}

// Diagonal returns the Vector of elements at (i, i) for i in [0, Rows()).
// Errors: ErrDimension when Rows() > Cols() (the diagonal would run past
// the last column) or Rows() == 1 (a 1-element diagonal is not a Vector).
func (m *Matrix) Diagonal() (*Vector, error) {
	if err := validateMatrix(m); err != nil {
		return nil, linalgErrorf(opDiagonal, err)
	}
	if len(m.rows) > m.cols {
		return nil, linalgErrorf(opDiagonal, ErrDimension)
	}
	out := make([]number.Number, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.elems[i]
	}
	v, err := NewVector(out...)
	if err != nil {
		return nil, linalgErrorf(opDiagonal, err)
	}
	return v, nil
}

// Trace returns the sum of the diagonal.
// Errors: ErrNonSquare for a rectangular m.
func (m *Matrix) Trace() (number.Number, error) {
	if err := validateSquare(m); err != nil {
		return number.Number{}, linalgErrorf(opTrace, err)
	}
	d, err := m.Diagonal()
	if err != nil {
		return number.Number{}, linalgErrorf(opTrace, err)
	}
	return number.Sum(d.elems...), nil
}

// IsSymmetric reports whether m equals its transpose within
// DefaultTolerance. Rectangular and 1-row matrices are never symmetric.
func (m *Matrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	t, err := m.Transpose()
	if err != nil {
		return false
	}
	return m.Equal(t)
}
