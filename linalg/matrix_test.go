// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/linear/linalg"
	"github.com/katalvlaran/linear/number"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix_Creation(t *testing.T) {
	t.Parallel()

	v1 := vec(t, -1, 0, 1, 42)
	v2 := vec(t, -1, 0, 1)
	v3 := vec(t, -10, 1, 10)

	_, err := linalg.NewMatrix()
	require.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = linalg.MatrixOf(nil)
	require.ErrorIs(t, err, linalg.ErrInvalidArgument)
	_, err = linalg.MatrixOf([]any{})
	require.ErrorIs(t, err, linalg.ErrInvalidArgument)

	// Not a Vector or collection of Vectors.
	for _, bad := range []any{-1, 0, 1.0, "text", []int{1, 2, 3}} {
		_, err = linalg.MatrixOf(bad)
		require.ErrorIs(t, err, linalg.ErrTypeKind, "%v", bad)
	}

	// Every item must be a Vector.
	for _, bad := range [][]any{{v1, 2, 3}, {1, v1, 3}, {v1, v1, 3}} {
		_, err = linalg.MatrixOf(bad)
		require.ErrorIs(t, err, linalg.ErrTypeKind)
	}
	_, err = linalg.NewMatrix(v2, nil)
	require.ErrorIs(t, err, linalg.ErrTypeKind)

	// All Vectors must be of the same size.
	_, err = linalg.NewMatrix(v1, v2)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = linalg.NewMatrix(vec(t, 1, 2), vec(t, 1, 2, 3))
	require.ErrorIs(t, err, linalg.ErrTypeKind)

	// Single Vector → 1×n.
	m1, err := linalg.MatrixOf(v1)
	require.NoError(t, err)
	require.Equal(t, 1, m1.Rows())
	require.Equal(t, v1.Dimension(), m1.Cols())

	// Collections of Vectors.
	m2, err := linalg.MatrixOf([]*linalg.Vector{v2, v3, v2})
	require.NoError(t, err)
	require.Equal(t, 3, m2.Rows())
	require.Equal(t, 3, m2.Cols())

	m3, err := linalg.MatrixOf([]any{v2, v3, v2})
	require.NoError(t, err)
	require.True(t, m3.Equal(m2))
}

func TestMatrix_Equal(t *testing.T) {
	t.Parallel()

	v2 := vec(t, -1, 0, 1)
	v3 := vec(t, -10, 1, 10)
	a := linalg.MustMatrix(v2, v3)

	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(linalg.MustMatrix(v2, v3, v2)))
	require.False(t, linalg.MustMatrix(v2, v3, v2).Equal(a))
	require.False(t, mat(t, []int{-1, 0, 1}, []int{2, 3, 4}).Equal(
		mat(t, []int{-1, 0, 1, 2}, []int{2, 3, 4, 5})))
	require.False(t, a.Equal(linalg.MustMatrix(v2, v2)))
	require.True(t, a.Equal(linalg.MustMatrix(v2, v3)))

	near := linalg.MustMatrix(fvec(t, -1, 0, 1+1e-7), v3)
	require.True(t, a.Equal(near))
}

func TestMatrix_Accessors(t *testing.T) {
	t.Parallel()

	m := mat(t, []int{1, 2, 3}, []int{4, 5, 6})

	r, err := m.Row(1)
	require.NoError(t, err)
	require.True(t, r.Equal(vec(t, 4, 5, 6)))
	_, err = m.Row(2)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)

	c, err := m.Column(2)
	require.NoError(t, err)
	require.True(t, c.Equal(vec(t, 3, 6)))
	_, err = m.Column(3)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)

	e, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, number.Int(4), e)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)

	rows := m.RowVectors()
	require.Len(t, rows, 2)
	rows[0] = nil
	first, _ := m.Row(0)
	require.NotNil(t, first)

	// Columns of a 1-row matrix are too short to be Vectors.
	_, err = mat(t, []int{1, 2}).Column(0)
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestMatrix_AddSub(t *testing.T) {
	t.Parallel()

	a := mat(t, []int{1, 2}, []int{3, 4})
	b := mat(t, []int{5, 6}, []int{7, 8})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mat(t, []int{6, 8}, []int{10, 12})))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.True(t, diff.Equal(mat(t, []int{4, 4}, []int{4, 4})))

	_, err = a.Add(nil)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = a.Sub(nil)
	require.ErrorIs(t, err, linalg.ErrTypeKind)

	// Row count mismatch.
	_, err = a.Add(mat(t, []int{1, 2}))
	require.ErrorIs(t, err, linalg.ErrDimension)
	// Column mismatch surfaces from the Vector layer.
	_, err = a.Add(mat(t, []int{1, 2, 3}, []int{4, 5, 6}))
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = a.Sub(mat(t, []int{1, 2, 3}, []int{4, 5, 6}))
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestMatrix_Scale(t *testing.T) {
	t.Parallel()

	m := mat(t, []int{1, 2}, []int{3, 4})

	out, err := m.Scale(linalg.ScalarValue(number.Int(3)))
	require.NoError(t, err)
	require.True(t, out.Equal(mat(t, []int{3, 6}, []int{9, 12})))
	require.True(t, m.ScaleBy(number.Int(3)).Equal(out))

	// Row-wise post-multiplication: points on the axes map onto the rows of t.
	tr := linalg.MustMatrix(fvec(t, 1, 0), fvec(t, 1.25, 2))
	pts := mat(t, []int{1, 0}, []int{0, 1}, []int{1, 1})
	out, err = pts.Scale(linalg.MatrixValue(tr))
	require.NoError(t, err)
	want := linalg.MustMatrix(fvec(t, 1, 0), fvec(t, 1.25, 2), fvec(t, 2.25, 2))
	require.True(t, out.Equal(want))

	_, err = pts.Scale(linalg.MatrixValue(mat(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})))
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = m.Scale(linalg.VectorValue(vec(t, 1, 2)))
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = m.Scale(linalg.Value{})
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = m.Scale(linalg.MatrixValue(nil))
	require.ErrorIs(t, err, linalg.ErrTypeKind)
}

func TestMatrix_Mul(t *testing.T) {
	t.Parallel()

	a := mat(t, []int{1, 2, 3}, []int{4, 5, 6})
	b := mat(t, []int{7, 8}, []int{9, 10}, []int{11, 12})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())
	require.True(t, p.Equal(mat(t, []int{58, 64}, []int{139, 154})))

	_, err = a.Mul(a)
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = a.Mul(nil)
	require.ErrorIs(t, err, linalg.ErrTypeKind)

	// PostMultiply is the same product, computed row by row.
	pm, err := a.PostMultiply(b)
	require.NoError(t, err)
	require.True(t, pm.Equal(p))
}

func TestMatrix_MatVec(t *testing.T) {
	t.Parallel()

	m := mat(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
	v, err := m.MatVec(vec(t, 1, 2, 3))
	require.NoError(t, err)
	require.True(t, v.Equal(vec(t, 14, 32, 50)))

	_, err = m.MatVec(vec(t, 1, 2))
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = m.MatVec(nil)
	require.ErrorIs(t, err, linalg.ErrTypeKind)

	// A single row yields a 1-element product, which is not a Vector.
	_, err = mat(t, []int{1, 2}).MatVec(vec(t, 1, 1))
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestMatrix_Multiply(t *testing.T) {
	t.Parallel()

	m := mat(t, []int{1, 2}, []int{3, 4})

	out, err := m.Multiply(linalg.MatrixValue(mat(t, []int{0, 1}, []int{1, 0})))
	require.NoError(t, err)
	got, ok := out.AsMatrix()
	require.True(t, ok)
	require.True(t, got.Equal(mat(t, []int{2, 1}, []int{4, 3})))

	out, err = m.Multiply(linalg.VectorValue(vec(t, 1, 1)))
	require.NoError(t, err)
	v, ok := out.AsVector()
	require.True(t, ok)
	require.True(t, v.Equal(vec(t, 3, 7)))

	out, err = m.Multiply(linalg.ScalarValue(number.Int(-1)))
	require.NoError(t, err)
	got, _ = out.AsMatrix()
	require.True(t, got.Equal(mat(t, []int{-1, -2}, []int{-3, -4})))

	_, err = m.Multiply(linalg.MatrixValue(mat(t, []int{1, 2, 3})))
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = m.Multiply(linalg.VectorValue(vec(t, 1, 2, 3)))
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = m.Multiply(linalg.Value{})
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = m.Multiply(linalg.VectorValue(nil))
	require.ErrorIs(t, err, linalg.ErrTypeKind)
}

func TestMatrix_Hadamard(t *testing.T) {
	t.Parallel()

	a := mat(t, []int{1, 2}, []int{3, 4})
	b := mat(t, []int{5, 6}, []int{7, 8})
	h, err := a.Hadamard(b)
	require.NoError(t, err)
	require.True(t, h.Equal(mat(t, []int{5, 12}, []int{21, 32})))

	_, err = a.Hadamard(mat(t, []int{1, 2}))
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = a.Hadamard(nil)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
}

func TestMatrix_Identity(t *testing.T) {
	t.Parallel()

	m := mat(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
	id, err := m.Identity()
	require.NoError(t, err)
	require.True(t, id.Equal(mat(t, []int{1, 0, 0}, []int{0, 1, 0}, []int{0, 0, 1})))

	_, err = mat(t, []int{1, 2, 3}, []int{4, 5, 6}).Identity()
	require.ErrorIs(t, err, linalg.ErrNonSquare)
	require.ErrorIs(t, err, linalg.ErrTypeKind)

	id2, err := linalg.Identity(3)
	require.NoError(t, err)
	require.True(t, id2.Equal(id))
	_, err = linalg.Identity(1)
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestMatrix_Shift(t *testing.T) {
	t.Parallel()

	s, err := mat(t, []int{1, 2}, []int{2, 4}).Shift(number.Int(3))
	require.NoError(t, err)
	require.True(t, s.Equal(mat(t, []int{4, 2}, []int{2, 7})))

	_, err = mat(t, []int{1, 2, 3}, []int{4, 5, 6}).Shift(number.Int(1))
	require.ErrorIs(t, err, linalg.ErrTypeKind)
}

func TestMatrix_Transpose(t *testing.T) {
	t.Parallel()

	m := mat(t, []int{1, 2, 3, 4}, []int{5, 6, 7, 8})
	tr, err := m.Transpose()
	require.NoError(t, err)
	require.Equal(t, 4, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.True(t, tr.Equal(mat(t, []int{1, 5}, []int{2, 6}, []int{3, 7}, []int{4, 8})))

	back, err := linalg.T(tr)
	require.NoError(t, err)
	require.True(t, back.Equal(m))

	_, err = mat(t, []int{1, 2, 3}).Transpose()
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestMatrix_HermitianTranspose(t *testing.T) {
	t.Parallel()

	r0, _ := linalg.NewVector(number.Int(1), number.Complex(2, 1))
	r1, _ := linalg.NewVector(number.Complex(0, 3), number.Int(4))
	m := linalg.MustMatrix(r0, r1)

	h, err := m.HermitianTranspose()
	require.NoError(t, err)

	w0, _ := linalg.NewVector(number.Complex(1, 0), number.Complex(0, -3))
	w1, _ := linalg.NewVector(number.Complex(2, -1), number.Complex(4, 0))
	require.True(t, h.Equal(linalg.MustMatrix(w0, w1)))

	e, _ := h.At(1, 1)
	require.True(t, e.IsComplex())

	// For real input it matches the plain transpose numerically.
	rm := mat(t, []int{1, 2}, []int{3, 4})
	ht, err := rm.HermitianTranspose()
	require.NoError(t, err)
	tr, _ := rm.Transpose()
	require.True(t, ht.Equal(tr))

	_, err = mat(t, []int{1, 2}).HermitianTranspose()
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestMatrix_DiagonalTrace(t *testing.T) {
	t.Parallel()

	m := mat(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
	d, err := m.Diagonal()
	require.NoError(t, err)
	require.True(t, d.Equal(vec(t, 1, 5, 9)))

	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, number.Real(15), tr)

	// Wide matrices have a diagonal but no trace.
	wide := mat(t, []int{1, 2, 3}, []int{4, 5, 6})
	d, err = wide.Diagonal()
	require.NoError(t, err)
	require.True(t, d.Equal(vec(t, 1, 5)))
	_, err = wide.Trace()
	require.ErrorIs(t, err, linalg.ErrNonSquare)

	// Tall matrices would read past the last column.
	_, err = mat(t, []int{1, 2}, []int{3, 4}, []int{5, 6}).Diagonal()
	require.ErrorIs(t, err, linalg.ErrDimension)

	// A single row has a 1-element diagonal.
	_, err = mat(t, []int{1, 2}).Diagonal()
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestMatrix_Symmetric(t *testing.T) {
	t.Parallel()

	require.True(t, mat(t, []int{1, 2}, []int{2, 1}).IsSymmetric())
	require.False(t, mat(t, []int{1, 2}, []int{3, 1}).IsSymmetric())
	require.False(t, mat(t, []int{1, 2, 3}, []int{2, 1, 3}).IsSymmetric())
	require.False(t, mat(t, []int{1, 2}).IsSymmetric())

	s, err := linalg.Symmetrize(mat(t, []int{1, 2}, []int{3, 4}))
	require.NoError(t, err)
	require.True(t, s.Equal(mat(t, []int{2, 5}, []int{5, 8})))
	require.True(t, s.IsSymmetric())

	_, err = linalg.Symmetrize(mat(t, []int{1, 2, 3}, []int{4, 5, 6}))
	require.ErrorIs(t, err, linalg.ErrNonSquare)
}

func TestMatrix_NilReceiver(t *testing.T) {
	t.Parallel()

	var nm *linalg.Matrix
	m := mat(t, []int{1, 2}, []int{3, 4})

	_, err := nm.Add(m)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Sub(m)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Mul(m)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.MatVec(vec(t, 1, 2))
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.PostMultiply(m)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Scale(linalg.ScalarValue(number.Int(2)))
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Multiply(linalg.MatrixValue(m))
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Hadamard(m)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Identity()
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Shift(number.One)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Transpose()
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.HermitianTranspose()
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Diagonal()
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Trace()
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Row(0)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.Column(0)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	_, err = nm.At(0, 0)
	require.ErrorIs(t, err, linalg.ErrTypeKind)

	_, err = m.Hadamard(nil)
	require.ErrorIs(t, err, linalg.ErrTypeKind)
	require.False(t, nm.Equal(m))
}

func TestMatrix_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Matrix:\n(1, 2)\n(3, 4)\n", mat(t, []int{1, 2}, []int{3, 4}).String())
}

func TestMatrix_OperationsDoNotMutate(t *testing.T) {
	t.Parallel()

	m := mat(t, []int{1, 2}, []int{3, 4})
	snapshot := mat(t, []int{1, 2}, []int{3, 4})

	_, _ = m.Add(m)
	_ = m.ScaleBy(number.Int(7))
	_, _ = m.Mul(m)
	_, _ = m.Transpose()
	_, _ = m.HermitianTranspose()
	_, _ = m.Shift(number.Int(2))
	_, _ = m.Hadamard(m)

	require.True(t, m.Equal(snapshot))
}
