// SPDX-License-Identifier: MIT

package linalg_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/linear/linalg"
	"github.com/katalvlaran/linear/number"
	"github.com/stretchr/testify/require"
)

func TestFacades(t *testing.T) {
	t.Parallel()

	a := mat(t, []int{1, 2}, []int{3, 4})
	b := mat(t, []int{0, 1}, []int{1, 0})

	s, err := linalg.Sum(a, b)
	require.NoError(t, err)
	want, _ := a.Add(b)
	require.True(t, s.Equal(want))

	p, err := linalg.Product(a, b)
	require.NoError(t, err)
	want, _ = a.Mul(b)
	require.True(t, p.Equal(want))

	tr, err := linalg.T(a)
	require.NoError(t, err)
	require.True(t, tr.Equal(mat(t, []int{1, 3}, []int{2, 4})))

	d, err := linalg.Dot(vec(t, 1, 2), vec(t, 3, 4))
	require.NoError(t, err)
	require.Equal(t, number.Real(11), d)

	_, err = linalg.Product(a, mat(t, []int{1, 2, 3}))
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	_, err := vec(t, 1, 2).Add(vec(t, 1, 2, 3))
	require.ErrorIs(t, err, linalg.ErrDimension)
	require.True(t, strings.HasPrefix(err.Error(), "Vector.Add: "), err.Error())

	// Division by zero is the same sentinel in both packages.
	_, err = vec(t, 0, 0).Unit()
	require.ErrorIs(t, err, linalg.ErrDivideByZero)
	require.True(t, errors.Is(err, number.ErrDivideByZero))

	// Matrix operations keep the Vector-level sentinel.
	_, err = mat(t, []int{1, 2}).Add(mat(t, []int{1, 2, 3}))
	require.ErrorIs(t, err, linalg.ErrDimension)
	require.NotErrorIs(t, err, linalg.ErrTypeKind)
}

func TestValue(t *testing.T) {
	t.Parallel()

	var zero linalg.Value
	require.Equal(t, linalg.KindNone, zero.Kind())
	require.Equal(t, "<none>", zero.String())

	s := linalg.ScalarValue(number.Int(2))
	n, ok := s.AsScalar()
	require.True(t, ok)
	require.Equal(t, number.Int(2), n)
	_, ok = s.AsVector()
	require.False(t, ok)
	require.Equal(t, "scalar", s.Kind().String())

	v := linalg.VectorValue(vec(t, 1, 2))
	require.Equal(t, "Vector: (1, 2)", v.String())
	_, ok = v.AsMatrix()
	require.False(t, ok)

	_, ok = linalg.MatrixValue(nil).AsMatrix()
	require.False(t, ok)
	require.Equal(t, "<none>", linalg.MatrixValue(nil).String())
}
