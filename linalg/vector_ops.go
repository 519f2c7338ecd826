// SPDX-License-Identifier: MIT
// Package linalg: Vector arithmetic and geometry kernels.
//
// Purpose:
//   - Element-wise Add/Sub/Scale, Dot, VecMat and the Multiply dispatcher.
//   - Geometric queries: Magnitude, Angle, Unit, Cross.
//
// Notes:
//   - All kernels validate operands first and wrap sentinels with their op tag.
//   - Results are freshly allocated; receivers and arguments are never mutated.
//   - Loops run in fixed index order, so results are deterministic.

package linalg

import (
	"math"

	"github.com/katalvlaran/linear/number"
)

// Add returns v + other.
// Errors: ErrTypeKind (nil receiver or other), ErrDimension (dimension mismatch).
// Complexity: O(n).
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := validateVectorOperand(v, other); err != nil {
		return nil, linalgErrorf(opVectorAdd, err)
	}
	return v.add(other), nil
}

// add assumes validated operands.
func (v *Vector) add(other *Vector) *Vector {
	out := make([]number.Number, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i].Add(other.elems[i])
	}
	return fromTrusted(out)
}

// Sub returns v − other, defined as v.Add(other.Scale(-1)).
// Errors: as Add.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if err := validateVectorOperand(v, other); err != nil {
		return nil, linalgErrorf(opVectorSub, err)
	}
	return v.add(other.Scale(number.Int(-1))), nil
}

// Scale returns k·v.
func (v *Vector) Scale(k number.Number) *Vector {
	out := make([]number.Number, len(v.elems))
	for i, e := range v.elems {
		out[i] = k.Mul(e)
	}
	return fromTrusted(out)
}

// Dot returns Σ v[i]·other[i]. No conjugation is applied, so for complex
// vectors this is the bilinear (not Hermitian) product.
// Errors: ErrTypeKind, ErrDimension.
func (v *Vector) Dot(other *Vector) (number.Number, error) {
	if err := validateVectorOperand(v, other); err != nil {
		return number.Number{}, linalgErrorf(opVectorDot, err)
	}
	return dot(v.elems, other.elems), nil
}

// dot is the shared inner-product loop; a and b have equal length.
func dot(a, b []number.Number) number.Number {
	acc := number.Zero
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return acc
}

// VecMat returns the row vector v × m, whose j-th element is the dot product
// of v with column j of m.
// Errors: ErrTypeKind (nil receiver or m), ErrDimension (m.Rows() != v.Dimension()).
// Complexity: O(rows·cols).
func (v *Vector) VecMat(m *Matrix) (*Vector, error) {
	if v == nil || m == nil {
		return nil, linalgErrorf(opVecMat, ErrTypeKind)
	}
	if len(m.rows) != len(v.elems) {
		return nil, linalgErrorf(opVecMat, ErrDimension)
	}
	out := make([]number.Number, m.cols)
	for j := 0; j < m.cols; j++ {
		out[j] = dot(v.elems, m.column(j))
	}
	return fromTrusted(out), nil // m.cols >= MinDimension by Matrix invariant
}

// Multiply dispatches on the operand's tag:
//   - vector → Dot, returned as a scalar Value;
//   - matrix → VecMat, returned as a vector Value;
//   - scalar → Scale, returned as a vector Value.
//
// An empty Value or a nil payload fails with ErrTypeKind.
func (v *Vector) Multiply(operand Value) (Value, error) {
	if err := validateVector(v); err != nil {
		return Value{}, linalgErrorf(opVectorMul, err)
	}
	switch operand.Kind() {
	case KindVector:
		other, ok := operand.AsVector()
		if !ok {
			break
		}
		d, err := v.Dot(other)
		if err != nil {
			return Value{}, linalgErrorf(opVectorMul, err)
		}
		return ScalarValue(d), nil
	case KindMatrix:
		m, ok := operand.AsMatrix()
		if !ok {
			break
		}
		out, err := v.VecMat(m)
		if err != nil {
			return Value{}, linalgErrorf(opVectorMul, err)
		}
		return VectorValue(out), nil
	case KindScalar:
		k, _ := operand.AsScalar()
		return VectorValue(v.Scale(k)), nil
	}

	return Value{}, linalgErrorf(opVectorMul, ErrTypeKind)
}

// Magnitude returns the Euclidean norm sqrt(Σ |v[i]|²). For complex
// elements this is the Hermitian norm, not sqrt of the bilinear self-dot.
func (v *Vector) Magnitude() float64 {
	var ss float64
	for _, e := range v.elems {
		ss += e.AbsSq()
	}
	return math.Sqrt(ss)
}

// Angle returns the angle between v and other in degrees:
//
//	degrees(acos(v·other / (|v|·|other|)))
//
// Errors:
//   - ErrTypeKind / ErrDimension from the operand checks.
//   - ErrDivideByZero if either magnitude is zero.
//   - ErrDomain if the dot product has a non-zero imaginary part or the
//     cosine falls outside [-1, 1] (floating error is not clamped).
func (v *Vector) Angle(other *Vector) (float64, error) {
	d, err := v.Dot(other)
	if err != nil {
		return 0, linalgErrorf(opVectorAngle, err)
	}
	bottom := v.Magnitude() * other.Magnitude()
	if bottom == 0 {
		return 0, linalgErrorf(opVectorAngle, ErrDivideByZero)
	}
	if d.Im() != 0 {
		return 0, linalgErrorf(opVectorAngle, ErrDomain)
	}
	cos := d.Re() / bottom
	if cos < -1 || cos > 1 || math.IsNaN(cos) {
		return 0, linalgErrorf(opVectorAngle, ErrDomain)
	}

	return math.Acos(cos) * 180 / math.Pi, nil
}

// Unit returns v scaled to magnitude 1.
// Errors: ErrDivideByZero when v has zero magnitude.
func (v *Vector) Unit() (*Vector, error) {
	if err := validateVector(v); err != nil {
		return nil, linalgErrorf(opVectorUnit, err)
	}
	mag := v.Magnitude()
	if mag == 0 {
		return nil, linalgErrorf(opVectorUnit, ErrDivideByZero)
	}
	return v.Scale(number.Real(1 / mag)), nil
}

// Cross returns the 3-D cross product v × other.
// Errors: ErrTypeKind (nil receiver or other), ErrDimension unless both are 3-D.
func (v *Vector) Cross(other *Vector) (*Vector, error) {
	if v == nil || other == nil {
		return nil, linalgErrorf(opVectorCross, ErrTypeKind)
	}
	if len(v.elems) != 3 || len(other.elems) != 3 {
		return nil, linalgErrorf(opVectorCross, ErrDimension)
	}
	a, b := v.elems, other.elems
	out := []number.Number{
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	}
	return fromTrusted(out), nil
}
