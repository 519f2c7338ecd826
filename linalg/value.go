// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/linear/number"

// ValueKind tags the active variant of a Value.
type ValueKind uint8

const (
	// KindNone is the zero tag; an empty Value is never a valid operand.
	KindNone ValueKind = iota
	// KindScalar carries a number.Number.
	KindScalar
	// KindVector carries a *Vector.
	KindVector
	// KindMatrix carries a *Matrix.
	KindMatrix
)

// String returns the variant name.
func (k ValueKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "none"
	}
}

// Value is the operand and result of the polymorphic entry points
// (Vector.Multiply, Matrix.Multiply, Matrix.Scale). Dispatch inspects the
// tag only; the payload of the other variants is ignored.
type Value struct {
	kind   ValueKind
	scalar number.Number
	vector *Vector
	matrix *Matrix
}

// ScalarValue wraps a number as a Value.
func ScalarValue(n number.Number) Value { return Value{kind: KindScalar, scalar: n} }

// VectorValue wraps a Vector as a Value.
func VectorValue(v *Vector) Value { return Value{kind: KindVector, vector: v} }

// MatrixValue wraps a Matrix as a Value.
func MatrixValue(m *Matrix) Value { return Value{kind: KindMatrix, matrix: m} }

// Kind reports the active variant.
func (v Value) Kind() ValueKind { return v.kind }

// AsScalar returns the number and true when v is a scalar.
func (v Value) AsScalar() (number.Number, bool) {
	return v.scalar, v.kind == KindScalar
}

// AsVector returns the vector and true when v is a non-nil vector.
func (v Value) AsVector() (*Vector, bool) {
	return v.vector, v.kind == KindVector && v.vector != nil
}

// AsMatrix returns the matrix and true when v is a non-nil matrix.
func (v Value) AsMatrix() (*Matrix, bool) {
	return v.matrix, v.kind == KindMatrix && v.matrix != nil
}

// String renders the payload, or "<none>" for the zero Value.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return v.scalar.String()
	case KindVector:
		if v.vector != nil {
			return v.vector.String()
		}
	case KindMatrix:
		if v.matrix != nil {
			return v.matrix.String()
		}
	}
	return "<none>"
}
