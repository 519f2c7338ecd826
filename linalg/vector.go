// SPDX-License-Identifier: MIT

package linalg

import (
	"iter"
	"reflect"
	"strings"

	"github.com/katalvlaran/linear/number"
)

// MinDimension is the smallest number of elements a Vector may hold.
const MinDimension = 2

// DefaultTolerance is the absolute tolerance used by Equal, applied
// independently to the real and imaginary parts of every element pair.
const DefaultTolerance = 1e-6

// Vector is an immutable, fixed-dimension ordered tuple of real or complex
// numbers. Every operation returns a new Vector; the receiver is never
// modified, so Vectors may be shared freely between goroutines.
type Vector struct {
	elems []number.Number // len >= MinDimension, never mutated after construction
}

// NewVector builds a Vector from elems.
//
// Errors:
//   - ErrInvalidArgument if elems is empty.
//   - ErrDimension if fewer than MinDimension elements are given.
//
// The input slice is copied.
func NewVector(elems ...number.Number) (*Vector, error) {
	if len(elems) == 0 {
		return nil, linalgErrorf(opNewVector, ErrInvalidArgument)
	}
	if len(elems) < MinDimension {
		return nil, linalgErrorf(opNewVector, ErrDimension)
	}
	cp := make([]number.Number, len(elems))
	copy(cp, elems)

	return &Vector{elems: cp}, nil
}

// VectorOf builds a Vector from loosely typed Go values.
//
// Every value must be a Go numeric (any int/uint/float/complex width) or a
// number.Number. A single slice argument of any element type is expanded
// into its elements, so []float32 or []int64 work like []int; a slice of a
// non-numeric type fails per element with ErrTypeKind.
//
// Errors, in check order:
//   - ErrInvalidArgument if there are no values or the only value is nil.
//   - ErrTypeKind if the only value is a string.
//   - ErrDimension if fewer than MinDimension values remain.
//   - ErrTypeKind if any value is not numeric.
func VectorOf(values ...any) (*Vector, error) {
	if len(values) == 1 {
		switch x := values[0].(type) {
		case nil:
			return nil, linalgErrorf(opVectorOf, ErrInvalidArgument)
		case string:
			return nil, linalgErrorf(opVectorOf, ErrTypeKind)
		case []number.Number:
			return NewVector(x...)
		case []int:
			return NewVector(number.Ints(x...)...)
		case []float64:
			return NewVector(number.Reals(x...)...)
		case []complex128:
			values = make([]any, len(x))
			for i, c := range x {
				values[i] = c
			}
		case []any:
			values = x
		default:
			if rv := reflect.ValueOf(x); rv.Kind() == reflect.Slice {
				values = make([]any, rv.Len())
				for i := range values {
					values[i] = rv.Index(i).Interface()
				}
			}
		}
	}
	if len(values) == 0 {
		return nil, linalgErrorf(opVectorOf, ErrInvalidArgument)
	}
	if len(values) < MinDimension {
		return nil, linalgErrorf(opVectorOf, ErrDimension)
	}

	elems := make([]number.Number, len(values))
	for i, v := range values {
		n, err := number.Of(v)
		if err != nil {
			return nil, linalgErrorf(opVectorOf, ErrTypeKind)
		}
		elems[i] = n
	}

	return &Vector{elems: elems}, nil
}

// MustVector is NewVector for literals; it panics on error.
func MustVector(elems ...number.Number) *Vector {
	v, err := NewVector(elems...)
	if err != nil {
		panic(err)
	}
	return v
}

// Dimension returns the fixed element count.
func (v *Vector) Dimension() int { return len(v.elems) }

// At returns element i, or ErrOutOfRange.
func (v *Vector) At(i int) (number.Number, error) {
	if err := validateVector(v); err != nil {
		return number.Number{}, linalgErrorf(opVectorAt, err)
	}
	if err := validateIndex(i, len(v.elems)); err != nil {
		return number.Number{}, linalgErrorf(opVectorAt, err)
	}
	return v.elems[i], nil
}

// Elements returns a copy of the elements.
func (v *Vector) Elements() []number.Number {
	out := make([]number.Number, len(v.elems))
	copy(out, v.elems)
	return out
}

// All iterates over (index, element) pairs in order.
func (v *Vector) All() iter.Seq2[int, number.Number] {
	return func(yield func(int, number.Number) bool) {
		for i, e := range v.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// IsReal reports whether every element is the Real variant.
func (v *Vector) IsReal() bool {
	for _, e := range v.elems {
		if e.IsComplex() {
			return false
		}
	}
	return true
}

// Equal reports whether other has the same dimension and every element pair
// agrees within DefaultTolerance. A nil other is never equal.
func (v *Vector) Equal(other *Vector) bool {
	return v.EqualWithin(other, DefaultTolerance)
}

// EqualWithin is Equal with an explicit absolute tolerance.
func (v *Vector) EqualWithin(other *Vector, tol float64) bool {
	if v == nil || other == nil {
		return false
	}
	if len(v.elems) != len(other.elems) {
		return false
	}
	for i := range v.elems {
		if !v.elems[i].Equal(other.elems[i], tol) {
			return false
		}
	}
	return true
}

// String renders the vector as "Vector: (e0, e1, ...)".
func (v *Vector) String() string {
	return "Vector: " + v.tuple()
}

// tuple renders the parenthesized element list without a label.
func (v *Vector) tuple() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range v.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// fromTrusted wraps elems without validation; callers guarantee the length.
func fromTrusted(elems []number.Number) *Vector {
	return &Vector{elems: elems}
}
