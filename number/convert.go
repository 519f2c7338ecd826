// SPDX-License-Identifier: MIT

package number

import "fmt"

// Of converts a Go numeric value into a Number.
//
// Integers and floats become Real; complex64/complex128 become Complex.
// A Number is returned unchanged. Any other value (strings, bools, nil,
// slices, structs) fails with ErrNotNumeric.
func Of(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case int:
		return Real(float64(x)), nil
	case int8:
		return Real(float64(x)), nil
	case int16:
		return Real(float64(x)), nil
	case int32:
		return Real(float64(x)), nil
	case int64:
		return Real(float64(x)), nil
	case uint:
		return Real(float64(x)), nil
	case uint8:
		return Real(float64(x)), nil
	case uint16:
		return Real(float64(x)), nil
	case uint32:
		return Real(float64(x)), nil
	case uint64:
		return Real(float64(x)), nil
	case float32:
		return Real(float64(x)), nil
	case float64:
		return Real(x), nil
	case complex64:
		return FromComplex(complex128(x)), nil
	case complex128:
		return FromComplex(x), nil
	default:
		return Number{}, fmt.Errorf("%T: %w", v, ErrNotNumeric)
	}
}

// MustOf is like Of but panics on non-numeric input.
// Intended for literals in tests and examples.
func MustOf(v any) Number {
	n, err := Of(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Reals converts a float64 slice into a slice of real Numbers.
func Reals(xs ...float64) []Number {
	out := make([]Number, len(xs))
	for i, x := range xs {
		out[i] = Real(x)
	}
	return out
}

// Ints converts an int slice into a slice of real Numbers.
func Ints(xs ...int) []Number {
	out := make([]Number, len(xs))
	for i, x := range xs {
		out[i] = Int(x)
	}
	return out
}
