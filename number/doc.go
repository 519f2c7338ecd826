// SPDX-License-Identifier: MIT

// Package number provides Number, the scalar element type of the linalg
// package.
//
// A Number is a small sum type with two variants:
//
//	Real(x)        – a real value, stored as float64
//	Complex(re,im) – a complex value, stored as two float64 parts
//
// Arithmetic is defined uniformly over both variants. A result is Complex
// when either operand is Complex; otherwise it stays Real. Numbers are
// plain values: copying is free and nothing is ever mutated in place.
//
// Conversion from arbitrary Go values goes through Of, which accepts every
// built-in integer, float and complex type and rejects everything else
// with ErrNotNumeric.
package number
