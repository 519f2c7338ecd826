// SPDX-License-Identifier: MIT

// Package linalg provides immutable Vector and Matrix values over real and
// complex numbers, meant for small linear-algebra experiments where strict
// input validation matters more than speed.
//
// What & Why:
//
//	A Vector is a fixed-dimension tuple (at least two elements) of
//	number.Number. A Matrix is a non-empty list of row Vectors of equal
//	dimension. Every operation validates its operands and returns a fresh
//	value, so nothing is ever mutated in place and values may be shared
//	between goroutines without locking.
//
// Operations:
//
//	Vector: Add, Sub, Scale, Dot, VecMat, Multiply, Magnitude, Angle, Unit, Cross
//	Matrix: Add, Sub, Scale, ScaleBy, PostMultiply, Mul, MatVec, Multiply,
//	        Hadamard, Identity, Shift, Transpose, HermitianTranspose,
//	        Diagonal, Trace, IsSymmetric
//
// Polymorphic entry points (Vector.Multiply, Matrix.Multiply, Matrix.Scale)
// take a Value, a tagged union built with ScalarValue, VectorValue or
// MatrixValue; dispatch looks at the tag, never at dynamic Go types.
//
// Equality is tolerance based: two elements are equal when both their real
// and imaginary parts differ by at most DefaultTolerance (1e-6).
//
// Errors:
//
//	ErrInvalidArgument, ErrDimension, ErrTypeKind, ErrDivideByZero, ErrDomain,
//	ErrOutOfRange, ErrNonSquare. Match them with errors.Is.
//
//	Every method with an error result reports a nil receiver or operand as
//	ErrTypeKind. Methods without one, such as Dimension, Scale and ScaleBy,
//	require a non-nil receiver; Equal and EqualWithin accept nil.
//
// Randomness:
//
//	RandomVector and RandomMatrix sample uniformly over closed ranges. They
//	keep no global state; inject a seeded *rand.Rand with WithRand for
//	reproducible runs.
package linalg
