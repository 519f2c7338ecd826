// Package linear is a small, strict playground for linear algebra: immutable
// vectors and matrices over real and complex numbers, plus randomized
// experiments that check algebraic laws on them.
//
// What is linear?
//
//	A validation-first library where every operation checks its operands,
//	returns a fresh value and reports misuse through sentinel errors:
//		• Numbers: real/complex scalars with kind promotion
//		• Vectors: add, scale, dot, angle, unit, cross, vector × matrix
//		• Matrices: add, products, Hadamard, identity, shift, transpose,
//		  Hermitian transpose, diagonal, trace
//		• Random factories with injectable, seedable sources
//		• Experiments: distributivity, trace linearity, symmetric closure,
//		  dot product sign, circle transforms
//
// Under the hood, everything is organized under these subpackages:
//
//	number/     : Number: real or complex scalar, arithmetic, tolerance equality
//	linalg/     : Vector, Matrix, Value dispatch, random factories
//	dense/      : conversions to and from gonum's mat types
//	experiment/ : law experiments, Config (YAML), Report, concurrent runner
//	cmd/linexp/ : command line front end for the experiments
//	examples/   : runnable programs (power iteration, circle scaling)
//
// Quick example:
//
//	a := linalg.MustVector(number.Ints(1, 2, 3)...)
//	b := linalg.MustVector(number.Ints(4, 5, 6)...)
//	d, _ := a.Dot(b) // 32
//
//	go get github.com/katalvlaran/linear
package linear
