// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across linalg.
// Every operation returns one of these (wrapped with an operation tag via
// linalgErrorf) and tests match them with errors.Is. Nothing in this package
// panics on user input; panics are reserved for invalid functional options.

package linalg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linear/number"
)

// Every message is prefixed with "linalg: ..." for easy grepping. Operations
// wrap with fmt.Errorf("%s: %w", op, ErrX) so callers still use errors.Is.

var (
	// ErrInvalidArgument is returned when a populated input was required but
	// the caller passed nothing (no elements, no rows, nil).
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrDimension indicates incompatible sizes: fewer than two elements,
	// Add/Sub/Dot of different dimensions, Cross outside 3-D, incompatible
	// inner dimensions for multiplication.
	ErrDimension = errors.New("linalg: dimension mismatch")

	// ErrTypeKind indicates an operand outside the supported capability set:
	// a non-numeric element, a nil Vector/Matrix operand, an empty Value.
	ErrTypeKind = errors.New("linalg: unsupported operand type")

	// ErrDomain signals a numeric domain violation, e.g. an acos argument
	// outside [-1, 1] or a complex cosine in Angle.
	ErrDomain = errors.New("linalg: numeric domain error")

	// ErrOutOfRange indicates that an element, row or column index is outside
	// valid bounds. Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("linalg: index out of range")
)

// ErrDivideByZero is shared with package number so that errors.Is matches
// regardless of which layer detected the zero divisor.
var ErrDivideByZero = number.ErrDivideByZero

// ErrNonSquare signals that a square Matrix was required (Identity, Shift,
// Trace). It wraps ErrTypeKind: a rectangular matrix lacks the capability.
var ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrTypeKind)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags for linalgErrorf.
const (
	opNewVector     = "NewVector"
	opVectorOf      = "VectorOf"
	opVectorAt      = "Vector.At"
	opVectorAdd     = "Vector.Add"
	opVectorSub     = "Vector.Sub"
	opVectorDot     = "Vector.Dot"
	opVectorMul     = "Vector.Multiply"
	opVecMat        = "Vector.VecMat"
	opVectorAngle   = "Vector.Angle"
	opVectorUnit    = "Vector.Unit"
	opVectorCross   = "Vector.Cross"
	opNewMatrix     = "NewMatrix"
	opMatrixOf      = "MatrixOf"
	opMatrixAt      = "Matrix.At"
	opMatrixRow     = "Matrix.Row"
	opMatrixColumn  = "Matrix.Column"
	opMatrixAdd     = "Matrix.Add"
	opMatrixSub     = "Matrix.Sub"
	opMatrixScale   = "Matrix.Scale"
	opPostMultiply  = "Matrix.PostMultiply"
	opMatrixMul     = "Matrix.Mul"
	opMatVec        = "Matrix.MatVec"
	opMatrixMultip  = "Matrix.Multiply"
	opHadamard      = "Matrix.Hadamard"
	opIdentity      = "Matrix.Identity"
	opShift         = "Matrix.Shift"
	opTranspose     = "Matrix.Transpose"
	opHermitian     = "Matrix.HermitianTranspose"
	opDiagonal      = "Matrix.Diagonal"
	opTrace         = "Matrix.Trace"
	opRandomVector  = "RandomVector"
	opRandomMatrix  = "RandomMatrix"
	opParseKind     = "ParseElementKind"
	opIdentityOfDim = "Identity"
	opSymmetrize    = "Symmetrize"
)
