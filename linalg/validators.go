// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide a single source of truth for operand checks shared by Vector
//     and Matrix operations.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//     with their own operation tag.
//
// Note:
//   - Composite validators follow a fixed sequence: presence → shape.
//   - All checks are O(1) and allocate nothing.

package linalg

// validateVector rejects a nil receiver.
func validateVector(v *Vector) error {
	if v == nil {
		return ErrTypeKind
	}
	return nil
}

// validateMatrix rejects a nil receiver.
func validateMatrix(m *Matrix) error {
	if m == nil {
		return ErrTypeKind
	}
	return nil
}

// validateVectorOperand checks that other is a Vector of v's dimension.
// Errors: ErrTypeKind for a nil receiver or operand, ErrDimension on size
// mismatch.
func validateVectorOperand(v, other *Vector) error {
	if v == nil || other == nil {
		return ErrTypeKind
	}
	if len(v.elems) != len(other.elems) {
		return ErrDimension
	}
	return nil
}

// validateMatrixOperand checks that other is a Matrix with m's row count.
// Column compatibility is left to the Vector layer, as row pairs are
// combined one at a time.
func validateMatrixOperand(m, other *Matrix) error {
	if m == nil || other == nil {
		return ErrTypeKind
	}
	if len(m.rows) != len(other.rows) {
		return ErrDimension
	}
	return nil
}

// validateSameShape checks rows and columns of two matrices.
func validateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrTypeKind
	}
	if len(a.rows) != len(b.rows) || a.cols != b.cols {
		return ErrDimension
	}
	return nil
}

// validateSquare checks Rows == Cols. A nil matrix is ErrTypeKind.
func validateSquare(m *Matrix) error {
	if m == nil {
		return ErrTypeKind
	}
	if len(m.rows) != m.cols {
		return ErrNonSquare
	}
	return nil
}

// validateIndex checks 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}
	return nil
}
