// SPDX-License-Identifier: MIT

package number

import "errors"

var (
	// ErrNotNumeric is returned by Of when the value is not a Go numeric type.
	ErrNotNumeric = errors.New("number: value is not numeric")

	// ErrDivideByZero is returned by Div when the divisor is exactly zero.
	ErrDivideByZero = errors.New("number: division by zero")
)
