// SPDX-License-Identifier: MIT

package linalg

import (
	"strings"

	"github.com/katalvlaran/linear/number"
)

// ElementKind selects the sample type of RandomVector.
type ElementKind uint8

const (
	// ElementInt draws integers uniformly from [DefaultIntLow, DefaultIntHigh].
	ElementInt ElementKind = iota + 1
	// ElementFloat draws floats uniformly from [DefaultFloatLow, DefaultFloatHigh).
	ElementFloat
)

// String returns "int", "float" or "unknown".
func (k ElementKind) String() string {
	switch k {
	case ElementInt:
		return "int"
	case ElementFloat:
		return "float"
	default:
		return "unknown"
	}
}

// ParseElementKind maps "int" or "float" (case-insensitive) to an ElementKind.
// Any other name fails with ErrTypeKind.
func ParseElementKind(s string) (ElementKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int":
		return ElementInt, nil
	case "float":
		return ElementFloat, nil
	default:
		return 0, linalgErrorf(opParseKind, ErrTypeKind)
	}
}

// RandomVector returns a Vector of quantity independent uniform samples of
// the given kind.
//
// Errors, in check order:
//   - ErrTypeKind for an unsupported kind.
//   - ErrInvalidArgument for quantity <= 0.
//   - ErrDimension for quantity == 1.
func RandomVector(quantity int, kind ElementKind, opts ...RandomOption) (*Vector, error) {
	o := gatherRandomOptions(opts)
	v, err := randomVector(quantity, kind, &o)
	if err != nil {
		return nil, linalgErrorf(opRandomVector, err)
	}
	return v, nil
}

func randomVector(quantity int, kind ElementKind, o *randomOptions) (*Vector, error) {
	if kind != ElementInt && kind != ElementFloat {
		return nil, ErrTypeKind
	}
	if quantity <= 0 {
		return nil, ErrInvalidArgument
	}
	if quantity < MinDimension {
		return nil, ErrDimension
	}

	elems := make([]number.Number, quantity)
	for i := range elems {
		if kind == ElementInt {
			elems[i] = number.Int(o.intLo + o.rng.Intn(o.intHi-o.intLo+1))
		} else {
			elems[i] = number.Real(o.floatLo + o.rng.Float64()*(o.floatHi-o.floatLo))
		}
	}
	return fromTrusted(elems), nil
}

// RandomMatrix returns a rows×cols Matrix whose rows are RandomVectors
// drawn from a single source.
// Errors: ErrInvalidArgument for rows <= 0, otherwise as RandomVector.
func RandomMatrix(rows, cols int, kind ElementKind, opts ...RandomOption) (*Matrix, error) {
	if rows <= 0 {
		return nil, linalgErrorf(opRandomMatrix, ErrInvalidArgument)
	}
	o := gatherRandomOptions(opts)
	out := make([]*Vector, rows)
	for i := range out {
		v, err := randomVector(cols, kind, &o)
		if err != nil {
			return nil, linalgErrorf(opRandomMatrix, err)
		}
		out[i] = v
	}
	return &Matrix{rows: out, cols: cols}, nil
}
