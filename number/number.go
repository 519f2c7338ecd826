// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags the active variant of a Number.
type Kind uint8

const (
	// KindReal marks a Number with no imaginary part.
	KindReal Kind = iota
	// KindComplex marks a Number carrying both real and imaginary parts.
	KindComplex
)

// String returns "real" or "complex".
func (k Kind) String() string {
	if k == KindComplex {
		return "complex"
	}
	return "real"
}

// Number is an immutable real or complex scalar.
// The zero value is Real(0).
type Number struct {
	kind Kind
	re   float64
	im   float64 // always 0 for KindReal
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Real(0)
	One  = Real(1)
)

// Real returns the real Number x.
func Real(x float64) Number { return Number{kind: KindReal, re: x} }

// Int returns the real Number holding n.
func Int(n int) Number { return Real(float64(n)) }

// Complex returns the complex Number re + im·i.
// The result is Complex even when im == 0.
func Complex(re, im float64) Number { return Number{kind: KindComplex, re: re, im: im} }

// FromComplex converts a complex128 to a complex Number.
func FromComplex(c complex128) Number { return Complex(real(c), imag(c)) }

// Kind reports the active variant.
func (n Number) Kind() Kind { return n.kind }

// Re returns the real part.
func (n Number) Re() float64 { return n.re }

// Im returns the imaginary part (0 for real numbers).
func (n Number) Im() float64 { return n.im }

// IsReal reports whether n is the Real variant.
func (n Number) IsReal() bool { return n.kind == KindReal }

// IsComplex reports whether n is the Complex variant.
func (n Number) IsComplex() bool { return n.kind == KindComplex }

// IsZero reports whether both parts are exactly zero.
func (n Number) IsZero() bool { return n.re == 0 && n.im == 0 }

// Complex128 returns n as a complex128 regardless of its variant.
func (n Number) Complex128() complex128 { return complex(n.re, n.im) }

// promote picks the result kind of a binary operation.
func promote(a, b Number) Kind {
	if a.kind == KindComplex || b.kind == KindComplex {
		return KindComplex
	}
	return KindReal
}

// fromParts builds a Number of kind k, dropping the imaginary part for reals.
func fromParts(k Kind, re, im float64) Number {
	if k == KindReal {
		return Real(re)
	}
	return Complex(re, im)
}

// Add returns n + o.
func (n Number) Add(o Number) Number {
	return fromParts(promote(n, o), n.re+o.re, n.im+o.im)
}

// Sub returns n − o.
func (n Number) Sub(o Number) Number {
	return fromParts(promote(n, o), n.re-o.re, n.im-o.im)
}

// Mul returns n · o.
func (n Number) Mul(o Number) Number {
	k := promote(n, o)
	if k == KindReal {
		return Real(n.re * o.re)
	}
	return fromParts(k, n.re*o.re-n.im*o.im, n.re*o.im+n.im*o.re)
}

// Div returns n / o, or ErrDivideByZero when o is exactly zero.
func (n Number) Div(o Number) (Number, error) {
	if o.IsZero() {
		return Number{}, ErrDivideByZero
	}
	k := promote(n, o)
	if k == KindReal {
		return Real(n.re / o.re), nil
	}
	q := n.Complex128() / o.Complex128()
	return Complex(real(q), imag(q)), nil
}

// Neg returns −n.
func (n Number) Neg() Number { return fromParts(n.kind, -n.re, -n.im) }

// Conj returns the complex conjugate of n. The result is always Complex,
// so conjugating a real value yields re + 0i.
func (n Number) Conj() Number { return Complex(n.re, -n.im) }

// Abs returns the modulus |n|.
func (n Number) Abs() float64 {
	if n.kind == KindReal {
		return math.Abs(n.re)
	}
	return math.Hypot(n.re, n.im)
}

// AbsSq returns |n|², i.e. n·conj(n) as a float64.
func (n Number) AbsSq() float64 { return n.re*n.re + n.im*n.im }

// Equal reports whether n and o agree within tol, applied independently to
// the real and imaginary parts. The variants themselves are not compared,
// so Real(1) equals Complex(1, 0).
func (n Number) Equal(o Number, tol float64) bool {
	return math.Abs(n.re-o.re) <= tol && math.Abs(n.im-o.im) <= tol
}

// String renders reals in shortest 'g' form and complex values as (re+imi).
func (n Number) String() string {
	if n.kind == KindReal {
		return strconv.FormatFloat(n.re, 'g', -1, 64)
	}
	return fmt.Sprint(n.Complex128())
}

// Sum adds all values left to right, starting from Zero.
func Sum(values ...Number) Number {
	acc := Zero
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}
