package funcparse

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// bigRealPrec is the precision of BigReal results, in bits.
const bigRealPrec = 128

// BigReal is the extended-precision real number system, backed by big.Float.
// The zero value is 0. Exponentiation, exp, and log are exact to bigRealPrec
// bits; the trigonometric functions round-trip through float64. big.Float
// has no NaN, so out-of-domain results become infinities: log of a
// non-positive value is -Inf, and a float64 round-trip that produces NaN
// yields +Inf.
type BigReal struct {
	f *big.Float
}

// NewBigReal returns v as a BigReal.
func NewBigReal(v float64) BigReal {
	return BigReal{new(big.Float).SetPrec(bigRealPrec).SetFloat64(v)}
}

// BigFromFloat wraps f without copying it.
func BigFromFloat(f *big.Float) BigReal {
	return BigReal{f}
}

// Float returns the wrapped value. The result is shared, not copied, and is
// never nil.
func (x BigReal) Float() *big.Float {
	return x.val()
}

func (x BigReal) val() *big.Float {
	if x.f == nil {
		return new(big.Float).SetPrec(bigRealPrec)
	}
	return x.f
}

func out() *big.Float {
	return new(big.Float).SetPrec(bigRealPrec)
}

func (x BigReal) Add(y BigReal) BigReal { return BigReal{out().Add(x.val(), y.val())} }
func (x BigReal) Sub(y BigReal) BigReal { return BigReal{out().Sub(x.val(), y.val())} }
func (x BigReal) Mul(y BigReal) BigReal { return BigReal{out().Mul(x.val(), y.val())} }

func (x BigReal) Div(y BigReal) BigReal {
	a, b := x.val(), y.val()
	// big.Float.Quo panics on 0/0 and Inf/Inf.
	if a.Sign() == 0 && b.Sign() == 0 || a.IsInf() && b.IsInf() {
		return BigReal{out().SetInf(false)}
	}
	return BigReal{out().Quo(a, b)}
}

// Pow computes x**y. Negative bases are handled for integer exponents by
// repeated multiplication; a negative base with a fractional exponent has no
// real result and becomes +Inf.
func (x BigReal) Pow(y BigReal) BigReal {
	a, b := x.val(), y.val()
	if a.Sign() >= 0 {
		return BigReal{bigfloat.Pow(out(), a, b)}
	}
	if n, acc := b.Int64(); acc == big.Exact {
		return BigReal{intPow(a, n)}
	}
	return BigReal{out().SetInf(false)}
}

// intPow raises a to the integer power n by repeated squaring.
func intPow(a *big.Float, n int64) *big.Float {
	neg := n < 0
	if neg {
		n = -n
	}
	r := out().SetInt64(1)
	b := out().Set(a)
	for n > 0 {
		if n%2 == 1 {
			r.Mul(r, b)
		}
		b.Mul(b, b)
		n /= 2
	}
	if neg {
		if r.Sign() == 0 {
			return out().SetInf(false)
		}
		r.Quo(out().SetInt64(1), r)
	}
	return r
}

// f64 applies a float64 function to x and lifts the result back, mapping NaN
// to +Inf.
func (x BigReal) f64(fn func(float64) float64) BigReal {
	f, _ := x.val().Float64()
	v := fn(f)
	if math.IsNaN(v) {
		return BigReal{out().SetInf(false)}
	}
	if math.IsInf(v, 0) {
		return BigReal{out().SetInf(v < 0)}
	}
	return BigReal{out().SetFloat64(v)}
}

func (x BigReal) Sin() BigReal  { return x.f64(math.Sin) }
func (x BigReal) Cos() BigReal  { return x.f64(math.Cos) }
func (x BigReal) Tan() BigReal  { return x.f64(math.Tan) }
func (x BigReal) Sinh() BigReal { return x.f64(math.Sinh) }
func (x BigReal) Cosh() BigReal { return x.f64(math.Cosh) }
func (x BigReal) Tanh() BigReal { return x.f64(math.Tanh) }

func (x BigReal) Exp() BigReal {
	a := x.val()
	if a.IsInf() {
		if a.Signbit() {
			return BigReal{out()}
		}
		return BigReal{out().SetInf(false)}
	}
	return BigReal{bigfloat.Exp(out(), a)}
}

func (x BigReal) Log() BigReal {
	a := x.val()
	if a.Sign() <= 0 {
		return BigReal{out().SetInf(true)}
	}
	return BigReal{bigfloat.Log(out(), a)}
}

func (x BigReal) Abs() BigReal { return BigReal{out().Abs(x.val())} }
func (x BigReal) Pos() BigReal { return BigReal{out().Abs(x.val())} }
func (x BigReal) Ang() BigReal { return BigReal{} }
func (x BigReal) Re() BigReal  { return x }
func (x BigReal) Im() BigReal  { return BigReal{} }

func (BigReal) FromComplex(z complex128) BigReal {
	return NewBigReal(real(z))
}

// String formats the value in shortest decimal form.
func (x BigReal) String() string {
	return x.val().Text('g', -1)
}
