package funcparse

import (
	"math"

	"github.com/shopspring/decimal"
)

// Dec is the fixed-point decimal real number system, backed by
// shopspring/decimal. The zero value is 0. Addition, subtraction,
// multiplication, division, and integer powers are exact decimal
// operations; the transcendental functions and fractional powers
// round-trip through float64. Decimals cannot hold NaN or infinity, so
// division by zero and out-of-domain results collapse to 0.
type Dec decimal.Decimal

// NewDec returns v as a Dec.
func NewDec(v float64) Dec {
	return Dec(decimal.NewFromFloat(v))
}

// DecFromString parses a decimal literal, e.g. "1.355".
func DecFromString(s string) (Dec, error) {
	d, err := decimal.NewFromString(s)
	return Dec(d), err
}

// Decimal returns the wrapped value.
func (x Dec) Decimal() decimal.Decimal {
	return decimal.Decimal(x)
}

func (x Dec) Add(y Dec) Dec { return Dec(x.Decimal().Add(y.Decimal())) }
func (x Dec) Sub(y Dec) Dec { return Dec(x.Decimal().Sub(y.Decimal())) }
func (x Dec) Mul(y Dec) Dec { return Dec(x.Decimal().Mul(y.Decimal())) }

func (x Dec) Div(y Dec) Dec {
	if y.Decimal().IsZero() {
		return Dec{}
	}
	return Dec(x.Decimal().Div(y.Decimal()))
}

// Pow computes x**y, exactly for integer exponents and through float64
// otherwise.
func (x Dec) Pow(y Dec) Dec {
	e := y.Decimal()
	if e.IsInteger() {
		n := e.IntPart()
		if n < 0 {
			r := decIntPow(x.Decimal(), -n)
			if r.IsZero() {
				return Dec{}
			}
			return Dec(decimal.New(1, 0).Div(r))
		}
		return Dec(decIntPow(x.Decimal(), n))
	}
	return x.lift2(y, math.Pow)
}

// decIntPow raises d to the non-negative integer power n by repeated
// squaring.
func decIntPow(d decimal.Decimal, n int64) decimal.Decimal {
	r := decimal.New(1, 0)
	b := d
	for n > 0 {
		if n%2 == 1 {
			r = r.Mul(b)
		}
		b = b.Mul(b)
		n /= 2
	}
	return r
}

// lift applies a float64 function to x; non-finite results become 0.
func (x Dec) lift(fn func(float64) float64) Dec {
	f, _ := x.Decimal().Float64()
	v := fn(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Dec{}
	}
	return Dec(decimal.NewFromFloat(v))
}

func (x Dec) lift2(y Dec, fn func(_, _ float64) float64) Dec {
	f, _ := x.Decimal().Float64()
	g, _ := y.Decimal().Float64()
	v := fn(f, g)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Dec{}
	}
	return Dec(decimal.NewFromFloat(v))
}

func (x Dec) Sin() Dec  { return x.lift(math.Sin) }
func (x Dec) Cos() Dec  { return x.lift(math.Cos) }
func (x Dec) Tan() Dec  { return x.lift(math.Tan) }
func (x Dec) Sinh() Dec { return x.lift(math.Sinh) }
func (x Dec) Cosh() Dec { return x.lift(math.Cosh) }
func (x Dec) Tanh() Dec { return x.lift(math.Tanh) }
func (x Dec) Exp() Dec  { return x.lift(math.Exp) }
func (x Dec) Log() Dec  { return x.lift(math.Log) }

func (x Dec) Abs() Dec { return Dec(x.Decimal().Abs()) }
func (x Dec) Pos() Dec { return Dec(x.Decimal().Abs()) }
func (x Dec) Ang() Dec { return Dec{} }
func (x Dec) Re() Dec  { return x }
func (x Dec) Im() Dec  { return Dec{} }

func (Dec) FromComplex(z complex128) Dec {
	r := real(z)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Dec{}
	}
	return Dec(decimal.NewFromFloat(r))
}

// String formats the value in decimal notation.
func (x Dec) String() string {
	return x.Decimal().String()
}
