package funcparse

import (
	"math"
	"math/cmplx"
)

// Number is the arithmetic capability an Evaluator needs from its numeric
// type: the five binary operators, the thirteen unary functions, and
// conversion from a parse-time constant. FromComplex must work on the zero
// value of T, since that is all the Evaluator has when it allocates slots.
//
// The component functions follow the formula grammar rather than ordinary
// complex analysis: Pos is the element-wise absolute value, Ang the angle of
// the real/imaginary pair, and Re and Im the absolute values of the
// components as zero-imaginary results. Purely real systems take Ang and Im
// as zero and Re as the identity.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Pow(T) T

	Sin() T
	Cos() T
	Tan() T
	Sinh() T
	Cosh() T
	Tanh() T
	Exp() T
	Log() T
	Abs() T
	Pos() T
	Ang() T
	Re() T
	Im() T

	FromComplex(complex128) T
}

// Complex128 is the double-precision complex number system.
type Complex128 complex128

func (x Complex128) Add(y Complex128) Complex128 { return x + y }
func (x Complex128) Sub(y Complex128) Complex128 { return x - y }
func (x Complex128) Mul(y Complex128) Complex128 { return x * y }
func (x Complex128) Div(y Complex128) Complex128 { return x / y }

func (x Complex128) Pow(y Complex128) Complex128 {
	return Complex128(cmplx.Pow(complex128(x), complex128(y)))
}

func (x Complex128) Sin() Complex128  { return Complex128(cmplx.Sin(complex128(x))) }
func (x Complex128) Cos() Complex128  { return Complex128(cmplx.Cos(complex128(x))) }
func (x Complex128) Tan() Complex128  { return Complex128(cmplx.Tan(complex128(x))) }
func (x Complex128) Sinh() Complex128 { return Complex128(cmplx.Sinh(complex128(x))) }
func (x Complex128) Cosh() Complex128 { return Complex128(cmplx.Cosh(complex128(x))) }
func (x Complex128) Tanh() Complex128 { return Complex128(cmplx.Tanh(complex128(x))) }
func (x Complex128) Exp() Complex128  { return Complex128(cmplx.Exp(complex128(x))) }
func (x Complex128) Log() Complex128  { return Complex128(cmplx.Log(complex128(x))) }

func (x Complex128) Abs() Complex128 {
	return Complex128(complex(cmplx.Abs(complex128(x)), 0))
}

func (x Complex128) Pos() Complex128 {
	return Complex128(complex(math.Abs(real(x)), math.Abs(imag(x))))
}

func (x Complex128) Ang() Complex128 {
	return Complex128(complex(math.Atan2(imag(x), real(x)), 0))
}

func (x Complex128) Re() Complex128 {
	return Complex128(complex(math.Abs(real(x)), 0))
}

func (x Complex128) Im() Complex128 {
	return Complex128(complex(math.Abs(imag(x)), 0))
}

func (Complex128) FromComplex(z complex128) Complex128 { return Complex128(z) }

// Complex64 is the single-precision complex number system. Operations other
// than the field ones round-trip through complex128.
type Complex64 complex64

func (x Complex64) Add(y Complex64) Complex64 { return x + y }
func (x Complex64) Sub(y Complex64) Complex64 { return x - y }
func (x Complex64) Mul(y Complex64) Complex64 { return x * y }
func (x Complex64) Div(y Complex64) Complex64 { return x / y }

func (x Complex64) Pow(y Complex64) Complex64 {
	return Complex64(cmplx.Pow(complex128(x), complex128(y)))
}

func (x Complex64) Sin() Complex64  { return Complex64(cmplx.Sin(complex128(x))) }
func (x Complex64) Cos() Complex64  { return Complex64(cmplx.Cos(complex128(x))) }
func (x Complex64) Tan() Complex64  { return Complex64(cmplx.Tan(complex128(x))) }
func (x Complex64) Sinh() Complex64 { return Complex64(cmplx.Sinh(complex128(x))) }
func (x Complex64) Cosh() Complex64 { return Complex64(cmplx.Cosh(complex128(x))) }
func (x Complex64) Tanh() Complex64 { return Complex64(cmplx.Tanh(complex128(x))) }
func (x Complex64) Exp() Complex64  { return Complex64(cmplx.Exp(complex128(x))) }
func (x Complex64) Log() Complex64  { return Complex64(cmplx.Log(complex128(x))) }

func (x Complex64) Abs() Complex64 {
	return Complex64(complex(cmplx.Abs(complex128(x)), 0))
}

func (x Complex64) Pos() Complex64 {
	return Complex64(complex(math.Abs(float64(real(x))), math.Abs(float64(imag(x)))))
}

func (x Complex64) Ang() Complex64 {
	return Complex64(complex(math.Atan2(float64(imag(x)), float64(real(x))), 0))
}

func (x Complex64) Re() Complex64 {
	return Complex64(complex(math.Abs(float64(real(x))), 0))
}

func (x Complex64) Im() Complex64 {
	return Complex64(complex(math.Abs(float64(imag(x))), 0))
}

func (Complex64) FromComplex(z complex128) Complex64 { return Complex64(complex64(z)) }

// Float64 is the double-precision real number system. Imaginary parts of
// constants are discarded on conversion.
type Float64 float64

func (x Float64) Add(y Float64) Float64 { return x + y }
func (x Float64) Sub(y Float64) Float64 { return x - y }
func (x Float64) Mul(y Float64) Float64 { return x * y }
func (x Float64) Div(y Float64) Float64 { return x / y }

func (x Float64) Pow(y Float64) Float64 {
	return Float64(math.Pow(float64(x), float64(y)))
}

func (x Float64) Sin() Float64  { return Float64(math.Sin(float64(x))) }
func (x Float64) Cos() Float64  { return Float64(math.Cos(float64(x))) }
func (x Float64) Tan() Float64  { return Float64(math.Tan(float64(x))) }
func (x Float64) Sinh() Float64 { return Float64(math.Sinh(float64(x))) }
func (x Float64) Cosh() Float64 { return Float64(math.Cosh(float64(x))) }
func (x Float64) Tanh() Float64 { return Float64(math.Tanh(float64(x))) }
func (x Float64) Exp() Float64  { return Float64(math.Exp(float64(x))) }
func (x Float64) Log() Float64  { return Float64(math.Log(float64(x))) }
func (x Float64) Abs() Float64  { return Float64(math.Abs(float64(x))) }
func (x Float64) Pos() Float64  { return Float64(math.Abs(float64(x))) }
func (x Float64) Ang() Float64  { return 0 }
func (x Float64) Re() Float64   { return x }
func (x Float64) Im() Float64   { return 0 }

func (Float64) FromComplex(z complex128) Float64 { return Float64(real(z)) }

// Float32 is the single-precision real number system.
type Float32 float32

func (x Float32) Add(y Float32) Float32 { return x + y }
func (x Float32) Sub(y Float32) Float32 { return x - y }
func (x Float32) Mul(y Float32) Float32 { return x * y }
func (x Float32) Div(y Float32) Float32 { return x / y }

func (x Float32) Pow(y Float32) Float32 {
	return Float32(math.Pow(float64(x), float64(y)))
}

func (x Float32) Sin() Float32  { return Float32(math.Sin(float64(x))) }
func (x Float32) Cos() Float32  { return Float32(math.Cos(float64(x))) }
func (x Float32) Tan() Float32  { return Float32(math.Tan(float64(x))) }
func (x Float32) Sinh() Float32 { return Float32(math.Sinh(float64(x))) }
func (x Float32) Cosh() Float32 { return Float32(math.Cosh(float64(x))) }
func (x Float32) Tanh() Float32 { return Float32(math.Tanh(float64(x))) }
func (x Float32) Exp() Float32  { return Float32(math.Exp(float64(x))) }
func (x Float32) Log() Float32  { return Float32(math.Log(float64(x))) }
func (x Float32) Abs() Float32  { return Float32(math.Abs(float64(x))) }
func (x Float32) Pos() Float32  { return Float32(math.Abs(float64(x))) }
func (x Float32) Ang() Float32  { return 0 }
func (x Float32) Re() Float32   { return x }
func (x Float32) Im() Float32   { return 0 }

func (Float32) FromComplex(z complex128) Float32 { return Float32(real(z)) }
