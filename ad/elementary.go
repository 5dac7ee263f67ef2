// SPDX-License-Identifier: MIT

package ad

import "math"

// unary applies f with derivative factor f'(a) by the chain rule.
func unary(a Scalar, v, deriv float64) Scalar {
	return Scalar{value: v, derivs: scaled(a.derivs, deriv)}
}

// Log returns the natural logarithm of a; d = da/a.
//
// Special cases follow math.Log: Log(0) = -Inf with ±Inf derivatives,
// Log(x < 0) = NaN.
func Log(a Scalar) Scalar {
	return unary(a, math.Log(a.value), 1/a.value)
}

// Exp returns e**a; d = eᵃ·da.
func Exp(a Scalar) Scalar {
	v := math.Exp(a.value)
	return unary(a, v, v)
}

// Sqrt returns the square root of a; d = da/(2√a).
//
// Sqrt(0) has infinite derivatives; Sqrt(x < 0) = NaN.
func Sqrt(a Scalar) Scalar {
	v := math.Sqrt(a.value)
	return unary(a, v, 1/(2*v))
}

// Sin returns the sine of a; d = cos(a)·da.
func Sin(a Scalar) Scalar {
	return unary(a, math.Sin(a.value), math.Cos(a.value))
}

// Cos returns the cosine of a; d = −sin(a)·da.
func Cos(a Scalar) Scalar {
	return unary(a, math.Cos(a.value), -math.Sin(a.value))
}

// Tan returns the tangent of a; d = sec²(a)·da = (1 + tan²a)·da.
func Tan(a Scalar) Scalar {
	v := math.Tan(a.value)
	return unary(a, v, 1+v*v)
}

// Asin returns the inverse sine of a; d = da/√(1−a²).
//
// Asin(±1) has infinite derivatives; |a| > 1 yields NaN.
func Asin(a Scalar) Scalar {
	return unary(a, math.Asin(a.value), 1/math.Sqrt(1-a.value*a.value))
}

// Acos returns the inverse cosine of a; d = −da/√(1−a²).
func Acos(a Scalar) Scalar {
	return unary(a, math.Acos(a.value), -1/math.Sqrt(1-a.value*a.value))
}

// Atan returns the inverse tangent of a; d = da/(1+a²).
func Atan(a Scalar) Scalar {
	return unary(a, math.Atan(a.value), 1/(1+a.value*a.value))
}

// Atan2 returns the angle of the point (x, y), combining both operands'
// derivatives:
//
//	d = (x·dy − y·dx) / (x² + y²)
func Atan2(y, x Scalar) Scalar {
	mustCompatible(opAtan2, y, x)
	r2 := x.value*x.value + y.value*y.value

	return Scalar{
		value:  math.Atan2(y.value, x.value),
		derivs: combine(y.derivs, x.derivs, x.value/r2, -y.value/r2),
	}
}

// Sinh returns the hyperbolic sine of a; d = cosh(a)·da.
func Sinh(a Scalar) Scalar {
	return unary(a, math.Sinh(a.value), math.Cosh(a.value))
}

// Cosh returns the hyperbolic cosine of a; d = sinh(a)·da.
func Cosh(a Scalar) Scalar {
	return unary(a, math.Cosh(a.value), math.Sinh(a.value))
}

// Tanh returns the hyperbolic tangent of a; d = (1 − tanh²a)·da.
func Tanh(a Scalar) Scalar {
	v := math.Tanh(a.value)
	return unary(a, v, 1-v*v)
}

// Abs returns |a|; d = sign(a)·da.
//
// At a == 0 (either signed zero) the sign is taken as +1, so Abs passes the
// derivatives through unchanged there.
func Abs(a Scalar) Scalar {
	if a.value < 0 {
		return unary(a, -a.value, -1)
	}

	return unary(a, math.Abs(a.value), 1)
}

// Min returns whichever operand has the smaller value, whole: value and
// derivatives of that operand, never a component-wise mix. Ties return a.
func Min(a, b Scalar) Scalar {
	if b.value < a.value {
		return b
	}

	return a
}

// Max returns whichever operand has the larger value, whole. Ties return a.
func Max(a, b Scalar) Scalar {
	if b.value > a.value {
		return b
	}

	return a
}

// Ceil returns ⌈a⌉ as a plain float64. The function is piecewise constant,
// so the derivatives are dropped rather than reported as zeros.
func Ceil(a Scalar) float64 { return math.Ceil(a.value) }

// Floor returns ⌊a⌋ as a plain float64; derivatives are dropped.
func Floor(a Scalar) float64 { return math.Floor(a.value) }
