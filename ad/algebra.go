// SPDX-License-Identifier: MIT

// Package ad - one algebra, two shapes.
//
// Purpose:
//   - Algebra names every operation of the scalar algebra once, so generic code
//     (and the property tests) can run against a single Scalar or a whole Vector.
//   - ScalarAlgebra forwards to the Scalar methods/functions.
//   - VectorAlgebra lifts each of them element-wise, broadcasting a length-1 operand.
//
// Type parameters:
//   - T: the algebra's element (Scalar or Vector).
//   - R: what Ceil/Floor return (float64 or []float64): value-only results.
//   - B: what comparisons return (bool or []bool).
//
// AI-Hints:
//   - FromReal(2) is how constants enter generic code: Add(a, FromReal(1)) is a + 1.

package ad

import "fmt"

// Algebra is the closed set of operations over AD values of shape T.
type Algebra[T, R, B any] interface {
	FromScalar(s Scalar) T
	FromReal(r float64) T

	Neg(a T) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Pow(a T, p float64) T

	Eq(a, b T) B
	Ne(a, b T) B
	Lt(a, b T) B
	Le(a, b T) B
	Gt(a, b T) B
	Ge(a, b T) B

	Log(a T) T
	Exp(a T) T
	Sqrt(a T) T
	Sin(a T) T
	Cos(a T) T
	Tan(a T) T
	Asin(a T) T
	Acos(a T) T
	Atan2(y, x T) T
	Sinh(a T) T
	Cosh(a T) T
	Tanh(a T) T
	Abs(a T) T
	Min(a, b T) T
	Max(a, b T) T

	Ceil(a T) R
	Floor(a T) R
}

// Compile-time conformance.
var (
	_ Algebra[Scalar, float64, bool]     = ScalarAlgebra{}
	_ Algebra[Vector, []float64, []bool] = VectorAlgebra{}
)

// ---------- ScalarAlgebra ----------

// ScalarAlgebra is the algebra over a single Scalar.
type ScalarAlgebra struct{}

// FromScalar returns s unchanged.
func (ScalarAlgebra) FromScalar(s Scalar) Scalar { return s }

// FromReal returns the constant r.
func (ScalarAlgebra) FromReal(r float64) Scalar { return Const(r) }

// Neg returns −a.
func (ScalarAlgebra) Neg(a Scalar) Scalar { return a.Neg() }

// Add returns a + b.
func (ScalarAlgebra) Add(a, b Scalar) Scalar { return a.Add(b) }

// Sub returns a − b.
func (ScalarAlgebra) Sub(a, b Scalar) Scalar { return a.Sub(b) }

// Mul returns a·b.
func (ScalarAlgebra) Mul(a, b Scalar) Scalar { return a.Mul(b) }

// Div returns a/b.
func (ScalarAlgebra) Div(a, b Scalar) Scalar { return a.Div(b) }

// Pow returns a**p.
func (ScalarAlgebra) Pow(a Scalar, p float64) Scalar { return a.Pow(p) }

// Eq reports a == b on values.
func (ScalarAlgebra) Eq(a, b Scalar) bool { return a.Eq(b) }

// Ne reports a != b on values.
func (ScalarAlgebra) Ne(a, b Scalar) bool { return a.Ne(b) }

// Lt reports a < b on values.
func (ScalarAlgebra) Lt(a, b Scalar) bool { return a.Lt(b) }

// Le reports a <= b on values.
func (ScalarAlgebra) Le(a, b Scalar) bool { return a.Le(b) }

// Gt reports a > b on values.
func (ScalarAlgebra) Gt(a, b Scalar) bool { return a.Gt(b) }

// Ge reports a >= b on values.
func (ScalarAlgebra) Ge(a, b Scalar) bool { return a.Ge(b) }

// Log returns ln a.
func (ScalarAlgebra) Log(a Scalar) Scalar { return Log(a) }

// Exp returns e**a.
func (ScalarAlgebra) Exp(a Scalar) Scalar { return Exp(a) }

// Sqrt returns √a.
func (ScalarAlgebra) Sqrt(a Scalar) Scalar { return Sqrt(a) }

// Sin returns sin a.
func (ScalarAlgebra) Sin(a Scalar) Scalar { return Sin(a) }

// Cos returns cos a.
func (ScalarAlgebra) Cos(a Scalar) Scalar { return Cos(a) }

// Tan returns tan a.
func (ScalarAlgebra) Tan(a Scalar) Scalar { return Tan(a) }

// Asin returns asin a.
func (ScalarAlgebra) Asin(a Scalar) Scalar { return Asin(a) }

// Acos returns acos a.
func (ScalarAlgebra) Acos(a Scalar) Scalar { return Acos(a) }

// Atan2 returns atan2(y, x).
func (ScalarAlgebra) Atan2(y, x Scalar) Scalar { return Atan2(y, x) }

// Sinh returns sinh a.
func (ScalarAlgebra) Sinh(a Scalar) Scalar { return Sinh(a) }

// Cosh returns cosh a.
func (ScalarAlgebra) Cosh(a Scalar) Scalar { return Cosh(a) }

// Tanh returns tanh a.
func (ScalarAlgebra) Tanh(a Scalar) Scalar { return Tanh(a) }

// Abs returns |a|.
func (ScalarAlgebra) Abs(a Scalar) Scalar { return Abs(a) }

// Min returns the operand with the smaller value.
func (ScalarAlgebra) Min(a, b Scalar) Scalar { return Min(a, b) }

// Max returns the operand with the larger value.
func (ScalarAlgebra) Max(a, b Scalar) Scalar { return Max(a, b) }

// Ceil returns ⌈a⌉ as a plain real.
func (ScalarAlgebra) Ceil(a Scalar) float64 { return Ceil(a) }

// Floor returns ⌊a⌋ as a plain real.
func (ScalarAlgebra) Floor(a Scalar) float64 { return Floor(a) }

// ---------- VectorAlgebra ----------

// VectorAlgebra lifts ScalarAlgebra element-wise over Vectors.
//
// Binary operations require equal lengths, except that a length-1 operand is
// broadcast against the other one (this is how FromReal constants combine
// with vectors). Any other length pair panics with ErrShape, mirroring the
// scalar algebra's panic on derivative length mismatch.
type VectorAlgebra struct{}

// FromScalar wraps s as a length-1 vector.
func (VectorAlgebra) FromScalar(s Scalar) Vector { return Vector{s} }

// FromReal wraps a constant as a length-1 vector.
func (VectorAlgebra) FromReal(r float64) Vector { return Vector{Const(r)} }

// broadcastLen returns the output length of a binary element-wise op.
func broadcastLen(tag string, la, lb int) int {
	switch {
	case la == lb:
		return la
	case la == 1:
		return lb
	case lb == 1:
		return la
	}
	panic(adErrorf(tag, fmt.Errorf("%d vs %d: %w", la, lb, ErrShape)))
}

// at reads v[i] with length-1 broadcasting.
func at(v Vector, i int) Scalar {
	if len(v) == 1 {
		return v[0]
	}

	return v[i]
}

func mapUnary(a Vector, f func(Scalar) Scalar) Vector {
	out := make(Vector, len(a))
	for i := range a {
		out[i] = f(a[i])
	}

	return out
}

func mapBinary(tag string, a, b Vector, f func(Scalar, Scalar) Scalar) Vector {
	n := broadcastLen(tag, len(a), len(b))
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		out[i] = f(at(a, i), at(b, i))
	}

	return out
}

func mapLogical(tag string, a, b Vector, f func(Scalar, Scalar) bool) []bool {
	n := broadcastLen(tag, len(a), len(b))
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = f(at(a, i), at(b, i))
	}

	return out
}

func mapReal(a Vector, f func(Scalar) float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = f(a[i])
	}

	return out
}

// Neg returns element-wise −a.
func (VectorAlgebra) Neg(a Vector) Vector { return mapUnary(a, Scalar.Neg) }

// Add returns element-wise a + b.
func (VectorAlgebra) Add(a, b Vector) Vector {
	return mapBinary(opAdd, a, b, Scalar.Add)
}

// Sub returns element-wise a − b.
func (VectorAlgebra) Sub(a, b Vector) Vector {
	return mapBinary(opSub, a, b, Scalar.Sub)
}

// Mul returns element-wise a·b.
func (VectorAlgebra) Mul(a, b Vector) Vector {
	return mapBinary(opMul, a, b, Scalar.Mul)
}

// Div returns element-wise a/b.
func (VectorAlgebra) Div(a, b Vector) Vector {
	return mapBinary(opDiv, a, b, Scalar.Div)
}

// Pow returns element-wise a**p.
func (VectorAlgebra) Pow(a Vector, p float64) Vector {
	return mapUnary(a, func(s Scalar) Scalar { return s.Pow(p) })
}

// Eq reports element-wise a == b on values.
func (VectorAlgebra) Eq(a, b Vector) []bool { return mapLogical("Eq", a, b, Scalar.Eq) }

// Ne reports element-wise a != b on values.
func (VectorAlgebra) Ne(a, b Vector) []bool { return mapLogical("Ne", a, b, Scalar.Ne) }

// Lt reports element-wise a < b on values.
func (VectorAlgebra) Lt(a, b Vector) []bool { return mapLogical("Lt", a, b, Scalar.Lt) }

// Le reports element-wise a <= b on values.
func (VectorAlgebra) Le(a, b Vector) []bool { return mapLogical("Le", a, b, Scalar.Le) }

// Gt reports element-wise a > b on values.
func (VectorAlgebra) Gt(a, b Vector) []bool { return mapLogical("Gt", a, b, Scalar.Gt) }

// Ge reports element-wise a >= b on values.
func (VectorAlgebra) Ge(a, b Vector) []bool { return mapLogical("Ge", a, b, Scalar.Ge) }

// Log returns element-wise ln a.
func (VectorAlgebra) Log(a Vector) Vector { return mapUnary(a, Log) }

// Exp returns element-wise e**a.
func (VectorAlgebra) Exp(a Vector) Vector { return mapUnary(a, Exp) }

// Sqrt returns element-wise √a.
func (VectorAlgebra) Sqrt(a Vector) Vector { return mapUnary(a, Sqrt) }

// Sin returns element-wise sin a.
func (VectorAlgebra) Sin(a Vector) Vector { return mapUnary(a, Sin) }

// Cos returns element-wise cos a.
func (VectorAlgebra) Cos(a Vector) Vector { return mapUnary(a, Cos) }

// Tan returns element-wise tan a.
func (VectorAlgebra) Tan(a Vector) Vector { return mapUnary(a, Tan) }

// Asin returns element-wise asin a.
func (VectorAlgebra) Asin(a Vector) Vector { return mapUnary(a, Asin) }

// Acos returns element-wise acos a.
func (VectorAlgebra) Acos(a Vector) Vector { return mapUnary(a, Acos) }

// Atan2 returns element-wise atan2(y, x).
func (VectorAlgebra) Atan2(y, x Vector) Vector {
	return mapBinary(opAtan2, y, x, Atan2)
}

// Sinh returns element-wise sinh a.
func (VectorAlgebra) Sinh(a Vector) Vector { return mapUnary(a, Sinh) }

// Cosh returns element-wise cosh a.
func (VectorAlgebra) Cosh(a Vector) Vector { return mapUnary(a, Cosh) }

// Tanh returns element-wise tanh a.
func (VectorAlgebra) Tanh(a Vector) Vector { return mapUnary(a, Tanh) }

// Abs returns element-wise |a|.
func (VectorAlgebra) Abs(a Vector) Vector { return mapUnary(a, Abs) }

// Min returns element-wise the operand with the smaller value.
func (VectorAlgebra) Min(a, b Vector) Vector {
	return mapBinary("Min", a, b, Min)
}

// Max returns element-wise the operand with the larger value.
func (VectorAlgebra) Max(a, b Vector) Vector {
	return mapBinary("Max", a, b, Max)
}

// Ceil returns element-wise ⌈a⌉ as a plain real.
func (VectorAlgebra) Ceil(a Vector) []float64 { return mapReal(a, Ceil) }

// Floor returns element-wise ⌊a⌋ as a plain real.
func (VectorAlgebra) Floor(a Vector) []float64 { return mapReal(a, Floor) }
