// SPDX-License-Identifier: MIT

// Package ad - arithmetic kernels.
//
// Purpose:
//   - Implement the sum, product, quotient and power rules over derivative vectors.
//   - Centralize the broadcast rule (empty vector ⇒ zeros) in two helpers: combine and scaled.
//
// Determinism:
//   - Fixed 0..n-1 loops; results never alias an operand's buffer.
//
// AI-Hints:
//   - Mixed real arithmetic (AddReal, RealDiv, ...) is exactly the promoted-constant
//     form of the AD operation; Const carries no slice, so it costs nothing.

package ad

import (
	"fmt"
	"math"
)

// Operation tags for panics and wrapped errors.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opDiv   = "Div"
	opPowAD = "PowAD"
	opAtan2 = "Atan2"
)

// Compatible reports whether a and b may be combined: equal derivative
// lengths, or at least one of them a constant.
//
// Errors:
//   - ErrLengthMismatch (wrapped with both lengths).
func Compatible(a, b Scalar) error {
	la, lb := len(a.derivs), len(b.derivs)
	if la != lb && la != 0 && lb != 0 {
		return fmt.Errorf("%d vs %d: %w", la, lb, ErrLengthMismatch)
	}

	return nil
}

// mustCompatible panics on mismatched lengths: mixing two different
// problems is a programmer error, like indexing out of range.
func mustCompatible(tag string, a, b Scalar) {
	if err := Compatible(a, b); err != nil {
		panic(adErrorf(tag, err))
	}
}

// combine returns out[i] = fa*da[i] + fb*db[i].
// Implementation:
//   - Stage 1: n = max(len(da), len(db)); nil when both are empty.
//   - Stage 2: an empty side contributes nothing (it is never multiplied), so
//     fa or fb may be ±Inf/NaN for a constant operand without poisoning the result.
//
// Complexity:
//   - Time O(n), Space O(n).
func combine(da, db []float64, fa, fb float64) []float64 {
	n := len(da)
	if len(db) > n {
		n = len(db)
	}
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	var i int
	if len(da) != 0 {
		for i = 0; i < n; i++ {
			out[i] = fa * da[i]
		}
	}
	if len(db) != 0 {
		for i = 0; i < n; i++ {
			out[i] += fb * db[i]
		}
	}

	return out
}

// scaled returns out[i] = f*d[i]; nil for a constant.
// Complexity: O(n).
func scaled(d []float64, f float64) []float64 {
	if len(d) == 0 {
		return nil
	}
	out := make([]float64, len(d))
	for i := range d {
		out[i] = f * d[i]
	}

	return out
}

// Neg returns −a; every derivative is negated.
func (a Scalar) Neg() Scalar {
	return Scalar{value: -a.value, derivs: scaled(a.derivs, -1)}
}

// Add returns a + b.
//
//	value = a + b, d[i] = da[i] + db[i]
//
// Panics with ErrLengthMismatch when both derivative vectors are non-empty
// and of different lengths.
func (a Scalar) Add(b Scalar) Scalar {
	mustCompatible(opAdd, a, b)

	return Scalar{value: a.value + b.value, derivs: combine(a.derivs, b.derivs, 1, 1)}
}

// Sub returns a − b.
//
//	value = a − b, d[i] = da[i] − db[i]
func (a Scalar) Sub(b Scalar) Scalar {
	mustCompatible(opSub, a, b)

	return Scalar{value: a.value - b.value, derivs: combine(a.derivs, b.derivs, 1, -1)}
}

// Mul returns a·b by the product rule.
//
//	value = a·b, d[i] = da[i]·b + a·db[i]
func (a Scalar) Mul(b Scalar) Scalar {
	mustCompatible(opMul, a, b)

	return Scalar{value: a.value * b.value, derivs: combine(a.derivs, b.derivs, b.value, a.value)}
}

// Div returns a/b by the quotient rule.
//
//	value = a/b, d[i] = (da[i]·b − a·db[i]) / b²
//
// Division by zero is not an error: value and derivatives follow IEEE-754
// (±Inf or NaN) term by term, exactly as the formula on float64 would.
func (a Scalar) Div(b Scalar) Scalar {
	mustCompatible(opDiv, a, b)
	n := max(len(a.derivs), len(b.derivs))
	if n == 0 {
		return Scalar{value: a.value / b.value}
	}
	b2 := b.value * b.value
	out := make([]float64, n)
	var num float64
	for i := 0; i < n; i++ {
		num = 0
		if len(a.derivs) != 0 {
			num = a.derivs[i] * b.value
		}
		if len(b.derivs) != 0 {
			num -= a.value * b.derivs[i]
		}
		out[i] = num / b2
	}

	return Scalar{value: a.value / b.value, derivs: out}
}

// Pow returns a**p for a real exponent p (integers included).
//
//	value = aᵖ, d[i] = p·aᵖ⁻¹·da[i]
//
// Special case: p == 0 yields a zero derivative vector of the same length
// (d/dx x⁰ = 0 even where aᵖ⁻¹ overflows).
func (a Scalar) Pow(p float64) Scalar {
	v := math.Pow(a.value, p)
	if p == 0 {
		if len(a.derivs) == 0 {
			return Scalar{value: v}
		}
		return Scalar{value: v, derivs: make([]float64, len(a.derivs))}
	}

	return Scalar{value: v, derivs: scaled(a.derivs, p*math.Pow(a.value, p-1))}
}

// PowAD returns a**b with an AD exponent.
//
//	value = aᵇ, d[i] = b·aᵇ⁻¹·da[i] + aᵇ·ln(a)·db[i]
//
// When b is a constant the ln(a) term is skipped, so negative bases with
// integral constant exponents keep finite derivatives, matching Pow.
func PowAD(a, b Scalar) Scalar {
	mustCompatible(opPowAD, a, b)
	if len(b.derivs) == 0 {
		return a.Pow(b.value)
	}
	v := math.Pow(a.value, b.value)

	return Scalar{value: v, derivs: combine(a.derivs, b.derivs, b.value*math.Pow(a.value, b.value-1), v*math.Log(a.value))}
}

// ---------- Real-mixed arithmetic (promoted-constant forms) ----------
//
// Each form is the AD operation with Const(r) on one side, so results match
// the promoted form bit for bit, IEEE specials and signed zeros included.

// AddReal returns a + r.
func (a Scalar) AddReal(r float64) Scalar { return a.Add(Const(r)) }

// SubReal returns a − r.
func (a Scalar) SubReal(r float64) Scalar { return a.Sub(Const(r)) }

// MulReal returns a·r.
func (a Scalar) MulReal(r float64) Scalar { return a.Mul(Const(r)) }

// DivReal returns a/r; d[i] = da[i]·r/r², so DivReal(0) follows Div's 0/0.
func (a Scalar) DivReal(r float64) Scalar { return a.Div(Const(r)) }

// RealSub returns r − a.
func RealSub(r float64, a Scalar) Scalar { return Const(r).Sub(a) }

// RealDiv returns r/a; d[i] = −r·da[i]/a².
func RealDiv(r float64, a Scalar) Scalar { return Const(r).Div(a) }
