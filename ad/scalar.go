// SPDX-License-Identifier: MIT

// Package ad - Scalar storage, constructors & accessors.
//
// Purpose:
//   - Hold (value, derivatives) as an immutable pair; every operation allocates its result.
//   - Keep the derivative buffer private: New copies in, Derivatives copies out.
//   - Render the two diagnostic forms: String (display) and GoString (debug, %#v).
//
// Complexity quicksheet:
//   - New/Clone/Derivatives: O(n); Value/NDeriv/Derivative: O(1).

package ad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtDisplay = "AD{%s, nderiv=%d}"
	_fmtDebug   = "<AD %s nderiv=%d>"
)

// Scalar is a forward-mode AD number: a value and its partial derivatives.
//   - value is the primal float64.
//   - derivs holds ∂value/∂x_i; an empty slice marks a constant.
//
// The zero Scalar is the constant 0.
type Scalar struct {
	value  float64   // primal value
	derivs []float64 // partials; never written after construction
}

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer   = Scalar{}
	_ fmt.GoStringer = Scalar{}
)

// New returns a Scalar with the given value and derivative vector.
// MAIN DESCRIPTION:
//   - Public constructor; the derivative slice is copied, so the caller may
//     reuse or mutate it afterwards without affecting the result.
//
// Inputs:
//   - value: primal value.
//   - derivatives: partials (nil or empty ⇒ constant).
//
// Complexity:
//   - Time O(n), Space O(n).
func New(value float64, derivatives []float64) Scalar {
	if len(derivatives) == 0 {
		return Scalar{value: value}
	}
	d := make([]float64, len(derivatives))
	copy(d, derivatives)

	return Scalar{value: value, derivs: d}
}

// Const returns a constant: value with no tracked sensitivity.
// Complexity: O(1).
func Const(value float64) Scalar {
	return Scalar{value: value}
}

// Variable returns the index-th of n independent variables: value with the
// unit vector e_index as its derivatives.
//
// Errors:
//   - ErrIndexOutOfRange when n <= 0 or index ∉ [0, n).
//
// Complexity: O(n).
func Variable(value float64, index, n int) (Scalar, error) {
	if n <= 0 || index < 0 || index >= n {
		return Scalar{}, adErrorf("Variable", fmt.Errorf("index %d of %d: %w", index, n, ErrIndexOutOfRange))
	}
	d := make([]float64, n)
	d[index] = 1

	return Scalar{value: value, derivs: d}, nil
}

// Value returns the primal value. It is the only AD → real conversion.
func (a Scalar) Value() float64 { return a.value }

// Derivatives returns a copy of the derivative vector (never nil).
// Mutating the result does not affect a.
// Complexity: O(n).
func (a Scalar) Derivatives() []float64 {
	out := make([]float64, len(a.derivs))
	copy(out, a.derivs)

	return out
}

// Derivative returns ∂a/∂x_i. A constant, or an index past the vector's end,
// reports 0: missing partials are zeros by the broadcast rule.
func (a Scalar) Derivative(i int) float64 {
	if i < 0 || i >= len(a.derivs) {
		return 0
	}

	return a.derivs[i]
}

// NDeriv returns the length of the derivative vector.
func (a Scalar) NDeriv() int { return len(a.derivs) }

// IsConst reports whether a carries no derivative vector at all.
func (a Scalar) IsConst() bool { return len(a.derivs) == 0 }

// Clone returns a deep copy of a that shares no storage with it.
// Complexity: O(n).
func (a Scalar) Clone() Scalar {
	return New(a.value, a.derivs)
}

// String renders the display form, e.g. "AD{1.0, nderiv=2}".
func (a Scalar) String() string {
	return fmt.Sprintf(_fmtDisplay, formatValue(a.value), len(a.derivs))
}

// GoString renders the debug form used by %#v, e.g. "<AD 1.0 nderiv=2>".
func (a Scalar) GoString() string {
	return fmt.Sprintf(_fmtDebug, formatValue(a.value), len(a.derivs))
}

// formatValue prints the shortest round-trip representation and keeps a
// trailing ".0" on integral finite values so 1 prints as "1.0".
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
