// SPDX-License-Identifier: MIT

package ad

import "fmt"

// Vector is an ordered, fixed-length sequence of Scalars.
// Element-wise operations live on VectorAlgebra; Vector itself carries the
// reductions (Dot, Sum) and the explicit value extraction.
type Vector []Scalar

// Values extracts every element's value. This is the explicit, bulk AD →
// real exit; the derivatives are intentionally left behind.
// Complexity: O(n).
func (v Vector) Values() []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i].value
	}

	return out
}

// Clone deep-copies the vector and every element's derivatives.
// Complexity: O(n·nderiv).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Clone()
	}

	return out
}

// NDeriv returns the derivative length shared by the non-constant elements,
// or 0 when every element is a constant.
//
// Errors:
//   - ErrLengthMismatch when two non-constant elements disagree.
func (v Vector) NDeriv() (int, error) {
	n := 0
	for i := range v {
		l := len(v[i].derivs)
		if l == 0 {
			continue
		}
		if n != 0 && l != n {
			return 0, adErrorf("NDeriv", fmt.Errorf("element %d: %d vs %d: %w", i, l, n, ErrLengthMismatch))
		}
		n = l
	}

	return n, nil
}

// Sum adds every element with Scalar.Add. An empty vector sums to Const(0).
func Sum(v Vector) Scalar {
	acc := Const(0)
	for i := range v {
		acc = acc.Add(v[i])
	}

	return acc
}

// Dot returns Σ a[i]·b[i] accumulated with Scalar.Mul and Scalar.Add, so the
// product rule applies to every term.
//
// Errors:
//   - ErrShape when len(a) != len(b).
//
// Complexity:
//   - Time O(n·nderiv).
func Dot(a, b Vector) (Scalar, error) {
	if len(a) != len(b) {
		return Scalar{}, adErrorf("Dot", fmt.Errorf("%d vs %d: %w", len(a), len(b), ErrShape))
	}
	acc := Const(0)
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}

	return acc, nil
}
