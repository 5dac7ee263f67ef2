// SPDX-License-Identifier: MIT

package ad

import "cmp"

// Comparisons look at values only; derivatives never take part. Two Scalars
// with equal values and different derivatives are equal, which lets Scalars
// drive branching and sorting code written for float64.

// Eq reports a == b on values.
func (a Scalar) Eq(b Scalar) bool { return a.value == b.value }

// Ne reports a != b on values.
func (a Scalar) Ne(b Scalar) bool { return a.value != b.value }

// Lt reports a < b on values.
func (a Scalar) Lt(b Scalar) bool { return a.value < b.value }

// Le reports a <= b on values.
func (a Scalar) Le(b Scalar) bool { return a.value <= b.value }

// Gt reports a > b on values.
func (a Scalar) Gt(b Scalar) bool { return a.value > b.value }

// Ge reports a >= b on values.
func (a Scalar) Ge(b Scalar) bool { return a.value >= b.value }

// Compare orders a and b by value with cmp.Compare semantics (NaN first),
// suitable for slices.SortFunc.
func Compare(a, b Scalar) int { return cmp.Compare(a.value, b.value) }
