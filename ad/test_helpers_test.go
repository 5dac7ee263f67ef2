// SPDX-License-Identifier: MIT
// Package ad_test contains test helpers
//
// Purpose:
//   • Compare Scalars on value AND derivatives (ad's own Eq looks at values only).
//   • Provide the canonical operands used across the algebra tests.

package ad_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/stretchr/testify/require"
)

// tol bounds the rounding drift allowed between closed-form expectations and
// the chain-rule results.
const tol = 1e-12

// Canonical operands: two independent variables a, b and two more points
// c, d placed where the trigonometric expectations are exact.
var (
	opA = ad.New(1, []float64{1, 0})
	opB = ad.New(2, []float64{0, 1})
	opC = ad.New(0, []float64{1, 0})
	opD = ad.New(1, []float64{0, 1})
)

// RequireScalar FAILS the test unless got has want's value and derivatives.
// Implementation:
//   - Stage 1: compare values within tol.
//   - Stage 2: compare derivative lengths exactly, then each partial within tol.
//
// Notes:
//   - ±0 compare equal, NaN never does; use dedicated assertions for NaN cases.
func RequireScalar(t *testing.T, want, got ad.Scalar) {
	t.Helper()
	require.InDelta(t, want.Value(), got.Value(), tol, "value of %v", got)
	wd, gd := want.Derivatives(), got.Derivatives()
	require.Len(t, gd, len(wd), "nderiv of %v", got)
	for i := range wd {
		require.InDelta(t, wd[i], gd[i], tol, "derivative %d of %v", i, got)
	}
}

// RequireIdentical FAILS the test unless got is bit-for-bit want.
func RequireIdentical(t *testing.T, want, got ad.Scalar) {
	t.Helper()
	require.Equal(t, want.Value(), got.Value())
	require.Equal(t, want.Derivatives(), got.Derivatives())
}

// RequireSameBits FAILS the test unless got and want agree on every IEEE bit:
// signed zeros differ, and NaN matches only a NaN with the same payload.
func RequireSameBits(t *testing.T, want, got ad.Scalar) {
	t.Helper()
	require.Equal(t, math.Float64bits(want.Value()), math.Float64bits(got.Value()), "value %v vs %v", want.Value(), got.Value())
	wd, gd := want.Derivatives(), got.Derivatives()
	require.Len(t, gd, len(wd))
	for i := range wd {
		require.Equal(t, math.Float64bits(wd[i]), math.Float64bits(gd[i]), "derivative %d: %v vs %v", i, wd[i], gd[i])
	}
}
