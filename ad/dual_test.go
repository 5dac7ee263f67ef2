// SPDX-License-Identifier: MIT
// Package ad_test cross-checks single-direction derivatives against gonum's
// dual numbers, an independent forward-mode implementation.
package ad_test

import (
	"testing"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/dual"
)

// dualCase pairs one of our unary functions with gonum's counterpart.
type dualCase struct {
	name string
	ours func(ad.Scalar) ad.Scalar
	ref  func(dual.Number) dual.Number
}

var dualCases = []dualCase{
	{"Sin", ad.Sin, dual.Sin},
	{"Cos", ad.Cos, dual.Cos},
	{"Tan", ad.Tan, dual.Tan},
	{"Asin", ad.Asin, dual.Asin},
	{"Acos", ad.Acos, dual.Acos},
	{"Atan", ad.Atan, dual.Atan},
	{"Exp", ad.Exp, dual.Exp},
	{"Log", ad.Log, dual.Log},
	{"Sqrt", ad.Sqrt, dual.Sqrt},
	{"Sinh", ad.Sinh, dual.Sinh},
	{"Cosh", ad.Cosh, dual.Cosh},
	{"Tanh", ad.Tanh, dual.Tanh},
	{"Abs", ad.Abs, dual.Abs},
	{"Cube", func(x ad.Scalar) ad.Scalar { return x.Pow(3) }, func(x dual.Number) dual.Number { return dual.PowReal(x, 3) }},
	{
		"Composite",
		func(x ad.Scalar) ad.Scalar {
			return ad.Exp(x).Div(ad.Sqrt(ad.Sin(x).Pow(3).Add(ad.Cos(x).Pow(3))))
		},
		func(x dual.Number) dual.Number {
			den := dual.Sqrt(dual.Add(dual.PowReal(dual.Sin(x), 3), dual.PowReal(dual.Cos(x), 3)))
			return dual.Mul(dual.Exp(x), dual.Inv(den))
		},
	},
}

// TestDualCrossCheck seeds one direction and compares value and slope.
func TestDualCrossCheck(t *testing.T) {
	for _, tc := range dualCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, x := range []float64{0.2, 0.5, 0.9} {
				got := tc.ours(ad.New(x, []float64{1}))
				want := tc.ref(dual.Number{Real: x, Emag: 1})
				require.InDelta(t, want.Real, got.Value(), tol, "value at %v", x)
				require.InDelta(t, want.Emag, got.Derivative(0), 1e-10, "slope at %v", x)
			}
		})
	}
}

// TestDualCrossCheck_Binary compares product and quotient rules directionally:
// seeding both inputs with the same direction sums their partials.
func TestDualCrossCheck_Binary(t *testing.T) {
	x, y := 0.4, 1.7
	ax, ay := ad.New(x, []float64{1, 0}), ad.New(y, []float64{0, 1})
	dx, dy := dual.Number{Real: x, Emag: 1}, dual.Number{Real: y, Emag: 1}

	prod := ax.Mul(ay)
	ref := dual.Mul(dx, dy)
	require.InDelta(t, ref.Real, prod.Value(), tol)
	require.InDelta(t, ref.Emag, prod.Derivative(0)+prod.Derivative(1), tol)

	quot := ax.Div(ay)
	ref = dual.Mul(dx, dual.Inv(dy))
	require.InDelta(t, ref.Real, quot.Value(), tol)
	require.InDelta(t, ref.Emag, quot.Derivative(0)+quot.Derivative(1), tol)
}
