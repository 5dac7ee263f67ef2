// SPDX-License-Identifier: MIT
// Package ad_test contains unit tests for Vector reductions.
package ad_test

import (
	"testing"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/stretchr/testify/require"
)

// TestDot applies the product rule to every term.
func TestDot(t *testing.T) {
	v := ad.Vector{opA, opA}
	got, err := ad.Dot(v, v)
	require.NoError(t, err)
	RequireScalar(t, ad.New(2, []float64{4, 0}), got)

	got, err = ad.Dot(ad.Vector{opA, opB}, ad.Vector{opA, opB})
	require.NoError(t, err)
	RequireScalar(t, ad.New(5, []float64{2, 4}), got)

	// Mixed with promoted reals.
	got, err = ad.Dot(v, ad.PromoteAll([]float64{2, 2}))
	require.NoError(t, err)
	RequireScalar(t, ad.New(4, []float64{4, 0}), got)

	got, err = ad.Dot(nil, nil)
	require.NoError(t, err)
	RequireIdentical(t, ad.Const(0), got)

	_, err = ad.Dot(v, ad.Vector{opA})
	require.ErrorIs(t, err, ad.ErrShape)
}

func TestSum(t *testing.T) {
	RequireScalar(t, ad.New(3, []float64{1, 1}), ad.Sum(ad.Vector{opA, opB}))
	RequireIdentical(t, ad.Const(0), ad.Sum(nil))
}

// TestVector_NDeriv skips constants and reports disagreeing lengths.
func TestVector_NDeriv(t *testing.T) {
	n, err := ad.Vector{ad.Const(1), opA, opB}.NDeriv()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = ad.Vector{opA, ad.New(1, []float64{1})}.NDeriv()
	require.ErrorIs(t, err, ad.ErrLengthMismatch)
}

// TestVector_CloneIndependent: Clone is deep, Values drops derivatives.
func TestVector_CloneIndependent(t *testing.T) {
	v := ad.Vector{opA, opB}
	c := v.Clone()
	c[0] = c[0].AddReal(10)

	RequireIdentical(t, opA, v[0])
	require.Equal(t, []float64{11, 2}, c.Values())
	require.Equal(t, []float64{1, 2}, v.Values())
	require.Nil(t, ad.Vector(nil).Clone())
}
