// SPDX-License-Identifier: MIT
// Package admatrix_test contains test helpers.

package admatrix_test

import (
	"testing"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/katalvlaran/forwardiff/admatrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// a and b are two independent variables; every test mixes them.
var (
	a = ad.New(1, []float64{1, 0})
	b = ad.New(2, []float64{0, 1})
)

// MustRows builds a matrix from rows or fails the test.
func MustRows(t *testing.T, rows [][]ad.Scalar) *admatrix.Matrix {
	t.Helper()
	m, err := admatrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// RequireCell FAILS the test unless m(i,j) has want's value and partials.
func RequireCell(t *testing.T, want ad.Scalar, m *admatrix.Matrix, i, j int) {
	t.Helper()
	got, err := m.At(i, j)
	require.NoError(t, err)
	require.InDelta(t, want.Value(), got.Value(), tol, "value [%d,%d]", i, j)
	wd, gd := want.Derivatives(), got.Derivatives()
	require.Len(t, gd, len(wd), "nderiv [%d,%d]", i, j)
	for k := range wd {
		require.InDelta(t, wd[k], gd[k], tol, "partial %d of [%d,%d]", k, i, j)
	}
}
