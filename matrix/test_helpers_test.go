// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Reduce boilerplate (allocation, fill, element reads) in kernel tests.
//   • Provide hide, a wrapper that forces the interface fallback paths.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/forwardiff/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix so type assertions to *Dense fail.
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	require.NoError(t, m.Assign(vals))

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact FAILS the test unless m equals want bit-for-bit.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "[%d,%d]", i, j)
		}
	}
}

// CompareClose FAILS the test unless AllClose(a, b, rtol, atol) holds.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "got\n%v\nwant\n%v", a, b)
}
