// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the real-valued kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/forwardiff/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestElementwise_FastPathEqualsFallback runs each element-wise kernel with
// bare *Dense operands and with a hidden operand; results must be identical.
func TestElementwise_FastPathEqualsFallback(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 2, 3, []float64{6, 5, 4, 3, 2, 1})

	for name, tc := range map[string]struct {
		op   func(x, y matrix.Matrix) (matrix.Matrix, error)
		want [][]float64
	}{
		"Add":      {matrix.Add, [][]float64{{7, 7, 7}, {7, 7, 7}}},
		"Sub":      {matrix.Sub, [][]float64{{-5, -3, -1}, {1, 3, 5}}},
		"Hadamard": {matrix.Hadamard, [][]float64{{6, 10, 12}, {12, 10, 6}}},
	} {
		fast, err := tc.op(a, b)
		require.NoError(t, err, name)
		CompareExact(t, tc.want, fast)

		slow, err := tc.op(hide{a}, b)
		require.NoError(t, err, name)
		CompareExact(t, tc.want, slow)
	}
}

// TestElementwise_Errors covers nil operands and shape mismatch.
func TestElementwise_Errors(t *testing.T) {
	a := MustDense(t, 2, 2)
	_, err := matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Hadamard(a, (*matrix.Dense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, c)

	c, err = matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, c)

	// Rectangular: (2×3)·(3×1).
	r := NewFilledDense(t, 2, 3, []float64{1, 0, 2, 0, 1, 1})
	v := NewFilledDense(t, 3, 1, []float64{3, 4, 5})
	c, err = matrix.Mul(r, v)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{13}, {9}}, c)

	_, err = matrix.Mul(r, r)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScaleMatVecTrace(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	at, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	s, err := matrix.Scale(hide{a}, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s)

	y, err := matrix.MatVec(a, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, y)
	_, err = matrix.MatVec(a, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	sq := NewFilledDense(t, 2, 2, []float64{1, 9, 9, 4})
	tr, err := matrix.Trace(sq)
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)
	_, err = matrix.Trace(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestLU checks the Doolittle factors on an exactly representable case.
func TestLU(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{4, 3, 6, 3})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {1.5, 1}}, L)
	CompareExact(t, [][]float64{{4, 3}, {0, -1.5}}, U)

	back, err := matrix.Mul(L, U)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 3}, {6, 3}}, back)
}

// TestInverse covers the exact 2×2 case, singularity and a gonum cross-check.
func TestInverse(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{4, 7, 2, 6})
	inv, err := matrix.Inverse(hide{a})
	require.NoError(t, err)
	want := NewFilledDense(t, 2, 2, []float64{0.6, -0.7, -0.2, 0.4})
	CompareClose(t, inv, want, 0, 1e-12)

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	CompareClose(t, prod, id, 0, 1e-12)

	for _, vals := range [][]float64{{1, 2, 2, 4}, {0, 3, 0, 5}} {
		_, err = matrix.Inverse(NewFilledDense(t, 2, 2, vals))
		require.ErrorIs(t, err, matrix.ErrSingular)
	}
	_, err = matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestInverse_MatchesGonum compares against gonum's LAPACK-backed inverse on
// a diagonally dominant 4×4 matrix (no pivoting needed).
func TestInverse_MatchesGonum(t *testing.T) {
	vals := []float64{
		10, 1, 2, 0,
		1, 8, 0, 3,
		2, 0, 9, 1,
		0, 3, 1, 7,
	}
	ours, err := matrix.Inverse(NewFilledDense(t, 4, 4, vals))
	require.NoError(t, err)

	var ref mat.Dense
	require.NoError(t, ref.Inverse(mat.NewDense(4, 4, vals)))

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.InDelta(t, ref.At(i, j), MustAt(t, ours, i, j), 1e-12, "[%d,%d]", i, j)
		}
	}
}

// TestLUP checks P·A = L·U when the leading entry is zero.
func TestLUP(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{
		0, 2, 1,
		1, 1, 0,
		3, 0, 1,
	})
	L, U, perm, err := matrix.LUP(a)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, perm)

	// L is unit lower-triangular, U upper-triangular.
	for i := 0; i < 3; i++ {
		require.Equal(t, 1.0, MustAt(t, L, i, i))
		for j := 0; j < i; j++ {
			require.Zero(t, MustAt(t, U, i, j), "U[%d,%d]", i, j)
			require.Zero(t, MustAt(t, L, j, i), "L[%d,%d]", j, i)
		}
	}

	lu, err := matrix.Mul(L, U)
	require.NoError(t, err)
	for i, src := range perm {
		for j := 0; j < 3; j++ {
			require.InDelta(t, MustAt(t, a, src, j), MustAt(t, lu, i, j), 1e-12, "[%d,%d]", i, j)
		}
	}

	_, _, _, err = matrix.LUP(NewFilledDense(t, 2, 2, []float64{0, 1, 0, 2}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, _, _, err = matrix.LUP(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestInverse_ZeroLeadingPivot: matrices that need a row exchange are
// invertible and agree with gonum.
func TestInverse_ZeroLeadingPivot(t *testing.T) {
	for _, tc := range []struct {
		n    int
		vals []float64
	}{
		{2, []float64{0, 1, 1, 0}},
		{2, []float64{1e-20, 1, 1, 1}},
		{3, []float64{0, 2, 1, 1, 1, 0, 3, 0, 1}},
	} {
		ours, err := matrix.Inverse(NewFilledDense(t, tc.n, tc.n, tc.vals))
		require.NoError(t, err, "%v", tc.vals)

		var ref mat.Dense
		require.NoError(t, ref.Inverse(mat.NewDense(tc.n, tc.n, tc.vals)))
		for i := 0; i < tc.n; i++ {
			for j := 0; j < tc.n; j++ {
				require.InDelta(t, ref.At(i, j), MustAt(t, ours, i, j), 1e-12, "%v [%d,%d]", tc.vals, i, j)
			}
		}
	}

	swap, err := matrix.Inverse(NewFilledDense(t, 2, 2, []float64{0, 1, 1, 0}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 1}, {1, 0}}, swap)
}

// TestAllClose covers tolerance semantics and argument validation.
func TestAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	b := NewFilledDense(t, 1, 3, []float64{1, 2, 3 + 1e-10})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(a, b, 0, 1e-11)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = matrix.AllClose(a, hide{b}, 1e-9, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllCloseWith(a, b)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllCloseWith(a, b, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 3, 1), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
