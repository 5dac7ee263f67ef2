// SPDX-License-Identifier: MIT
// Package matrix provides real-valued kernels on any Matrix implementation:
// element-wise addition and subtraction, Hadamard product, matrix product,
// transpose, scaling, matrix-vector product, trace, LU and inverse.
//
// Purpose:
//   - Serve as the real-valued side of the numeric tower: values extracted from
//     AD matrices are inverted and multiplied here, never in the AD layer.
//
// Determinism:
//   - Fixed loop orders; LU does not pivot, LUP/Inverse pivot on the largest
//     |a[i][k]| with ties broken by the lowest row (bit-for-bit reproducible).
//
// AI-Hints:
//   - Pass *Dense operands to hit the flat fast paths; other implementations
//     are materialized once through toDense.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opLU        = "LU"
	opLUP       = "LUP"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is a *Dense, otherwise a flat copy read
// through At in i→j order. The copy skips the numeric policy: kernels read
// whatever the source holds.
// Complexity: O(1) or O(r*c).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDenseWithOptions(m.Rows(), m.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if out.data[i*out.c+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// elementwise computes out[k] = f(a[k], b[k]) for same-shape operands.
// Implementation:
//   - Stage 1: ValidateBinarySameShape; allocate the result.
//   - Stage 2: *Dense fast path walks the flat buffers 0..n-1; otherwise i→j via At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func elementwise(a, b Matrix, tag string, f func(x, y float64) float64) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDenseWithOptions(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Add computes C = A + B element-wise into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) {
	return elementwise(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes C = A − B element-wise into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) {
	return elementwise(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes C[i,j] = A[i,j]·B[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (Matrix, error) {
	return elementwise(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Mul computes the matrix product C = A·B.
// Implementation:
//   - Stage 1: ValidateMulCompatible; materialize both operands as *Dense.
//   - Stage 2: i→k→j loop; the inner loop walks contiguous rows of B and C.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := da.r, da.c, db.c
	res, err := NewDenseWithOptions(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik = da.data[i*n+k]
			for j = 0; j < c; j++ {
				res.data[i*c+j] += aik * db.data[k*c+j]
			}
		}
	}

	return res, nil
}

// Transpose returns Aᵀ as a fresh Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDenseWithOptions(d.c, d.r, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·A as a fresh Dense.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDenseWithOptions(d.r, d.c, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range d.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// MatVec computes y = A·x.
//
// Errors:
//   - ErrNilMatrix (nil A or nil x), ErrDimensionMismatch (len(x) != A.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var i, j, base int
	var sum float64
	for i = 0; i < d.r; i++ {
		sum = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			sum += d.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Trace returns Σ A[i,i] of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square).
//
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// LU computes the Doolittle factorization A = L·U with unit diagonal on L
// (no pivoting).
// Implementation:
//   - Stage 1: validate (not nil, square); allocate L,U; set diag(L)=1.
//   - Stage 2: for i=0..n-1 build row i of U, guard the pivot, then column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i]==0).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Deterministic by construction; inputs needing row exchanges (zero
//     leading pivot) are reported singular rather than permuted.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	L, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}
		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// LUP computes the factorization P·A = L·U with partial (row) pivoting.
// perm describes P: row i of P·A is row perm[i] of A.
// Implementation:
//   - Stage 1: validate (not nil, square); copy A into a working buffer.
//   - Stage 2: for every column k pick the row with the largest |w[i][k]|
//     (i >= k), swap it up, then eliminate below it, storing multipliers in place.
//   - Stage 3: split the buffer into unit-lower L and upper U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (whole pivot column zero).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LUP(m Matrix) (Matrix, Matrix, []int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	n := a.r
	w := make([]float64, n*n)
	copy(w, a.data)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, v, f float64
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(w[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(w[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, nil, nil, matrixErrorf(opLUP, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				w[k*n+j], w[p*n+j] = w[p*n+j], w[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			f = w[i*n+k] / w[k*n+k]
			w[i*n+k] = f
			for j = k + 1; j < n; j++ {
				w[i*n+j] -= f * w[k*n+j]
			}
		}
	}

	L, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	U, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = w[i*n+j]
			} else {
				U.data[i*n+j] = w[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse computes A⁻¹ by solving L·U·x = P·e_col for every column.
// Implementation:
//   - Stage 1: LUP(m); any invertible matrix factors, zero leading entries included.
//   - Stage 2: forward substitution L·y = P·e_col, backward U·x = y, write column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (Matrix, error) {
	Lm, Um, perm, err := LUP(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	L, U := Lm.(*Dense), Um.(*Dense)
	n := L.r
	inv, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = ZeroSum - sum // +0, never -0, for untouched entries
			}
		}
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i] // pivots checked non-zero by LUP
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
