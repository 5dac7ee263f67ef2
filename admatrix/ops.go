// SPDX-License-Identifier: MIT

// Package admatrix - element-wise and reduction kernels.
//
// Purpose:
//   - Element-wise Add/Sub/Hadamard/Scale over ad.Scalar cells.
//   - Dot (matrix product) and MatVec built from ad.Dot, so every term goes
//     through Scalar.Mul and Scalar.Add.
//   - Refuse MatMul and Inverse with ad.ErrUnsupported.
//
// Contracts:
//   - Operands are never mutated; results are fresh matrices.
//   - Derivative-length mismatches inside a cell panic the way ad arithmetic does.
//
// Complexity quicksheet (k = derivative length):
//   - Add/Sub/Hadamard/Scale: O(r*c*k); Dot: O(r*n*c*k); Trace: O(min(r,c)*k).

package admatrix

import (
	"fmt"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/katalvlaran/forwardiff/matrix"
)

func validateSameShape(tag string, a, b *Matrix) error {
	if a == nil || b == nil {
		return admatrixErrorf(tag, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return admatrixErrorf(tag, fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// elementwise returns out[i] = f(a[i], b[i]) after the shape check.
func elementwise(tag string, a, b *Matrix, f func(x, y ad.Scalar) ad.Scalar) (*Matrix, error) {
	if err := validateSameShape(tag, a, b); err != nil {
		return nil, err
	}
	out := &Matrix{r: a.r, c: a.c, data: make([]ad.Scalar, len(a.data))}
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out, nil
}

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	return elementwise(opAdd, a, b, ad.Scalar.Add)
}

// Sub returns a − b.
func Sub(a, b *Matrix) (*Matrix, error) {
	return elementwise(opSub, a, b, ad.Scalar.Sub)
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	return elementwise(opHadamard, a, b, ad.Scalar.Mul)
}

// Scale returns s·m; s may be an AD scalar (ad.Promote a real for a constant).
func Scale(m *Matrix, s ad.Scalar) *Matrix {
	out := &Matrix{r: m.r, c: m.c, data: make([]ad.Scalar, len(m.data))}
	for i := range m.data {
		out.data[i] = s.Mul(m.data[i])
	}

	return out
}

// Dot returns the matrix product a×b, each cell being ad.Dot(row, column).
// Implementation:
//   - Stage 1: validate a.Cols() == b.Rows().
//   - Stage 2: materialize the columns of b once, then dot every row against them.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Dot(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, admatrixErrorf(opDot, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, admatrixErrorf(opDot, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	cols := make([]ad.Vector, b.c)
	var i, j int
	for j = 0; j < b.c; j++ {
		cols[j] = b.col(j)
	}
	out := &Matrix{r: a.r, c: b.c, data: make([]ad.Scalar, a.r*b.c)}
	var cell ad.Scalar
	for i = 0; i < a.r; i++ {
		row := ad.Vector(a.data[i*a.c : (i+1)*a.c])
		for j = 0; j < b.c; j++ {
			// lengths agree by construction; ad.Dot cannot fail here
			cell, _ = ad.Dot(row, cols[j])
			out.data[i*b.c+j] = cell
		}
	}

	return out, nil
}

// DotReal returns a×b for a real right-hand side, promoting each entry of b
// to a constant. The result carries only a's derivatives.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func DotReal(a *Matrix, b matrix.Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, admatrixErrorf(opDotReal, ErrNilMatrix)
	}
	pb, err := FromReal(b)
	if err != nil {
		return nil, admatrixErrorf(opDotReal, err)
	}

	return Dot(a, pb)
}

// MatVec returns m·v as a Vector of length m.Rows().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when len(v) != m.Cols().
func MatVec(m *Matrix, v ad.Vector) (ad.Vector, error) {
	if m == nil {
		return nil, admatrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(v) != m.c {
		return nil, admatrixErrorf(opMatVec, fmt.Errorf("len %d, want %d: %w", len(v), m.c, ErrDimensionMismatch))
	}
	out := make(ad.Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i], _ = ad.Dot(m.data[i*m.c:(i+1)*m.c], v)
	}

	return out, nil
}

// Trace returns Σ m[i][i] for a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when m is not square.
func Trace(m *Matrix) (ad.Scalar, error) {
	if m == nil {
		return ad.Scalar{}, admatrixErrorf(opTrace, ErrNilMatrix)
	}
	if m.r != m.c {
		return ad.Scalar{}, admatrixErrorf(opTrace, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}
	diag := make(ad.Vector, m.r)
	for i := 0; i < m.r; i++ {
		diag[i] = m.data[i*m.c+i]
	}

	return ad.Sum(diag), nil
}

// MatMul is the fused matrix product. It is not available for AD cells and
// always fails; use Dot, which composes the product from scalar operations.
//
// Errors:
//   - ad.ErrUnsupported (errors.Is ad.ErrCoercion holds).
func MatMul(a, b *Matrix) (*Matrix, error) {
	return nil, admatrixErrorf(opMatMul, ad.ErrUnsupported)
}

// Inverse is not available for AD cells and always fails. Extract the values
// with Values and invert the real matrix with matrix.Inverse instead.
//
// Errors:
//   - ad.ErrUnsupported (errors.Is ad.ErrCoercion holds).
func Inverse(m *Matrix) (*Matrix, error) {
	return nil, admatrixErrorf(opInverse, ad.ErrUnsupported)
}
