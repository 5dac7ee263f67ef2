// SPDX-License-Identifier: MIT

// Package admatrix - explicit crossings between AD and real matrices.
//
// Purpose:
//   - FromReal promotes every entry of a real matrix to a constant scalar
//     (the implicit real → AD direction of the numeric tower).
//   - Values and Partial are the only AD → real exits; both are explicit and
//     build a fresh *matrix.Dense.
//
// AI-Hints:
//   - Extracted matrices skip the NaN/Inf policy: a non-finite derivative is
//     a legitimate AD result and must survive extraction unchanged.

package admatrix

import (
	"fmt"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/katalvlaran/forwardiff/matrix"
)

// FromReal returns a matrix of constants with m's values.
//
// Errors:
//   - ErrNilMatrix; read errors from m are wrapped.
func FromReal(m matrix.Matrix) (*Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, admatrixErrorf(opFromReal, ErrNilMatrix)
	}
	out, err := New(m.Rows(), m.Cols())
	if err != nil {
		return nil, admatrixErrorf(opFromReal, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, admatrixErrorf(opFromReal, err)
			}
			out.data[i*out.c+j] = ad.Promote(v)
		}
	}

	return out, nil
}

// NDeriv returns the derivative length shared by the non-constant cells
// (0 when every cell is a constant).
//
// Errors:
//   - ad.ErrLengthMismatch when two cells disagree.
func (m *Matrix) NDeriv() (int, error) {
	n, err := ad.Vector(m.data).NDeriv()
	if err != nil {
		return 0, admatrixErrorf(opNDeriv, err)
	}

	return n, nil
}

// extract builds a Dense whose (i,j) entry is pick(cell(i,j)).
func (m *Matrix) extract(tag string, pick func(s ad.Scalar) float64) (*matrix.Dense, error) {
	out, err := matrix.NewDenseWithOptions(m.r, m.c, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, admatrixErrorf(tag, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if err = out.Set(i, j, pick(m.data[i*m.c+j])); err != nil {
				return nil, admatrixErrorf(tag, err)
			}
		}
	}

	return out, nil
}

// Values returns the real matrix of cell values; derivatives are dropped.
// This is the explicit bulk narrowing; pair it with matrix.Inverse when an
// inverse is needed.
func (m *Matrix) Values() (*matrix.Dense, error) {
	return m.extract(opValues, ad.Scalar.Value)
}

// Partial returns the real matrix of the k-th partial derivative of every
// cell. Constant cells contribute 0.
//
// Errors:
//   - ErrOutOfRange when k<0 or k>=NDeriv() (a matrix of constants has no partials).
//   - ad.ErrLengthMismatch when cells disagree on length.
func (m *Matrix) Partial(k int) (*matrix.Dense, error) {
	n, err := m.NDeriv()
	if err != nil {
		return nil, admatrixErrorf(opPartial, err)
	}
	if k < 0 || k >= n {
		return nil, admatrixErrorf(opPartial, fmt.Errorf("k=%d, nderiv=%d: %w", k, n, ErrOutOfRange))
	}

	return m.extract(opPartial, func(s ad.Scalar) float64 { return s.Derivative(k) })
}
