// SPDX-License-Identifier: MIT

// Package admatrix - storage & safe accessors.
//
// Purpose:
//   - Row-major r×c buffer of ad.Scalar with the index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//
// AI-Hints:
//   - Cells share no derivative storage with the caller: ad.Scalar never
//     writes into an existing slice, so storing a Scalar is enough.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set: O(1); Clone: O(r*c·nderiv); Transpose: O(r*c).

package admatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/forwardiff/ad"
)

// Matrix is a dense r×c array of AD scalars.
type Matrix struct {
	r, c int
	data []ad.Scalar // row-major, len == r*c
}

var _ fmt.Stringer = (*Matrix)(nil)

// New returns an r×c matrix of constant zeros.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, data: make([]ad.Scalar, rows*cols)}, nil
}

// FromRows builds a matrix from rectangular rows of scalars.
//
// Errors:
//   - ErrBadShape for empty or ragged input.
func FromRows(rows [][]ad.Scalar) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, admatrixErrorf(opFromRows, ErrBadShape)
	}
	c := len(rows[0])
	m := &Matrix{r: len(rows), c: c, data: make([]ad.Scalar, 0, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, admatrixErrorf(opFromRows, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), c, ErrBadShape))
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

func (m *Matrix) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the scalar at (i, j).
//
// Errors:
//   - ErrOutOfRange.
func (m *Matrix) At(i, j int) (ad.Scalar, error) {
	if !m.inBounds(i, j) {
		return ad.Scalar{}, admatrixErrorf(opAccessAt, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}

	return m.data[i*m.c+j], nil
}

// Set stores s at (i, j).
//
// Errors:
//   - ErrOutOfRange.
func (m *Matrix) Set(i, j int, s ad.Scalar) error {
	if !m.inBounds(i, j) {
		return admatrixErrorf(opAccessSet, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	m.data[i*m.c+j] = s

	return nil
}

// Clone deep-copies the matrix, derivatives included.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{r: m.r, c: m.c, data: ad.Vector(m.data).Clone()}
}

// Row returns row i as a fresh Vector.
//
// Errors:
//   - ErrOutOfRange.
func (m *Matrix) Row(i int) (ad.Vector, error) {
	if i < 0 || i >= m.r {
		return nil, admatrixErrorf("Row", fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}
	out := make(ad.Vector, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns column j as a fresh Vector.
//
// Errors:
//   - ErrOutOfRange.
func (m *Matrix) Col(j int) (ad.Vector, error) {
	if j < 0 || j >= m.c {
		return nil, admatrixErrorf("Col", fmt.Errorf("%d: %w", j, ErrOutOfRange))
	}

	return m.col(j), nil
}

func (m *Matrix) col(j int) ad.Vector {
	out := make(ad.Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Transpose returns mᵀ.
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{r: m.c, c: m.r, data: make([]ad.Scalar, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Apply replaces each cell with f(i, j, s), row-major.
func (m *Matrix) Apply(f func(i, j int, s ad.Scalar) ad.Scalar) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.data[i*m.c+j] = f(i, j, m.data[i*m.c+j])
		}
	}
}

// String renders one row per line using the scalars' short form.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
