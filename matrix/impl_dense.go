// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//   - Guard the real-valued boundary: Assign accepts only real containers (ErrCoercion otherwise).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - DefaultValidateNaNInf is on; build with WithNoValidateNaNInf when NaN/Inf are legitimate results.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Assign: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/forwardiff/internal/numkind"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"       // method tag used in error wrappers
	ctxSet    = "Set"      // method tag used in error wrappers
	ctxApply  = "Apply"    // method tag used in error wrappers
	ctxAssign = "Assign"   // method tag used in error wrappers
	ctxRows   = "FromRows" // ctor tag for FromRows
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply/Assign.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix with the default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseWithOptions(rows, cols)
}

// NewDenseWithOptions creates an r×c zero matrix with an explicit numeric policy.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (gatherOptions) and allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseWithOptions(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromRows builds a Dense from a rectangular [][]float64 (copied).
// Implementation:
//   - Stage 1: reject empty input and ragged rows with ErrBadShape.
//   - Stage 2: allocate, then copy row by row under the numeric policy.
//
// Errors:
//   - ErrBadShape (empty or ragged), ErrNaNInf (policy on).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrBadShape)
	}
	c := len(rows[0])
	for i := range rows {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxRows, i, len(rows[i]), c, ErrBadShape)
		}
	}
	m, err := NewDenseWithOptions(len(rows), c, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Assign(rows); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Callers (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// RawRowView returns row i as a fresh slice (never aliases storage).
//
// Errors:
//   - ErrOutOfRange.
func (m *Dense) RawRowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows exports the matrix as [][]float64 (copied).
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as lines with comma-separated %g values.
// Intended for diagnostics; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v);
// it stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
// Elements written before an error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value and the policy is on.
//
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Assign overwrites m with the contents of src, which must be real-valued
// and of m's shape.
//
// Accepted sources:
//   - Matrix (any implementation; *Dense takes a flat copy).
//   - [][]float64 with m's shape.
//   - []float64 or []any of Go number kinds, row-major, of length r*c.
//
// Anything else fails with ErrCoercion, in particular containers of AD
// scalars: their derivatives would be silently discarded. Extract values
// explicitly (admatrix.Matrix.Values) before assigning.
//
// Errors:
//   - ErrCoercion, ErrDimensionMismatch, ErrNaNInf (policy on).
//
// Complexity:
//   - Time O(r*c); m is left unchanged on error.
func (m *Dense) Assign(src any) error {
	buf := make([]float64, len(m.data))
	switch s := src.(type) {
	case *Dense:
		if s == nil {
			return fmt.Errorf("Dense.%s: %w", ctxAssign, ErrNilMatrix)
		}
		if s.r != m.r || s.c != m.c {
			return fmt.Errorf("Dense.%s: %dx%d into %dx%d: %w", ctxAssign, s.r, s.c, m.r, m.c, ErrDimensionMismatch)
		}
		copy(buf, s.data)
	case Matrix:
		if s.Rows() != m.r || s.Cols() != m.c {
			return fmt.Errorf("Dense.%s: %dx%d into %dx%d: %w", ctxAssign, s.Rows(), s.Cols(), m.r, m.c, ErrDimensionMismatch)
		}
		var err error
		for i := 0; i < m.r; i++ {
			for j := 0; j < m.c; j++ {
				if buf[i*m.c+j], err = s.At(i, j); err != nil {
					return fmt.Errorf("Dense.%s: %w", ctxAssign, err)
				}
			}
		}
	case [][]float64:
		if len(s) != m.r {
			return fmt.Errorf("Dense.%s: %d rows into %d: %w", ctxAssign, len(s), m.r, ErrDimensionMismatch)
		}
		for i := range s {
			if len(s[i]) != m.c {
				return fmt.Errorf("Dense.%s: row %d: %w", ctxAssign, i, ErrDimensionMismatch)
			}
			copy(buf[i*m.c:], s[i])
		}
	case []float64:
		if len(s) != len(buf) {
			return fmt.Errorf("Dense.%s: %d values into %d: %w", ctxAssign, len(s), len(buf), ErrDimensionMismatch)
		}
		copy(buf, s)
	case []any:
		if len(s) != len(buf) {
			return fmt.Errorf("Dense.%s: %d values into %d: %w", ctxAssign, len(s), len(buf), ErrDimensionMismatch)
		}
		var ok bool
		for k := range s {
			if buf[k], ok = numkind.Float64(s[k]); !ok {
				return fmt.Errorf("Dense.%s: element %d is %T: %w", ctxAssign, k, s[k], ErrCoercion)
			}
		}
	default:
		return fmt.Errorf("Dense.%s: %T: %w", ctxAssign, src, ErrCoercion)
	}

	if m.validateNaNInf {
		for k, v := range buf {
			if isNonFinite(v) {
				return denseErrorf(ctxAssign, k/m.c, k%m.c, ErrNaNInf)
			}
		}
	}
	copy(m.data, buf)

	return nil
}
