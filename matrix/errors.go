// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Kernels return these
// sentinels (possibly wrapped with an operation tag) and tests check them via
// errors.Is. Nothing in the public surface panics on user-triggered errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// added with fmt.Errorf("ctx: %w", ErrX) at the detection site; callers still
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a row-slice input is ragged or empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (Set, Apply, Assign).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero pivot is encountered during LU/Inverse
	// (no pivoting, by construction deterministic).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrCoercion is returned by Assign when the source is not a real-valued
	// container. Values carrying derivative information (AD scalars) are never
	// narrowed implicitly; extract them explicitly first.
	ErrCoercion = errors.New("matrix: source is not real-valued")
)
