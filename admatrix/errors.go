// SPDX-License-Identifier: MIT
// Package admatrix: sentinel error set.
// Shape and index problems are reported with these sentinels; refused bulk
// operations reuse ad.ErrUnsupported so callers can match ad.ErrCoercion.

package admatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates non-positive dimensions.
	ErrInvalidDimensions = errors.New("admatrix: dimensions must be > 0")

	// ErrBadShape reports empty or ragged row input.
	ErrBadShape = errors.New("admatrix: invalid shape")

	// ErrOutOfRange indicates a row, column or derivative index outside bounds.
	ErrOutOfRange = errors.New("admatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("admatrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("admatrix: nil matrix")
)

// Operation tags.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opDot       = "Dot"
	opDotReal   = "DotReal"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opMatMul    = "MatMul"
	opInverse   = "Inverse"
	opFromReal  = "FromReal"
	opValues    = "Values"
	opPartial   = "Partial"
	opNDeriv    = "NDeriv"
	opFromRows  = "FromRows"
	opAccessAt  = "At"
	opAccessSet = "Set"
)

// admatrixErrorf wraps err with an operation tag; err must be non-nil.
func admatrixErrorf(tag string, err error) error {
	return fmt.Errorf("admatrix.%s: %w", tag, err)
}
