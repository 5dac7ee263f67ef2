// SPDX-License-Identifier: MIT
// Package gradient: sentinel error set.

package gradient

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates an empty point or vector.
	ErrEmpty = errors.New("gradient: empty input")

	// ErrInvalidSeed reports a seed layout that does not fit: offset<0 or
	// offset+len(values) > n.
	ErrInvalidSeed = errors.New("gradient: invalid seed layout")

	// ErrNoDerivatives is returned when every element is a constant, so no
	// gradient width can be inferred.
	ErrNoDerivatives = errors.New("gradient: no derivative information")

	// ErrGradientMismatch reports AD derivatives that disagree with the
	// finite-difference estimate beyond the tolerance.
	ErrGradientMismatch = errors.New("gradient: AD and finite-difference derivatives disagree")
)

const (
	opInitializeWith  = "InitializeWith"
	opExtractGradient = "ExtractGradient"
	opGradient        = "Gradient"
	opJacobian        = "Jacobian"
	opCheck           = "Check"
	opCheckJacobian   = "CheckJacobian"
)

func gradientErrorf(tag string, err error) error {
	return fmt.Errorf("gradient.%s: %w", tag, err)
}
