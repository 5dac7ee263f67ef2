// SPDX-License-Identifier: MIT
// Package ad: sentinel error set.
// Every error returned by the package matches one of these via errors.Is.
// Numeric domain problems are NOT errors here; they surface as NaN/±Inf.

package ad

import (
	"errors"
	"fmt"
)

var (
	// ErrCoercion is returned when a conversion would silently discard
	// derivative information (AD → real narrowing) or when a value cannot be
	// interpreted as a real number at all.
	ErrCoercion = errors.New("ad: invalid coercion")

	// ErrUnsupported marks an operation deliberately refused for AD-valued
	// aggregates (fused matrix product, matrix inverse). It wraps ErrCoercion,
	// so errors.Is(err, ErrCoercion) also holds.
	ErrUnsupported = fmt.Errorf("ad: operation unsupported for AD scalars: %w", ErrCoercion)

	// ErrLengthMismatch reports two non-empty derivative vectors of different
	// lengths. Arithmetic panics with it; Compatible returns it.
	ErrLengthMismatch = errors.New("ad: derivative length mismatch")

	// ErrShape reports vectors of incompatible lengths (Dot, element-wise ops).
	ErrShape = errors.New("ad: shape mismatch")

	// ErrIndexOutOfRange reports an invalid variable index.
	ErrIndexOutOfRange = errors.New("ad: index out of range")
)

// adErrorf wraps err with an operation tag; err must be non-nil.
func adErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
