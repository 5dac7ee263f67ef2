// SPDX-License-Identifier: MIT

// Package matrix: public facades.
// Thin constructors and comparisons over the impl_* kernels; no logic lives here
// beyond option resolution.

package matrix

// NewIdentity returns the n×n identity.
//
// Errors:
//   - ErrInvalidDimensions when n<=0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// AllClose checks |a-b| ≤ atol + rtol*|b| element-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerance).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AllCloseWith is AllClose with an absolute tolerance taken from options
// (WithEpsilon; DefaultEpsilon otherwise) and no relative term.
func AllCloseWith(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, 0, o.eps)
}
