// SPDX-License-Identifier: MIT

// Package gradient - finite-difference verification.
//
// Implementation (both checks):
//   - Stage 1: AD derivatives via Gradient/Jacobian.
//   - Stage 2: the same function evaluated on constants (ad.PromoteAll), so
//     fd sees only values; gonum diff/fd builds the estimate.
//   - Stage 3: floats.EqualApprox, absolute-or-relative, at the tolerance.
//
// AI-Hints:
//   - Central differences (default) are accurate to ~1e-10 on smooth inputs;
//     loosen the tolerance with WithForward.

package gradient

import (
	"fmt"

	"github.com/katalvlaran/forwardiff/ad"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Check compares the AD gradient of f at x with a finite-difference estimate.
//
// Errors:
//   - ErrGradientMismatch (wrapped with both gradients) on disagreement.
//   - Any error of Gradient.
func Check(f func(x ad.Vector) ad.Scalar, x []float64, opts ...Option) error {
	o := gatherOptions(opts...)
	_, got, err := Gradient(f, x)
	if err != nil {
		return gradientErrorf(opCheck, err)
	}
	want := fd.Gradient(nil, func(p []float64) float64 {
		return f(ad.PromoteAll(p)).Value()
	}, x, o.settings())

	if !floats.EqualApprox(got, want, o.tol) {
		return gradientErrorf(opCheck, fmt.Errorf("ad %v, fd %v: %w", got, want, ErrGradientMismatch))
	}

	return nil
}

// CheckJacobian compares the AD Jacobian of f at x with fd.Jacobian.
//
// Errors:
//   - ErrGradientMismatch naming the first disagreeing row.
//   - Any error of Jacobian.
func CheckJacobian(f func(x ad.Vector) ad.Vector, x []float64, opts ...Option) error {
	o := gatherOptions(opts...)
	y, got, err := Jacobian(f, x)
	if err != nil {
		return gradientErrorf(opCheckJacobian, err)
	}
	want := mat.NewDense(len(y), len(x), nil)
	fd.Jacobian(want, func(dst, p []float64) {
		copy(dst, f(ad.PromoteAll(p)).Values())
	}, x, o.jacobianSettings())

	for i := range y {
		row, _ := got.RawRowView(i)
		if !floats.EqualApprox(row, want.RawRowView(i), o.tol) {
			return gradientErrorf(opCheckJacobian,
				fmt.Errorf("row %d: ad %v, fd %v: %w", i, row, want.RawRowView(i), ErrGradientMismatch))
		}
	}

	return nil
}
