// SPDX-License-Identifier: MIT

// Package gradient - one-shot derivative evaluation.
//
// Purpose:
//   - Gradient: ∇f(x) for f: ℝⁿ → ℝ.
//   - Jacobian: J_f(x) for f: ℝⁿ → ℝᵐ, as an m×n *matrix.Dense.
//
// Contracts:
//   - f receives freshly seeded variables; it may keep or mutate them.
//   - A constant result (f ignores its inputs) yields zero derivatives.

package gradient

import (
	"fmt"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/katalvlaran/forwardiff/matrix"
)

// Gradient evaluates f at x and returns (f(x), ∇f(x)).
//
// Errors:
//   - ErrEmpty when x is empty.
//   - ad.ErrLengthMismatch when f's result has a derivative length other than len(x).
//
// Complexity:
//   - One evaluation of f with len(x) derivatives.
func Gradient(f func(x ad.Vector) ad.Scalar, x []float64) (float64, []float64, error) {
	if len(x) == 0 {
		return 0, nil, gradientErrorf(opGradient, ErrEmpty)
	}
	y := f(Initialize(x))
	if n := y.NDeriv(); n != 0 && n != len(x) {
		return 0, nil, gradientErrorf(opGradient, fmt.Errorf("nderiv %d, want %d: %w", n, len(x), ad.ErrLengthMismatch))
	}
	g := make([]float64, len(x))
	for i := range g {
		g[i] = y.Derivative(i)
	}

	return y.Value(), g, nil
}

// Jacobian evaluates f at x and returns (f(x), J) with J[i][j] = ∂f_i/∂x_j.
//
// Errors:
//   - ErrEmpty when x or f(x) is empty.
//   - ad.ErrLengthMismatch when an output has a derivative length other than len(x).
func Jacobian(f func(x ad.Vector) ad.Vector, x []float64) ([]float64, *matrix.Dense, error) {
	if len(x) == 0 {
		return nil, nil, gradientErrorf(opJacobian, ErrEmpty)
	}
	y := f(Initialize(x))
	if len(y) == 0 {
		return nil, nil, gradientErrorf(opJacobian, ErrEmpty)
	}
	for i := range y {
		if n := y[i].NDeriv(); n != 0 && n != len(x) {
			return nil, nil, gradientErrorf(opJacobian,
				fmt.Errorf("output %d: nderiv %d, want %d: %w", i, n, len(x), ad.ErrLengthMismatch))
		}
	}
	jac, err := gradientMatrix(opJacobian, y, len(x))
	if err != nil {
		return nil, nil, err
	}

	return y.Values(), jac, nil
}
