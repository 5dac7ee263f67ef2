// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons.
//
// Purpose:
//   - Tolerance-based equality of two matrices (numpy allclose semantics).
//
// Determinism:
//   - Row-major traversal with early exit on the first violation.

package matrix

import "math"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - A NaN element never compares close; equal infinities do.
//
// Complexity: Time O(r*c), Space O(1) on the *Dense fast path.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	for idx := range da.data {
		if !isClose(da.data[idx], db.data[idx], rtol, atol) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// isClose is the scalar relation behind ewAllClose.
func isClose(x, y, rtol, atol float64) bool {
	if x == y { // covers equal infinities
		return true
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y) // false for any NaN
}
