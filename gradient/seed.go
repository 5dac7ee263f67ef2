// SPDX-License-Identifier: MIT

// Package gradient - seeding and extraction.
//
// Purpose:
//   - Build variables whose derivative matrix is the identity (or a shifted
//     block of a wider identity).
//   - Read values and the len(v)×nderiv gradient matrix back out.
//
// Complexity quicksheet (m = len(v), n = derivative width):
//   - Initialize/InitializeWith: O(m*n); ExtractGradient: O(m*n).

package gradient

import (
	"fmt"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/katalvlaran/forwardiff/matrix"
)

// Initialize returns len(values) independent variables: element j has value
// values[j] and the unit derivative vector e_j of length len(values).
func Initialize(values []float64) ad.Vector {
	// offset 0 and n == len(values) always fit
	v, _ := InitializeWith(values, len(values), 0)

	return v
}

// InitializeWith seeds values into a problem with n derivatives: element j
// gets the unit vector e_{offset+j}. Use it to stack several groups of
// variables into one problem.
//
// Errors:
//   - ErrInvalidSeed when offset<0 or offset+len(values) > n.
func InitializeWith(values []float64, n, offset int) (ad.Vector, error) {
	if offset < 0 || n < 0 || offset+len(values) > n {
		return nil, gradientErrorf(opInitializeWith,
			fmt.Errorf("len=%d n=%d offset=%d: %w", len(values), n, offset, ErrInvalidSeed))
	}
	out := make(ad.Vector, len(values))
	d := make([]float64, n)
	for j, x := range values {
		d[offset+j] = 1
		out[j] = ad.New(x, d) // New copies d
		d[offset+j] = 0
	}

	return out, nil
}

// ExtractValue returns the values of v; derivatives are dropped.
func ExtractValue(v ad.Vector) []float64 {
	return v.Values()
}

// ExtractGradient returns the len(v)×n matrix whose row i holds the partials
// of v[i]. Constant elements give zero rows.
//
// Errors:
//   - ErrEmpty for an empty vector.
//   - ErrNoDerivatives when every element is a constant.
//   - ad.ErrLengthMismatch when elements disagree on n.
func ExtractGradient(v ad.Vector) (*matrix.Dense, error) {
	if len(v) == 0 {
		return nil, gradientErrorf(opExtractGradient, ErrEmpty)
	}
	n, err := v.NDeriv()
	if err != nil {
		return nil, gradientErrorf(opExtractGradient, err)
	}
	if n == 0 {
		return nil, gradientErrorf(opExtractGradient, ErrNoDerivatives)
	}

	return gradientMatrix(opExtractGradient, v, n)
}

// gradientMatrix fills a len(v)×n Dense with the partials of v.
// Callers guarantee every non-constant element has exactly n partials.
func gradientMatrix(tag string, v ad.Vector, n int) (*matrix.Dense, error) {
	out, err := matrix.NewDenseWithOptions(len(v), n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, gradientErrorf(tag, err)
	}
	var i, k int
	for i = range v {
		if v[i].IsConst() {
			continue
		}
		for k = 0; k < n; k++ {
			if err = out.Set(i, k, v[i].Derivative(k)); err != nil {
				return nil, gradientErrorf(tag, err)
			}
		}
	}

	return out, nil
}
