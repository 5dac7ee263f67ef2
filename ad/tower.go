// SPDX-License-Identifier: MIT

// Package ad - numeric tower adapter.
//
// Purpose:
//   - Real → AD promotion is always allowed and statically typed (Promote, PromoteAll).
//   - AD → real narrowing is never implicit: Scalar has no float conversion method, so
//     `var f float64 = s` does not compile; Value/Values are the explicit exits.
//   - For any-typed boundaries (decoded payloads, []any buffers) Coerce and Narrow apply
//     the same rules at run time and fail with ErrCoercion instead of losing derivatives.
//
// Determinism & Performance:
//   - Promote is O(1) and allocation-free; Coerce/Narrow inspect the dynamic kind once.

package ad

import (
	"fmt"

	"github.com/katalvlaran/forwardiff/internal/numkind"
)

// Real is the set of Go number kinds that promote to a Scalar.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Promote converts a real number into a constant Scalar (empty derivatives).
// The constant broadcasts against a derivative vector of any length.
func Promote[T Real](x T) Scalar {
	return Const(float64(x))
}

// PromoteAll promotes every element of xs; the result never aliases xs.
// Complexity: O(len(xs)).
func PromoteAll[T Real](xs []T) Vector {
	out := make(Vector, len(xs))
	for i, x := range xs {
		out[i] = Const(float64(x))
	}

	return out
}

// Repromote drops x to its value and lifts it back with an explicit zero
// vector of the same length: Repromote(x) == New(x.Value(), zeros(x.NDeriv())).
func Repromote(x Scalar) Scalar {
	if len(x.derivs) == 0 {
		return Const(x.value)
	}

	return Scalar{value: x.value, derivs: make([]float64, len(x.derivs))}
}

// Coerce interprets x as a Scalar.
// Accepts Scalar, non-nil *Scalar and every Real kind (promoted).
//
// Errors:
//   - ErrCoercion for nil, nil *Scalar and any non-numeric type.
func Coerce(x any) (Scalar, error) {
	switch v := x.(type) {
	case Scalar:
		return v, nil
	case *Scalar:
		if v == nil {
			return Scalar{}, adErrorf("Coerce", fmt.Errorf("nil *Scalar: %w", ErrCoercion))
		}
		return *v, nil
	}
	if r, ok := numkind.Float64(x); ok {
		return Const(r), nil
	}

	return Scalar{}, adErrorf("Coerce", fmt.Errorf("%T: %w", x, ErrCoercion))
}

// Narrow interprets x as a plain float64.
// Only Real kinds are accepted. A Scalar (or anything holding Scalars) is
// rejected even though it has a value: narrowing would silently drop its
// derivatives. Call Value explicitly instead.
//
// Errors:
//   - ErrCoercion for Scalar, *Scalar, Vector and any non-numeric type.
func Narrow(x any) (float64, error) {
	switch x.(type) {
	case Scalar, *Scalar, Vector, []Scalar:
		return 0, adErrorf("Narrow", fmt.Errorf("%T would discard derivatives: %w", x, ErrCoercion))
	}
	if r, ok := numkind.Float64(x); ok {
		return r, nil
	}

	return 0, adErrorf("Narrow", fmt.Errorf("%T: %w", x, ErrCoercion))
}

// NarrowAll is the bulk (astype-style) form of Narrow; it fails on the
// first element that is not a plain real.
//
// Errors:
//   - ErrCoercion wrapped with the offending index.
func NarrowAll(xs []any) ([]float64, error) {
	out := make([]float64, len(xs))
	var err error
	for i, x := range xs {
		if out[i], err = Narrow(x); err != nil {
			return nil, adErrorf("NarrowAll", fmt.Errorf("element %d: %w", i, err))
		}
	}

	return out, nil
}
