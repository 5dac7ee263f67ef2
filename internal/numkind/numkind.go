// SPDX-License-Identifier: MIT

// Package numkind classifies dynamically typed values by numeric kind.
// It is the single run-time definition of "a real number" shared by the AD
// tower (ad.Coerce, ad.Narrow) and the real container gate (matrix.Dense.Assign).
package numkind

import "reflect"

// Float64 reads x as float64 when its dynamic kind is a Go integer or float
// kind. Named types (type Meters float64) are accepted like their underlying
// kind; everything else, nil included, reports false.
func Float64(x any) (float64, bool) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
