// SPDX-License-Identifier: MIT
package gradient_test

import (
	"fmt"

	"github.com/katalvlaran/forwardiff/ad"
	"github.com/katalvlaran/forwardiff/gradient"
)

// ExampleGradient differentiates f(x, y) = x²·y at (3, 2).
func ExampleGradient() {
	f := func(v ad.Vector) ad.Scalar { return v[0].Pow(2).Mul(v[1]) }

	val, g, err := gradient.Gradient(f, []float64{3, 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(val, g)
	fmt.Println(gradient.Check(f, []float64{3, 2}))
	// Output:
	// 18 [12 9]
	// <nil>
}
