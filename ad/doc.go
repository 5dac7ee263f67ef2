// Package ad implements forward-mode automatic differentiation over float64.
//
// A Scalar carries a value together with the vector of its partial
// derivatives with respect to a fixed set of independent variables. Every
// operation of the package propagates those derivatives by the chain rule and
// returns a fresh Scalar; nothing is ever mutated in place, so Scalars may be
// shared freely between goroutines.
//
// What the package provides:
//
//   - Arithmetic: Neg, Add, Sub, Mul, Div, Pow, PowAD and the real-mixed
//     forms AddReal, SubReal, MulReal, DivReal, RealSub, RealDiv.
//   - Comparisons on values only: Eq, Ne, Lt, Le, Gt, Ge, Compare.
//   - Elementary functions: Log, Exp, Sqrt, Sin, Cos, Tan, Asin, Acos, Atan,
//     Atan2, Sinh, Cosh, Tanh, Abs, Min, Max, and the value-only Ceil, Floor.
//   - The numeric tower: Promote (real → AD, compile-time), Coerce and Narrow
//     for any-typed boundaries. There is no implicit AD → real conversion;
//     Value is the only way out.
//   - Vector, a slice of Scalars with element-wise algebra and Dot.
//   - Algebra, one interface implemented by ScalarAlgebra and VectorAlgebra,
//     so generic code can run unchanged on a scalar or on a whole vector.
//
// Derivative vectors of two operands must have equal length, or one of them
// must be empty (a constant), in which case it is treated as all zeros. Any
// other combination is a programmer error and panics with ErrLengthMismatch.
//
// Numeric failures (division by zero, log of a negative number, ...) are not
// errors: they propagate as NaN/±Inf exactly as plain float64 arithmetic
// does, so a Scalar can stand in for a float64 in generic numeric code.
//
// Quick example:
//
//	x := ad.New(1, []float64{1, 0}) // ∂x/∂x = 1
//	y := ad.New(2, []float64{0, 1}) // ∂y/∂y = 1
//	z := x.Mul(y).Add(ad.Sin(x))    // z = x·y + sin x
//	fmt.Println(z.Value(), z.Derivatives())
package ad
