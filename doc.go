// Package forwardiff is forward-mode automatic differentiation for Go.
//
// A value travels together with the vector of its partial derivatives, and
// every arithmetic operation, comparison and elementary function carries them
// along by the chain rule. There is no tape and no graph: derivatives are
// exact to floating-point rounding and cost one pass.
//
// Under the hood, everything is organized under four subpackages:
//
//	ad/       — the Scalar type, arithmetic, elementary functions, the numeric
//	            tower (Promote, Coerce, Narrow), Vector and the Algebra interface
//	admatrix/ — matrices of AD scalars: element-wise ops, Dot, Trace; the fused
//	            MatMul and Inverse are refused with a coercion error
//	matrix/   — the real-valued dense kernel (Mul, LU, Inverse, AllClose)
//	gradient/ — seeding, Gradient/Jacobian extraction, finite-difference checks
//
// Quick start:
//
//	x, _ := ad.Variable(3, 0, 1)  // x = 3, dx/dx = 1
//	y := ad.Sin(x.Mul(x))          // y = sin(x²)
//	fmt.Println(y.Value(), y.Derivative(0))
//
// Numeric tower: reals promote to AD constants implicitly (ad.Promote, mixed
// arithmetic such as MulReal); AD narrows to a real only explicitly, through
// Value or Values. Real containers refuse AD data with ErrCoercion.
//
// See examples/ for runnable programs.
package forwardiff
