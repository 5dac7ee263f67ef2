// Package matrix is the real-valued dense kernel of forwardiff.
//
// It provides a row-major Dense type with safe accessors and an explicit
// numeric policy, plus deterministic kernels (Add, Sub, Hadamard, Mul,
// Transpose, Scale, MatVec, Trace, LU, Inverse, AllClose).
//
// Matrices of AD scalars live in package admatrix. Crossing from there into
// this package is always explicit (admatrix.Matrix.Values, Partial): Dense's
// Assign refuses any source that is not real-valued with ErrCoercion, so
// derivative information can never be dropped by accident. Inversion, in
// particular, is available only here, on real values.
//
// Complexity:
//
//	At and Set run in O(1) with bounds checking; Clone and Assign are O(r*c);
//	Mul, LU and Inverse are O(n³).
package matrix
