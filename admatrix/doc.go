// Package admatrix provides two-dimensional arrays of AD scalars.
//
// Every cell is an ad.Scalar; element-wise arithmetic, the matrix product
// (Dot, built from ad.Dot per cell so the product rule applies term by term)
// and Trace all run through the scalar algebra.
//
// Two bulk operations are refused. MatMul, the fused product a real-valued
// backend would offer, and Inverse both return an error matching
// ad.ErrUnsupported (and therefore ad.ErrCoercion). To invert, extract the
// values explicitly with Values and use package matrix.
//
// Crossing to reals is always explicit: Values and Partial build a
// *matrix.Dense; assigning a *Matrix into a real container fails.
package admatrix
