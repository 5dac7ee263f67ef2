// Package gradient seeds independent variables, evaluates AD functions and
// reads their derivatives back as real matrices.
//
// Initialize and InitializeWith build the seeded inputs: variable j carries a
// unit derivative at position offset+j. ExtractValue and ExtractGradient are
// the explicit exits back to reals; Gradient and Jacobian do the whole round
// trip for a function of a real point.
//
// Check and CheckJacobian compare the AD derivatives against finite
// differences (gonum diff/fd). They are debugging aids for user functions:
// an error matching ErrGradientMismatch means the AD code and the plain-value
// code of f disagree, usually because a branch dropped the derivative path.
package gradient
