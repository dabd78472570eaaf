// Package interp interpolates sampled values of a one-variable function.
//
// Lagrange builds the single polynomial through all nodes; LinearSpline and
// CubicHermite are piecewise. The piecewise interpolants return NaN outside
// the node range rather than extrapolating.
package interp
