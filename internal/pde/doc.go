// Package pde implements finite-difference solvers for one-dimensional
// partial differential equations on uniform time/space grids.
//
// Each solver produces the full space-time solution as a (len(t), len(x))
// grid: row i is the displacement profile at time t[i]. Initial and boundary
// conditions are caller-supplied functions of one real variable. Solvers are
// pure: no state survives a call, and a failed call returns no grid.
package pde
