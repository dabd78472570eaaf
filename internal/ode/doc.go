// Package ode solves initial value problems y' = f(t, y) on a time grid.
//
// A Stepper advances the state across one interval; the driver in Solve walks
// an internal uniform grid (the caller's grid, or a finer one derived from a
// step size) and projects the walked solution back onto the requested times
// by linear or cubic Hermite interpolation.
package ode
