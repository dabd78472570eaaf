// Package diff computes finite-difference derivatives of scalar functions
// and Chebyshev polynomial values on grids of nodes.
package diff

import (
	"fmt"

	"github.com/san-kum/numlab/internal/grid"
)

// Scheme selects the difference approximation of the first derivative.
type Scheme int

const (
	// Central is (f(x+h) - f(x-h)) / 2h, second-order accurate.
	Central Scheme = iota
	// Forward is (f(x+h) - f(x)) / h.
	Forward
	// Backward is (f(x) - f(x-h)) / h.
	Backward
)

// Derivative samples the first derivative of f on an evenly spaced grid over
// [start, end] with node spacing h. It returns the nodes and the derivative
// values at them.
func Derivative(f func(float64) float64, start, end, h float64, scheme Scheme) ([]float64, []float64, error) {
	nodes, err := grid.Uniform(start, end, h)
	if err != nil {
		return nil, nil, err
	}

	vals := make([]float64, len(nodes))
	for i, x := range nodes {
		switch scheme {
		case Forward:
			vals[i] = (f(x+h) - f(x)) / h
		case Backward:
			vals[i] = (f(x) - f(x-h)) / h
		case Central:
			vals[i] = (f(x+h) - f(x-h)) / (2 * h)
		default:
			return nil, nil, fmt.Errorf("unknown scheme %d", scheme)
		}
	}
	return nodes, vals, nil
}

// SecondDerivative samples the central second difference of f on an evenly
// spaced grid over [start, end] with node spacing h.
func SecondDerivative(f func(float64) float64, start, end, h float64) ([]float64, []float64, error) {
	nodes, err := grid.Uniform(start, end, h)
	if err != nil {
		return nil, nil, err
	}

	vals := make([]float64, len(nodes))
	h2 := h * h
	for i, x := range nodes {
		vals[i] = (f(x+h) + f(x-h) - 2*f(x)) / h2
	}
	return nodes, vals, nil
}
