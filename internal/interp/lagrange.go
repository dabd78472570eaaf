package interp

import (
	"errors"
	"fmt"
)

// ErrBadNodes reports interpolation nodes that are empty, mismatched with
// their values, or not usable for the requested interpolant.
var ErrBadNodes = errors.New("invalid interpolation nodes")

// Lagrange is polynomial interpolation through every node.
type Lagrange struct {
	nodes  []float64
	values []float64
}

// NewLagrange builds the interpolant. Nodes must be pairwise distinct and
// match values in length.
func NewLagrange(nodes, values []float64) (*Lagrange, error) {
	if len(nodes) == 0 || len(nodes) != len(values) {
		return nil, fmt.Errorf("%w: %d nodes, %d values", ErrBadNodes, len(nodes), len(values))
	}
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i] == nodes[j] {
				return nil, fmt.Errorf("%w: duplicate node %g", ErrBadNodes, nodes[i])
			}
		}
	}
	return &Lagrange{nodes: clone(nodes), values: clone(values)}, nil
}

// At evaluates the interpolating polynomial at x.
func (l *Lagrange) At(x float64) float64 {
	sum := 0.0
	for k, yk := range l.values {
		basis := 1.0
		for i, node := range l.nodes {
			if i == k {
				continue
			}
			basis *= (x - node) / (l.nodes[k] - node)
		}
		sum += yk * basis
	}
	return sum
}

// Eval evaluates the interpolant at every point of xs.
func (l *Lagrange) Eval(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = l.At(x)
	}
	return out
}

func clone(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
