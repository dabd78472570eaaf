package interp

import (
	"fmt"
	"math"
)

// LinearSpline interpolates linearly on each node segment.
type LinearSpline struct {
	nodes  []float64
	values []float64
}

// NewLinearSpline builds the spline. Nodes must be strictly increasing and
// match values in length, with at least two points.
func NewLinearSpline(nodes, values []float64) (*LinearSpline, error) {
	if err := checkSplineNodes(nodes, values); err != nil {
		return nil, err
	}
	return &LinearSpline{nodes: clone(nodes), values: clone(values)}, nil
}

// At evaluates the spline at x; NaN outside the node range.
func (s *LinearSpline) At(x float64) float64 {
	seg := findSegment(s.nodes, x)
	if seg < 0 {
		return math.NaN()
	}
	x0, x1 := s.nodes[seg], s.nodes[seg+1]
	y0, y1 := s.values[seg], s.values[seg+1]
	slope := (x - x0) / (x1 - x0)
	return y0 + slope*(y1-y0)
}

// Eval evaluates the spline at every point of xs.
func (s *LinearSpline) Eval(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.At(x)
	}
	return out
}

// CubicHermite interpolates with cubic Hermite segments. Node derivatives
// come from central differences; the endpoint derivatives are zero.
type CubicHermite struct {
	nodes  []float64
	values []float64
	deriv  []float64
}

// NewCubicHermite builds the spline. Nodes must be strictly increasing and
// match values in length, with at least two points.
func NewCubicHermite(nodes, values []float64) (*CubicHermite, error) {
	if err := checkSplineNodes(nodes, values); err != nil {
		return nil, err
	}
	deriv := make([]float64, len(nodes))
	for i := 1; i < len(nodes)-1; i++ {
		deriv[i] = (values[i+1] - values[i-1]) / (nodes[i+1] - nodes[i-1])
	}
	return &CubicHermite{nodes: clone(nodes), values: clone(values), deriv: deriv}, nil
}

// At evaluates the spline at x; NaN outside the node range.
func (s *CubicHermite) At(x float64) float64 {
	seg := findSegment(s.nodes, x)
	if seg < 0 {
		return math.NaN()
	}
	x0, x1 := s.nodes[seg], s.nodes[seg+1]
	dt := x1 - x0
	t := (x - x0) / dt

	h00 := 2*t*t*t - 3*t*t + 1
	h10 := t*t*t - 2*t*t + t
	h01 := -2*t*t*t + 3*t*t
	h11 := t*t*t - t*t

	return h00*s.values[seg] + h10*dt*s.deriv[seg] +
		h01*s.values[seg+1] + h11*dt*s.deriv[seg+1]
}

// Eval evaluates the spline at every point of xs.
func (s *CubicHermite) Eval(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.At(x)
	}
	return out
}

// findSegment returns the index i with nodes[i] <= x <= nodes[i+1], or -1
// when x is outside the node range.
func findSegment(nodes []float64, x float64) int {
	if x < nodes[0] || x > nodes[len(nodes)-1] {
		return -1
	}
	lo, hi := 0, len(nodes)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if nodes[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func checkSplineNodes(nodes, values []float64) error {
	if len(nodes) < 2 || len(nodes) != len(values) {
		return fmt.Errorf("%w: %d nodes, %d values", ErrBadNodes, len(nodes), len(values))
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i] <= nodes[i-1] {
			return fmt.Errorf("%w: nodes must be strictly increasing at index %d", ErrBadNodes, i)
		}
	}
	return nil
}
