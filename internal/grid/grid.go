// Package grid builds and validates the uniform 1D grids the solvers run on.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid reports a grid that is too short, unsorted, or unevenly
// spaced.
var ErrInvalidGrid = errors.New("invalid grid")

// relTol bounds the allowed relative deviation between spacings.
const relTol = 1e-9

// Linspace returns n evenly spaced points from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n <= 1 {
		return []float64{start}
	}
	g := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range g {
		g[i] = start + float64(i)*step
	}
	g[n-1] = end
	return g
}

// Uniform builds a grid from start to end with spacing at most step. The
// endpoint count matches ceil(|end-start|/step)+1, so the actual spacing may
// shrink slightly to land exactly on end.
func Uniform(start, end, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %g", ErrInvalidGrid, step)
	}
	n := int(math.Ceil(math.Abs(end-start)/step)) + 1
	return Linspace(start, end, n), nil
}

// Spacing returns the distance between the first two points.
func Spacing(g []float64) float64 {
	if len(g) < 2 {
		return 0
	}
	return g[1] - g[0]
}

// Validate checks that g has at least minLen points, is strictly increasing,
// and is uniformly spaced.
func Validate(g []float64, minLen int) error {
	if len(g) < minLen {
		return fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidGrid, minLen, len(g))
	}
	h := g[1] - g[0]
	if h <= 0 {
		return fmt.Errorf("%w: grid must be strictly increasing", ErrInvalidGrid)
	}
	scale := math.Abs(h)
	for i := 1; i < len(g); i++ {
		d := g[i] - g[i-1]
		if d <= 0 {
			return fmt.Errorf("%w: grid must be strictly increasing at index %d", ErrInvalidGrid, i)
		}
		if math.Abs(d-h) > relTol*scale {
			return fmt.Errorf("%w: non-uniform spacing at index %d (%g vs %g)", ErrInvalidGrid, i, d, h)
		}
	}
	return nil
}
