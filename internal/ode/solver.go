package ode

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/grid"
)

// ErrNonFinite reports a derivative callback returning NaN or Inf.
var ErrNonFinite = errors.New("derivative returned non-finite value")

// Interp selects how the walked solution is projected onto requested times.
type Interp int

const (
	// Linear interpolates between the two bracketing grid states.
	Linear Interp = iota
	// CubicHermite uses the bracketing states and their derivatives.
	CubicHermite
)

// Config controls the Solve driver.
type Config struct {
	// StepSize, when positive, refines the walk onto a uniform grid with
	// at most this spacing. Zero walks the caller's grid directly.
	StepSize float64
	// Interp selects the projection method. Default is Linear.
	Interp Interp
}

// matchTol absorbs roundoff when deciding whether an internal grid point has
// reached a requested time.
const matchTol = 1e-12

// Solve integrates y' = f(t, y) from y0 at t[0] and returns the solution at
// every requested time, as a (len(t), len(y0)) grid. The requested times must
// be strictly increasing.
func Solve(f Func, y0 []float64, t []float64, st Stepper, cfg Config) ([][]float64, error) {
	if len(t) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 time points, got %d", grid.ErrInvalidGrid, len(t))
	}
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return nil, fmt.Errorf("%w: times must be strictly increasing at index %d", grid.ErrInvalidGrid, i)
		}
	}
	if len(y0) == 0 {
		return nil, fmt.Errorf("%w: empty initial state", grid.ErrInvalidGrid)
	}

	walk := t
	if cfg.StepSize > 0 {
		var err error
		walk, err = grid.Uniform(t[0], t[len(t)-1], cfg.StepSize)
		if err != nil {
			return nil, err
		}
	}

	sol := make([][]float64, len(t))
	sol[0] = clone(y0)

	y := clone(y0)
	next := 1
	for k := 0; k+1 < len(walk); k++ {
		t0, t1 := walk[k], walk[k+1]
		y1 := st.Step(f, t0, t1-t0, y)
		if err := checkFinite(y1, t1); err != nil {
			return nil, err
		}

		for next < len(t) && t1 >= t[next]-matchTol {
			v, err := project(f, cfg.Interp, t0, t1, y, y1, t[next])
			if err != nil {
				return nil, err
			}
			sol[next] = v
			next++
		}
		y = y1
	}

	if next != len(t) {
		return nil, fmt.Errorf("%w: walk ended before reaching t[%d]=%g", grid.ErrInvalidGrid, next, t[next])
	}
	return sol, nil
}

func project(f Func, method Interp, t0, t1 float64, y0, y1 []float64, tv float64) ([]float64, error) {
	if tv <= t0 {
		return clone(y0), nil
	}
	if tv >= t1 {
		return clone(y1), nil
	}

	switch method {
	case CubicHermite:
		f0 := f(t0, y0)
		f1 := f(t1, y1)
		dt := t1 - t0
		s := (tv - t0) / dt

		h00 := 2*s*s*s - 3*s*s + 1
		h10 := s*s*s - 2*s*s + s
		h01 := -2*s*s*s + 3*s*s
		h11 := s*s*s - s*s

		out := make([]float64, len(y0))
		for i := range y0 {
			out[i] = h00*y0[i] + h10*dt*f0[i] + h01*y1[i] + h11*dt*f1[i]
		}
		return out, checkFinite(out, tv)
	default:
		s := (tv - t0) / (t1 - t0)
		out := make([]float64, len(y0))
		for i := range y0 {
			out[i] = y0[i] + s*(y1[i]-y0[i])
		}
		return out, nil
	}
}

func checkFinite(y []float64, t float64) error {
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: component %d at t=%g", ErrNonFinite, i, t)
		}
	}
	return nil
}

func clone(y []float64) []float64 {
	c := make([]float64, len(y))
	copy(c, y)
	return c
}
