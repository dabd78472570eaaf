package pde

import (
	"fmt"

	"github.com/san-kum/numlab/internal/grid"
	"github.com/san-kum/numlab/internal/linalg"
)

// DiffusionSolver solves the 1D diffusion equation u_t = u_xx with prescribed
// displacement at both ends of the space segment, using a sigma-weighted
// implicit scheme: sigma=1 is fully implicit, sigma=0 fully explicit.
type DiffusionSolver struct {
	U0 Func // initial value u(t[0], x)
	UA Func // value at the left endpoint for all time
	UB Func // value at the right endpoint for all time
}

// NewDiffusionSolver builds a solver from the three condition functions.
func NewDiffusionSolver(u0, ua, ub Func) *DiffusionSolver {
	return &DiffusionSolver{U0: u0, UA: ua, UB: ub}
}

// Solve computes the solution grid for time grid t (at least 2 points),
// space grid x (at least 3 points) and scheme weight sigma in [0,1].
//
// For sigma < 1 the scheme is conditionally stable: dt must not exceed
// dx^2 / (2*(1-sigma)), otherwise ErrUnstableScheme is returned before any
// computation.
func (s *DiffusionSolver) Solve(t, x []float64, sigma float64) ([][]float64, error) {
	if err := grid.Validate(t, 2); err != nil {
		return nil, fmt.Errorf("time grid: %w", err)
	}
	if err := grid.Validate(x, 3); err != nil {
		return nil, fmt.Errorf("space grid: %w", err)
	}
	if sigma < 0 || sigma > 1 {
		return nil, fmt.Errorf("sigma must be in [0,1], got %g", sigma)
	}

	dt := grid.Spacing(t)
	dx := grid.Spacing(x)
	lam := dt / (dx * dx)

	if sigma < 1 && dt > dx*dx/(2*(1-sigma)) {
		return nil, fmt.Errorf("%w: dt=%g exceeds dx^2/(2*(1-sigma))=%g",
			ErrUnstableScheme, dt, dx*dx/(2*(1-sigma)))
	}

	u := make([][]float64, len(t))
	for i := range u {
		u[i] = make([]float64, len(x))
	}

	for j, xj := range x {
		v, err := eval(s.U0, xj, "u0")
		if err != nil {
			return nil, err
		}
		u[0][j] = v
	}

	last := len(x) - 1
	left := make([]float64, len(t))
	right := make([]float64, len(t))
	for i, ti := range t {
		var err error
		if left[i], err = eval(s.UA, ti, "ua"); err != nil {
			return nil, err
		}
		if right[i], err = eval(s.UB, ti, "ub"); err != nil {
			return nil, err
		}
		u[i][0] = left[i]
		u[i][last] = right[i]
	}

	n := len(x) - 2
	a := linalg.Eye(n, 0).Scale(1 + 2*lam*sigma)
	a.Add(linalg.Eye(n, 1).Scale(-lam * sigma))
	a.Add(linalg.Eye(n, -1).Scale(-lam * sigma))

	expl := (1 - sigma) * lam
	b := make([]float64, n)
	for i := 1; i < len(t); i++ {
		for j := 1; j <= n; j++ {
			b[j-1] = expl*u[i-1][j+1] + (1-2*expl)*u[i-1][j] + expl*u[i-1][j-1]
		}
		// Boundary unknowns are prescribed, so their implicit coupling
		// moves to the right-hand side.
		b[0] += lam * sigma * left[i]
		b[n-1] += lam * sigma * right[i]

		y, err := linalg.Solve(a, b)
		if err != nil {
			return nil, fmt.Errorf("%w: time step %d: %v", ErrSingularSystem, i, err)
		}
		copy(u[i][1:last], y)
		u[i][0] = left[i]
		u[i][last] = right[i]
	}

	return u, nil
}
