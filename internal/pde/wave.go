package pde

import (
	"fmt"

	"github.com/san-kum/numlab/internal/grid"
	"github.com/san-kum/numlab/internal/linalg"
)

// WaveSolver solves the 1D wave equation u_tt = u_xx (unit wave speed) with
// prescribed displacement at both ends of the space segment.
//
// The interior of each new time row is obtained from a linear system that
// couples u[i,j] to u[i,j+1] only: the system matrix carries the main
// diagonal and the super-diagonal, nothing below. A symmetric tridiagonal
// stencil would also couple u[i,j-1]; this solver intentionally does not.
type WaveSolver struct {
	U0  Func // initial displacement u(t[0], x)
	Ut0 Func // initial velocity du/dt(t[0], x)
	UA  Func // displacement at the left endpoint for all time
	UB  Func // displacement at the right endpoint for all time
}

// NewWaveSolver builds a solver from the four condition functions.
func NewWaveSolver(u0, ut0, ua, ub Func) *WaveSolver {
	return &WaveSolver{U0: u0, Ut0: ut0, UA: ua, UB: ub}
}

// SolveWave1D is the convenience form of WaveSolver.Solve.
func SolveWave1D(t, x []float64, u0, ut0, ua, ub Func) ([][]float64, error) {
	return NewWaveSolver(u0, ut0, ua, ub).Solve(t, x)
}

// Solve computes the solution grid for time grid t (at least 2 points) and
// space grid x (at least 3 points). Both grids must be strictly increasing
// and uniformly spaced.
//
// Row 0 is U0 on x, row 1 is U0 + dt*Ut0; the first and last column of every
// row come from UA and UB and override anything else, including the seeded
// rows. Rows from index 2 on are produced one linear solve per time level.
func (s *WaveSolver) Solve(t, x []float64) ([][]float64, error) {
	if err := grid.Validate(t, 2); err != nil {
		return nil, fmt.Errorf("time grid: %w", err)
	}
	if err := grid.Validate(x, 3); err != nil {
		return nil, fmt.Errorf("space grid: %w", err)
	}

	dt := grid.Spacing(t)
	dx := grid.Spacing(x)
	lam := (dt / dx) * (dt / dx)

	u := make([][]float64, len(t))
	for i := range u {
		u[i] = make([]float64, len(x))
	}

	for j, xj := range x {
		u0j, err := eval(s.U0, xj, "u0")
		if err != nil {
			return nil, err
		}
		ut0j, err := eval(s.Ut0, xj, "ut0")
		if err != nil {
			return nil, err
		}
		u[0][j] = u0j
		u[1][j] = u0j + dt*ut0j
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

	// The system matrix is the same at every time level.
	n := len(x) - 2
	a := linalg.Eye(n, 0).Scale(1 + lam)
	a.Add(linalg.Eye(n, 1).Scale(-lam))

	b := make([]float64, n)
	for i := 2; i < len(t); i++ {
		for j := 1; j <= n; j++ {
			b[j-1] = 2*u[i-1][j] - (1+lam)*u[i-2][j] + lam*u[i-2][j-1]
		}
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
