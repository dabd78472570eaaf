package linalg

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular reports a system without a unique solution.
var ErrSingular = errors.New("singular system")

// pivotTol is the smallest pivot magnitude treated as nonzero.
const pivotTol = 1e-13

// Solve returns y such that A*y = b, using Gaussian elimination with partial
// pivoting. A and b are left untouched. The interior systems here are small,
// so no factorization is cached.
func Solve(a *Matrix, b []float64) ([]float64, error) {
	n := a.Rows
	if a.Cols != n {
		return nil, fmt.Errorf("%w: matrix is %dx%d, not square", ErrSingular, a.Rows, a.Cols)
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: rhs length %d does not match system size %d", ErrSingular, len(b), n)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty system", ErrSingular)
	}

	m := a.Clone()
	y := make([]float64, n)
	copy(y, b)

	for col := 0; col < n; col++ {
		pivot := col
		maxAbs := math.Abs(m.At(col, col))
		for r := col + 1; r < n; r++ {
			if v := math.Abs(m.At(r, col)); v > maxAbs {
				maxAbs = v
				pivot = r
			}
		}
		if maxAbs < pivotTol {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, col)
		}
		if pivot != col {
			for c := col; c < n; c++ {
				v := m.At(col, c)
				m.Set(col, c, m.At(pivot, c))
				m.Set(pivot, c, v)
			}
			y[col], y[pivot] = y[pivot], y[col]
		}

		inv := 1 / m.At(col, col)
		for r := col + 1; r < n; r++ {
			f := m.At(r, col) * inv
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				m.Set(r, c, m.At(r, c)-f*m.At(col, c))
			}
			y[r] -= f * y[col]
		}
	}

	for r := n - 1; r >= 0; r-- {
		sum := y[r]
		for c := r + 1; c < n; c++ {
			sum -= m.At(r, c) * y[c]
		}
		y[r] = sum / m.At(r, r)
	}

	return y, nil
}
