package pde

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSingularSystem reports that a per-step linear system had no
	// unique solution.
	ErrSingularSystem = errors.New("singular system")

	// ErrDomainFunction reports a caller-supplied condition function
	// returning NaN or Inf for a grid value.
	ErrDomainFunction = errors.New("domain function returned non-finite value")

	// ErrUnstableScheme reports grid steps outside the stability region of
	// the requested scheme.
	ErrUnstableScheme = errors.New("unstable scheme")
)

// Func is a caller-supplied condition: one real argument, one real result.
// It must be total over the grid values it will receive.
type Func func(float64) float64

// eval applies f and rejects non-finite results.
func eval(f Func, v float64, name string) (float64, error) {
	y := f(v)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: %s(%g) = %g", ErrDomainFunction, name, v, y)
	}
	return y, nil
}
