package diff

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/numlab/internal/grid"
)

func TestDerivativeSin(t *testing.T) {
	h := 1e-4
	nodes, vals, err := Derivative(math.Sin, 0, math.Pi, h, Central)
	if err != nil {
		t.Fatalf("derivative failed: %v", err)
	}
	if len(nodes) != len(vals) {
		t.Fatalf("nodes and values disagree: %d vs %d", len(nodes), len(vals))
	}

	for i, x := range nodes {
		if math.Abs(vals[i]-math.Cos(x)) > 1e-7 {
			t.Errorf("d/dx sin at %g: got %g, expected %g", x, vals[i], math.Cos(x))
		}
	}
}

func TestDerivativeSchemeOrders(t *testing.T) {
	// Central is second order; halving h should shrink forward error
	// roughly 2x and central error roughly 4x.
	f := math.Exp
	at := func(scheme Scheme, h float64) float64 {
		_, vals, err := Derivative(f, 1, 1, h, scheme)
		if err != nil {
			t.Fatalf("derivative failed: %v", err)
		}
		return math.Abs(vals[0] - math.E)
	}

	for _, scheme := range []Scheme{Forward, Backward, Central} {
		coarse := at(scheme, 1e-2)
		fine := at(scheme, 5e-3)
		if fine >= coarse {
			t.Errorf("scheme %d: error did not shrink with h (%g -> %g)", scheme, coarse, fine)
		}
	}

	if at(Central, 1e-2) >= at(Forward, 1e-2) {
		t.Error("central scheme should beat forward at equal h")
	}
}

func TestDerivativeBadInputs(t *testing.T) {
	if _, _, err := Derivative(math.Sin, 0, 1, 0, Central); !errors.Is(err, grid.ErrInvalidGrid) {
		t.Errorf("zero step: expected ErrInvalidGrid, got %v", err)
	}
	if _, _, err := Derivative(math.Sin, 0, 1, 0.1, Scheme(42)); err == nil {
		t.Error("unknown scheme: expected error")
	}
}

func TestSecondDerivative(t *testing.T) {
	// (x^3)'' = 6x
	f := func(x float64) float64 { return x * x * x }
	nodes, vals, err := SecondDerivative(f, -1, 1, 1e-3)
	if err != nil {
		t.Fatalf("second derivative failed: %v", err)
	}

	for i, x := range nodes {
		if math.Abs(vals[i]-6*x) > 1e-5 {
			t.Errorf("f'' at %g: got %g, expected %g", x, vals[i], 6*x)
		}
	}
}

func TestChebyshevT(t *testing.T) {
	xs := grid.Linspace(-1, 1, 41)

	// T3(x) = 4x^3 - 3x
	got := ChebyshevT(xs, 3)
	for i, x := range xs {
		want := 4*x*x*x - 3*x
		if math.Abs(got[i]-want) > 1e-12 {
			t.Errorf("T3(%g): got %g, expected %g", x, got[i], want)
		}
	}

	// degenerate degrees
	for i, v := range ChebyshevT(xs, 0) {
		if v != 1 {
			t.Errorf("T0(%g) = %g, expected 1", xs[i], v)
		}
	}
	for i, v := range ChebyshevT(xs, 1) {
		if v != xs[i] {
			t.Errorf("T1(%g) = %g, expected x", xs[i], v)
		}
	}
}

func TestChebyshevU(t *testing.T) {
	xs := grid.Linspace(-1, 1, 41)

	// U2(x) = 4x^2 - 1
	got := ChebyshevU(xs, 2)
	for i, x := range xs {
		want := 4*x*x - 1
		if math.Abs(got[i]-want) > 1e-12 {
			t.Errorf("U2(%g): got %g, expected %g", x, got[i], want)
		}
	}

	for i, v := range ChebyshevU(xs, 1) {
		if v != 2*xs[i] {
			t.Errorf("U1(%g) = %g, expected 2x", xs[i], v)
		}
	}
}

func TestChebyshevIdentity(t *testing.T) {
	// T_n(cos a) = cos(n a)
	for _, a := range []float64{0.1, 0.7, 1.3, 2.9} {
		for n := 0; n <= 6; n++ {
			got := ChebyshevT([]float64{math.Cos(a)}, n)[0]
			want := math.Cos(float64(n) * a)
			if math.Abs(got-want) > 1e-10 {
				t.Errorf("T%d(cos %g): got %g, expected %g", n, a, got, want)
			}
		}
	}
}
