package diff

// ChebyshevT evaluates the degree-n Chebyshev polynomial of the first kind
// at every node in xs, by the three-term recurrence
// T(n) = 2x*T(n-1) - T(n-2) with T(0)=1, T(1)=x.
func ChebyshevT(xs []float64, n int) []float64 {
	return chebyshev(xs, n, func(x float64) float64 { return x })
}

// ChebyshevU evaluates the degree-n Chebyshev polynomial of the second kind
// at every node in xs. Same recurrence as ChebyshevT with U(1)=2x.
func ChebyshevU(xs []float64, n int) []float64 {
	return chebyshev(xs, n, func(x float64) float64 { return 2 * x })
}

func chebyshev(xs []float64, n int, first func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		p0, p1 := 1.0, first(x)
		switch n {
		case 0:
			out[i] = p0
			continue
		case 1:
			out[i] = p1
			continue
		}
		for k := 2; k <= n; k++ {
			p0, p1 = p1, 2*x*p1-p0
		}
		out[i] = p1
	}
	return out
}
