package pde

import (
	"math"
	"testing"

	"github.com/san-kum/numlab/internal/grid"
)

func BenchmarkWaveSolve(b *testing.B) {
	tg := grid.Linspace(0, 4, 200)
	xg := grid.Linspace(0, 2*math.Pi, 120)

	ut0 := func(x float64) float64 { return math.Exp(-(x-1)*(x-1)) * math.Atan(x) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SolveWave1D(tg, xg, zero, ut0, zero, zero); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDiffusionSolve(b *testing.B) {
	tg := grid.Linspace(0, 0.5, 100)
	xg := grid.Linspace(0, math.Pi, 60)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewDiffusionSolver(math.Sin, zero, zero).Solve(tg, xg, 1); err != nil {
			b.Fatal(err)
		}
	}
}
