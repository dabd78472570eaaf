package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/grid"
	"github.com/san-kum/numlab/internal/interp"
	"github.com/san-kum/numlab/internal/ode"
	"github.com/san-kum/numlab/internal/viz"
)

// demo initial value problems for the ode command.
var odeSystems = map[string]struct {
	f  ode.Func
	y0 []float64
}{
	"decay": {
		f:  func(t float64, y []float64) []float64 { return []float64{-y[0]} },
		y0: []float64{1},
	},
	"oscillator": {
		f:  func(t float64, y []float64) []float64 { return []float64{y[1], -y[0]} },
		y0: []float64{1, 0},
	},
}

func runODE(cmd *cobra.Command, args []string) error {
	sys, ok := odeSystems[args[0]]
	if !ok {
		return fmt.Errorf("unknown system %q (have: decay, oscillator)", args[0])
	}

	var st ode.Stepper
	switch odeMethod {
	case "euler":
		st = ode.Euler{}
	case "simpson":
		st = ode.Simpson{}
	case "rk4":
		st = ode.RK4{}
	default:
		return fmt.Errorf("unknown method %q", odeMethod)
	}

	if odeDt <= 0 || odeTime <= 0 {
		return fmt.Errorf("dt and time must be positive")
	}
	t, err := grid.Uniform(0, odeTime, odeDt)
	if err != nil {
		return err
	}

	cfg := ode.Config{StepSize: odeStep}
	if odeCubic {
		cfg.Interp = ode.CubicHermite
	}

	sol, err := ode.Solve(sys.f, sys.y0, t, st, cfg)
	if err != nil {
		return err
	}
	log.Debug().Str("system", args[0]).Str("method", st.Name()).Int("points", len(t)).Msg("integrated")

	series := make([]float64, len(sol))
	for i := range sol {
		series[i] = sol[i][0]
	}
	fmt.Println(viz.Header(fmt.Sprintf("%s (%s)", args[0], st.Name())))
	fmt.Println(viz.PlotRow(series, fmt.Sprintf("y[0] over t=[0,%g]", odeTime)))
	fmt.Printf("final state: %v\n", sol[len(sol)-1])
	return nil
}

func runInterp(cmd *cobra.Command, args []string) error {
	nodes, values, err := readSamples(args[0])
	if err != nil {
		return err
	}
	if interpPoints < 2 {
		return fmt.Errorf("points must be at least 2")
	}

	var at func(float64) float64
	switch interpMethod {
	case "lagrange":
		l, err := interp.NewLagrange(nodes, values)
		if err != nil {
			return err
		}
		at = l.At
	case "linear":
		s, err := interp.NewLinearSpline(nodes, values)
		if err != nil {
			return err
		}
		at = s.At
	case "cubic":
		s, err := interp.NewCubicHermite(nodes, values)
		if err != nil {
			return err
		}
		at = s.At
	default:
		return fmt.Errorf("unknown method %q", interpMethod)
	}

	xs := grid.Linspace(nodes[0], nodes[len(nodes)-1], interpPoints)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = at(x)
		if math.IsNaN(ys[i]) {
			ys[i] = 0
		}
	}

	fmt.Println(viz.Header(fmt.Sprintf("%s through %d nodes", interpMethod, len(nodes))))
	fmt.Println(viz.PlotRow(ys, fmt.Sprintf("x=[%g,%g]", xs[0], xs[len(xs)-1])))
	return nil
}

// readSamples parses a CSV of x,y rows.
func readSamples(path string) ([]float64, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: no samples", path)
	}

	nodes := make([]float64, 0, len(records))
	values := make([]float64, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("%s: row %d has %d fields, want 2", path, i+1, len(rec))
		}
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
		nodes = append(nodes, x)
		values = append(values, y)
	}
	return nodes, values, nil
}
