package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/pde"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/san-kum/numlab/internal/tui"
	"github.com/san-kum/numlab/internal/viz"
)

// loadRunConfig layers preset, config file and flag overrides.
func loadRunConfig() (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p, err := config.Preset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	if equation != "" {
		cfg.Equation = equation
	}
	if sigma >= 0 {
		cfg.Sigma = sigma
	}
	if tEnd != 0 {
		cfg.Time.Start, cfg.Time.End = tStart, tEnd
	}
	if tPoints != 0 {
		cfg.Time.Points = tPoints
	}
	if xEnd != 0 {
		cfg.Space.Start, cfg.Space.End = xStart, xEnd
	}
	if xPoints != 0 {
		cfg.Space.Points = xPoints
	}

	return cfg, cfg.Validate()
}

// solveConfig runs the configured equation and returns the grids.
func solveConfig(cfg *config.Config) (t, x []float64, u [][]float64, err error) {
	if t, err = cfg.Time.Build(); err != nil {
		return nil, nil, nil, err
	}
	if x, err = cfg.Space.Build(); err != nil {
		return nil, nil, nil, err
	}

	u0, err := cfg.Initial.Func()
	if err != nil {
		return nil, nil, nil, err
	}
	ua, err := cfg.Left.Func()
	if err != nil {
		return nil, nil, nil, err
	}
	ub, err := cfg.Right.Func()
	if err != nil {
		return nil, nil, nil, err
	}

	log.Debug().
		Str("equation", cfg.Equation).
		Int("timePoints", len(t)).
		Int("spacePoints", len(x)).
		Msg("solving")

	switch cfg.Equation {
	case config.EquationWave:
		ut0, ferr := cfg.Velocity.Func()
		if ferr != nil {
			return nil, nil, nil, ferr
		}
		u, err = pde.SolveWave1D(t, x, u0, ut0, ua, ub)
	case config.EquationDiffusion:
		u, err = pde.NewDiffusionSolver(u0, ua, ub).Solve(t, x, cfg.Sigma)
	default:
		err = fmt.Errorf("unknown equation %q", cfg.Equation)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return t, x, u, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	t, x, u, err := solveConfig(cfg)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	id, err := store.Save(cfg.Equation, cfg.Sigma, t, x, u)
	if err != nil {
		return err
	}
	log.Info().Str("run", id).Msg("run stored")

	fmt.Println(viz.Header(id))
	fmt.Println(viz.Summary([][2]string{
		{"equation", cfg.Equation},
		{"grid", fmt.Sprintf("%d x %d", len(t), len(x))},
		{"dt", fmt.Sprintf("%.6g", t[1]-t[0])},
		{"dx", fmt.Sprintf("%.6g", x[1]-x[0])},
	}))
	fmt.Println()
	fmt.Println(viz.PlotRow(u[len(u)-1], viz.RowCaption(len(u)-1, t[len(t)-1])))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, t, _, u, err := store.Load(args[0])
	if err != nil {
		return err
	}

	if heatmap {
		fmt.Println(viz.Header(meta.ID))
		fmt.Print(viz.Heatmap(u, 0, 0))
		return nil
	}

	if plotColIdx >= 0 {
		if plotColIdx >= meta.Cols {
			return fmt.Errorf("col %d out of range (grid has %d columns)", plotColIdx, meta.Cols)
		}
		fmt.Println(viz.PlotColumn(u, plotColIdx, fmt.Sprintf("x index %d over time", plotColIdx)))
		return nil
	}

	row := plotRowIdx
	if row < 0 {
		row = len(u) - 1
	}
	if row >= len(u) {
		return fmt.Errorf("row %d out of range (grid has %d rows)", row, len(u))
	}
	fmt.Println(viz.PlotRow(u[row], viz.RowCaption(row, t[row])))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUATION\tGRID\tDT\tDX\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.4g\t%.4g\t%s\n",
			r.ID, r.Equation, r.Rows, r.Cols, r.Dt, r.Dx,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, _, _, _, err := store.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	t, _, u, err := solveConfig(cfg)
	if err != nil {
		return err
	}
	return tui.NewPlayer(cfg.Equation, t, u, fps).Run()
}

func runPresets(cmd *cobra.Command, args []string) error {
	for _, n := range config.PresetNames() {
		cfg, err := config.Preset(n)
		if err != nil {
			return err
		}
		fmt.Printf("%-16s %s, t=[%g,%g] x=[%g,%g]\n", n, cfg.Equation,
			cfg.Time.Start, cfg.Time.End, cfg.Space.Start, cfg.Space.End)
	}
	return nil
}
