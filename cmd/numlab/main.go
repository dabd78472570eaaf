package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	equation   string
	sigma      float64

	tStart, tEnd float64
	tPoints      int
	xStart, xEnd float64
	xPoints      int

	plotRowIdx int
	plotColIdx int
	heatmap    bool

	fps int

	odeMethod string
	odeDt     float64
	odeTime   float64
	odeStep   float64
	odeCubic  bool

	interpMethod string
	interpPoints int
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "numerical methods lab: PDE and ODE solvers, interpolation, plotting",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve an equation and store the run",
		RunE:  runSolve,
	}
	addRunFlags(solveCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotRowIdx, "row", -1, "time level to plot (default last)")
	plotCmd.Flags().IntVar(&plotColIdx, "col", -1, "space index to plot over time")
	plotCmd.Flags().BoolVar(&heatmap, "heatmap", false, "render the full grid as a heatmap")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  runList,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "solve and play the solution in the terminal",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", 30, "playback frames per second")

	odeCmd := &cobra.Command{
		Use:   "ode [system]",
		Short: "integrate a demo initial value problem (decay, oscillator)",
		Args:  cobra.ExactArgs(1),
		RunE:  runODE,
	}
	odeCmd.Flags().StringVar(&odeMethod, "method", "rk4", "stepper: euler, simpson or rk4")
	odeCmd.Flags().Float64Var(&odeDt, "dt", 0.01, "output spacing")
	odeCmd.Flags().Float64Var(&odeTime, "time", 10, "duration")
	odeCmd.Flags().Float64Var(&odeStep, "step-size", 0, "internal walk step (0: walk output times)")
	odeCmd.Flags().BoolVar(&odeCubic, "cubic", false, "cubic Hermite projection")

	interpCmd := &cobra.Command{
		Use:   "interp [nodes.csv]",
		Short: "interpolate x,y samples and plot the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runInterp,
	}
	interpCmd.Flags().StringVar(&interpMethod, "method", "cubic", "lagrange, linear or cubic")
	interpCmd.Flags().IntVar(&interpPoints, "points", 200, "evaluation points")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in run presets",
		RunE:  runPresets,
	}

	rootCmd.AddCommand(solveCmd, plotCmd, listCmd, exportCmd, liveCmd, odeCmd, interpCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file (.yaml or .toml)")
	cmd.Flags().StringVar(&preset, "preset", "", "built-in preset name")
	cmd.Flags().StringVar(&equation, "equation", "", "wave or diffusion (overrides config)")
	cmd.Flags().Float64Var(&sigma, "sigma", -1, "diffusion scheme weight (overrides config)")
	cmd.Flags().Float64Var(&tStart, "t-start", 0, "time start")
	cmd.Flags().Float64Var(&tEnd, "t-end", 0, "time end (0: keep config)")
	cmd.Flags().IntVar(&tPoints, "t-points", 0, "time points (0: keep config)")
	cmd.Flags().Float64Var(&xStart, "x-start", 0, "space start")
	cmd.Flags().Float64Var(&xEnd, "x-end", 0, "space end (0: keep config)")
	cmd.Flags().IntVar(&xPoints, "x-points", 0, "space points (0: keep config)")
}
