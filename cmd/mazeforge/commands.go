package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeforge/config"
	"github.com/katalvlaran/mazeforge/logging"
)

var (
	configPath string
	logLevel   string

	// populated by PersistentPreRunE
	cfg *config.Config
	log *logrus.Logger

	rootCmd = &cobra.Command{
		Use:          "mazeforge",
		Short:        "Generate, render and solve grid mazes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			log, err = logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return err
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Synthesize one maze and write it as PNG",
		Args:  cobra.NoArgs,
		RunE:  runGenerate, // cmd_generate.go
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Classify a maze image and find the shortest path",
		Args:  cobra.NoArgs,
		RunE:  runSolve, // cmd_solve.go
	}

	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Synthesize many mazes concurrently",
		Args:  cobra.NoArgs,
		RunE:  runBatch, // cmd_batch.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe, // cmd_serve.go
	}
)

// generate/batch flags
var (
	genWidth, genHeight, genCell, genWalls int
	genSeed                                int64
	genOut, genJSON                        string
	genNoise, genMarkers, genASCII         bool
	batchCount                             int
	batchDir                               string
)

// solve flags
var (
	solveIn, solveOut string
	solveGridSize     int
	solvePortalRow    int
	solveStrategy     string
)

// serve flags
var serveAddr string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")

	for _, c := range []*cobra.Command{generateCmd, batchCmd} {
		c.Flags().IntVar(&genWidth, "width", 0, "canvas width in pixels")
		c.Flags().IntVar(&genHeight, "height", 0, "canvas height in pixels")
		c.Flags().IntVar(&genCell, "cell", 0, "cell size in pixels")
		c.Flags().IntVar(&genWalls, "walls", 0, "interior walls to aim for")
		c.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 picks one from the clock)")
	}
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "maze.png", "output PNG path")
	generateCmd.Flags().StringVar(&genJSON, "json", "", "also write the maze as JSON to this path")
	generateCmd.Flags().BoolVar(&genNoise, "noise", false, "add per-pixel noise")
	generateCmd.Flags().BoolVar(&genMarkers, "markers", true, "draw entrance/exit arrows")
	generateCmd.Flags().BoolVar(&genASCII, "ascii", false, "print the grid to stdout")

	batchCmd.Flags().IntVarP(&batchCount, "count", "n", 10, "number of mazes")
	batchCmd.Flags().StringVar(&batchDir, "dir", "mazes", "output directory")

	solveCmd.Flags().StringVarP(&solveIn, "in", "i", "", "input PNG")
	solveCmd.Flags().StringVarP(&solveOut, "out", "o", "", "write the solution overlay PNG here")
	solveCmd.Flags().IntVar(&solveGridSize, "grid-size", 0, "blocks per side (overrides config)")
	solveCmd.Flags().IntVar(&solvePortalRow, "portal-row", 0, "entrance/exit row (overrides config)")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "", "obstacle heuristic: green or lab")
	_ = solveCmd.MarkFlagRequired("in")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(generateCmd, solveCmd, batchCmd, serveCmd)
}
