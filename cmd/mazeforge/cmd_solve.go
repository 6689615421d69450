package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeforge/classify"
	"github.com/katalvlaran/mazeforge/render"
	"github.com/katalvlaran/mazeforge/solver"
)

func runSolve(cmd *cobra.Command, args []string) error {
	sc := cfg.Solver
	f := cmd.Flags()
	if f.Changed("grid-size") {
		sc.GridSize = solveGridSize
		if !f.Changed("portal-row") {
			sc.PortalRow = solveGridSize / 2
		}
	}
	if f.Changed("portal-row") {
		sc.PortalRow = solvePortalRow
	}
	if f.Changed("strategy") {
		sc.Strategy = solveStrategy
	}

	img, err := render.LoadPNG(solveIn)
	if err != nil {
		return err
	}
	cls, err := classify.Classify(img, sc.Options()...)
	if err != nil {
		return err
	}
	res, err := solver.Solve(cls.Grid, cls.Entrance, cls.Exit)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"found":   res.Found,
		"steps":   res.Steps(),
		"visited": res.Visited,
	}).Info("search finished")

	out := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintln(out, "no path")
	} else {
		fmt.Fprintf(out, "path (%d steps):", res.Steps())
		for _, p := range res.Path {
			fmt.Fprintf(out, " %v", p)
		}
		fmt.Fprintln(out)
	}

	if solveOut != "" {
		overlay, err := render.Overlay(img, res.Path, cls.Layout, render.DefaultPalette().Route)
		if err != nil {
			return err
		}
		if err := render.SavePNG(solveOut, overlay); err != nil {
			return err
		}
	}
	return nil
}
