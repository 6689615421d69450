package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeforge/render"
	"github.com/katalvlaran/mazeforge/synth"
)

var markerColor = color.RGBA{R: 40, G: 180, B: 70, A: 255}

// request merges generator flags over the configured request.
func request(cmd *cobra.Command) (synth.Request, int64) {
	req := cfg.Generator.Request()
	f := cmd.Flags()
	if f.Changed("width") {
		req.WidthPx = genWidth
	}
	if f.Changed("height") {
		req.HeightPx = genHeight
	}
	if f.Changed("cell") {
		req.CellSize = genCell
	}
	if f.Changed("walls") {
		req.Walls = genWalls
	}
	seed := cfg.Generator.Seed
	if f.Changed("seed") {
		seed = genSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return req, seed
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, seed := request(cmd)
	start := time.Now()
	m, err := synth.FromSeed(seed, req, cfg.Generator.Options(log)...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"id":      m.ID,
		"seed":    m.Seed,
		"grid":    fmt.Sprintf("%dx%d", m.Grid.Width, m.Grid.Height),
		"walls":   m.Stats.FinalWalls,
		"repairs": len(m.Stats.Repairs),
		"took":    time.Since(start).String(),
	}).Info("maze generated")

	if err := writeMaze(m, genOut, genNoise, genMarkers); err != nil {
		return err
	}
	if genJSON != "" {
		raw, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(genJSON, raw, 0o644); err != nil {
			return err
		}
	}
	if genASCII {
		fmt.Fprintln(cmd.OutOrStdout(), m.Grid.String())
	}
	return nil
}

// writeMaze rasterizes m with the configured render options and saves it.
func writeMaze(m *synth.Maze, path string, noise, markers bool) error {
	var rng *rand.Rand
	if noise || cfg.Render.Noise > 0 {
		rng = rand.New(rand.NewSource(m.Seed))
	}
	r := cfg.Render
	if noise && r.Noise == 0 {
		r.Noise = render.DefaultNoise
	}
	img, err := render.Rasterize(m.Grid, m.CellSize, r.Options(rng)...)
	if err != nil {
		return err
	}
	if markers {
		cell := img.Bounds().Dx() / m.Grid.Width
		if err := render.Markers(img, m.Grid, render.CellMapper{Size: cell}, m.Entrance, m.Exit, markerColor); err != nil {
			return err
		}
	}
	if err := render.SavePNG(path, img); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"path": path, "size": img.Bounds().Size().String()}).Info("image written")
	return nil
}
