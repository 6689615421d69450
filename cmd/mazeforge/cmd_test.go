package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeforge/grid"
	"github.com/katalvlaran/mazeforge/render"
	"github.com/katalvlaran/mazeforge/synth"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

// TestGenerateThenSolve generates an open 17×17 maze, so the classifier's
// row-8 portals are joined by a straight corridor, and solves its PNG.
func TestGenerateThenSolve(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "maze.png")
	js := filepath.Join(dir, "maze.json")
	conf := filepath.Join(dir, "mazeforge.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("generator:\n  gap_stone_probability: 0\n"), 0o600))
	t.Cleanup(func() { configPath = "" })

	ascii := execute(t, "generate", "--config", conf,
		"--width", "170", "--height", "170", "--cell", "10", "--walls", "0",
		"--seed", "5", "--out", png, "--json", js, "--ascii")
	assert.Contains(t, ascii, "#")

	img, err := render.LoadPNG(png)
	require.NoError(t, err)
	assert.Equal(t, 170, img.Bounds().Dx())

	raw, err := os.ReadFile(js)
	require.NoError(t, err)
	var m synth.Maze
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, int64(5), m.Seed)
	assert.Equal(t, 17, m.Grid.Width)
	assert.Equal(t, 0, m.Stats.FinalWalls)

	want := "path (16 steps):"
	for x := 0; x <= 16; x++ {
		want += " " + grid.Position{X: x, Y: 8}.String()
	}

	overlay := filepath.Join(dir, "solved.png")
	out := execute(t, "solve", "--config", conf, "--in", png, "--out", overlay, "--strategy", "lab")
	assert.Equal(t, want+"\n", out)
	_, err = os.Stat(overlay)
	assert.NoError(t, err)
}

func TestBatch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	execute(t, "batch", "-n", "3", "--dir", dir,
		"--width", "110", "--height", "90", "--cell", "10", "--walls", "15", "--seed", "9")

	pngs, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	jsons, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, pngs, 3)
	assert.Len(t, jsons, 3)
}

func TestBatch_NegativeCount(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"batch", "-n", "-1", "--dir", t.TempDir(), "--log-level", "error"})
	assert.ErrorIs(t, rootCmd.Execute(), synth.ErrInvalidRequest)
}

func TestSolve_MissingInput(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"solve", "--in", filepath.Join(t.TempDir(), "nope.png")})
	assert.Error(t, rootCmd.Execute())
}
