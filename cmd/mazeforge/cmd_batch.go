package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeforge/synth"
)

func runBatch(cmd *cobra.Command, args []string) error {
	req, seed := request(cmd)
	if err := os.MkdirAll(batchDir, 0o755); err != nil {
		return err
	}

	start := time.Now()
	mazes, err := synth.GenerateBatch(cmd.Context(), seed, batchCount, req, cfg.Generator.Options(log)...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"count": len(mazes),
		"seed":  seed,
		"took":  time.Since(start).String(),
	}).Info("batch generated")

	for _, m := range mazes {
		base := filepath.Join(batchDir, m.ID.String())
		if err := writeMaze(m, base+".png", false, true); err != nil {
			return err
		}
		raw, err := json.Marshal(m)
		if err != nil {
			return err
		}
		if err := os.WriteFile(base+".json", raw, 0o644); err != nil {
			return err
		}
	}
	return nil
}
