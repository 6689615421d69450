package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeforge/metrics"
	"github.com/katalvlaran/mazeforge/server"
	"github.com/katalvlaran/mazeforge/store"
)

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	gin.SetMode(cfg.Server.GinMode)

	st, err := store.Open(store.Options{Dir: cfg.Store.Dir, InMemory: cfg.Store.InMemory, Logger: log})
	if err != nil {
		return err
	}
	defer st.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.New(server.Config{
		Store:           st,
		Metrics:         metrics.New(reg),
		Gatherer:        reg,
		Logger:          log,
		Defaults:        cfg.Generator.Request(),
		SynthOptions:    cfg.Generator.Options(log),
		ClassifyOptions: cfg.Solver.Options(),
		RenderOptions:   cfg.Render.Options(nil), // noise off: rand.Rand is not shared across requests
		MaxUploadBytes:  cfg.Server.MaxUploadBytes,
		MaxUploadPixels: cfg.Server.MaxUploadPixels,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, addr)
}
