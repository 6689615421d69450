// Package server exposes maze generation, storage, rendering and solving
// over HTTP with gin.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeforge/classify"
	"github.com/katalvlaran/mazeforge/metrics"
	"github.com/katalvlaran/mazeforge/render"
	"github.com/katalvlaran/mazeforge/store"
	"github.com/katalvlaran/mazeforge/synth"
)

// Config wires the server's collaborators.
type Config struct {
	Store   *store.Store
	Metrics *metrics.Metrics
	// Gatherer backs GET /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Logger   logrus.FieldLogger

	// Defaults fills zero fields of POST /mazes bodies.
	Defaults        synth.Request
	SynthOptions    []synth.Option
	ClassifyOptions []classify.Option
	RenderOptions   []render.Option
	// MaxUploadBytes bounds POST /solve bodies; 0 means 32 MiB.
	MaxUploadBytes int64
	// MaxUploadPixels bounds the decoded upload; 0 means render.DefaultMaxPixels.
	MaxUploadPixels int
}

// Server holds the gin engine and its dependencies.
type Server struct {
	cfg    Config
	log    logrus.FieldLogger
	engine *gin.Engine
	now    func() time.Time
}

// New builds the router. cfg.Store is required.
func New(cfg Config) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 32 << 20
	}
	if cfg.MaxUploadPixels <= 0 {
		cfg.MaxUploadPixels = render.DefaultMaxPixels
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Server{cfg: cfg, log: log, engine: gin.New(), now: time.Now}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

// Handler returns the HTTP handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)
	if s.cfg.Gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := s.engine.Group("/api/v1")
	v1.POST("/mazes", s.createMaze)
	v1.GET("/mazes", s.listMazes)
	v1.GET("/mazes/:id", s.getMaze)
	v1.DELETE("/mazes/:id", s.deleteMaze)
	v1.GET("/mazes/:id/image", s.mazeImage)
	v1.GET("/mazes/:id/solution", s.mazeSolution)
	v1.POST("/solve", s.solveImage)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := s.now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
