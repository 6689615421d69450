package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazeforge/classify"
	"github.com/katalvlaran/mazeforge/grid"
	"github.com/katalvlaran/mazeforge/render"
	"github.com/katalvlaran/mazeforge/solver"
	"github.com/katalvlaran/mazeforge/store"
	"github.com/katalvlaran/mazeforge/synth"
)

// maxGridCells bounds the grid a single POST /mazes may synthesize.
const maxGridCells = 1 << 20

var markerColor = color.RGBA{R: 40, G: 180, B: 70, A: 255}

// errBadRequest marks client errors that have no package sentinel.
var errBadRequest = errors.New("bad request")

type createMazeBody struct {
	WidthPx  int    `json:"width_px" binding:"omitempty,min=1,max=20000"`
	HeightPx int    `json:"height_px" binding:"omitempty,min=1,max=20000"`
	CellSize int    `json:"cell_size" binding:"omitempty,min=1"`
	Walls    *int   `json:"walls" binding:"omitempty,min=0"`
	Seed     *int64 `json:"seed"`
}

type solution struct {
	Found   bool            `json:"found"`
	Steps   int             `json:"steps"`
	Visited int             `json:"visited"`
	Path    []grid.Position `json:"path"`
}

func newSolution(r *solver.Result) solution {
	return solution{Found: r.Found, Steps: r.Steps(), Visited: r.Visited, Path: r.Path}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, render.ErrImageTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest),
		errors.Is(err, synth.ErrInvalidRequest),
		errors.Is(err, synth.ErrOptionViolation),
		errors.Is(err, classify.ErrImageTooSmall),
		errors.Is(err, classify.ErrOptionViolation):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (s *Server) createMaze(c *gin.Context) {
	var body createMazeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	req := s.cfg.Defaults
	if body.WidthPx > 0 {
		req.WidthPx = body.WidthPx
	}
	if body.HeightPx > 0 {
		req.HeightPx = body.HeightPx
	}
	if body.CellSize > 0 {
		req.CellSize = body.CellSize
	}
	if body.Walls != nil {
		req.Walls = *body.Walls
	}
	if w, h := grid.Dimensions(req.WidthPx, req.HeightPx, req.CellSize); w*h > maxGridCells {
		s.fail(c, fmt.Errorf("%w: %dx%d grid exceeds %d cells", errBadRequest, w, h, maxGridCells))
		return
	}
	seed := s.now().UnixNano()
	if body.Seed != nil {
		seed = *body.Seed
	}

	start := time.Now()
	m, err := synth.FromSeed(seed, req, s.cfg.SynthOptions...)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.cfg.Metrics.ObserveMaze(m, time.Since(start))

	rec, err := s.cfg.Store.Put(c.Request.Context(), m)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) listMazes(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.fail(c, fmt.Errorf("%w: limit must be a non-negative integer", errBadRequest))
			return
		}
		limit = n
	}
	recs, err := s.cfg.Store.List(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mazes": recs, "count": len(recs)})
}

func (s *Server) record(c *gin.Context) (*store.Record, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.fail(c, fmt.Errorf("%w: invalid maze id %q", errBadRequest, c.Param("id")))
		return nil, false
	}
	rec, err := s.cfg.Store.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	return rec, true
}

func (s *Server) getMaze(c *gin.Context) {
	if rec, ok := s.record(c); ok {
		c.JSON(http.StatusOK, rec)
	}
}

func (s *Server) deleteMaze(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.fail(c, fmt.Errorf("%w: invalid maze id %q", errBadRequest, c.Param("id")))
		return
	}
	if err := s.cfg.Store.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) mazeImage(c *gin.Context) {
	rec, ok := s.record(c)
	if !ok {
		return
	}
	img, err := render.Rasterize(rec.Grid, rec.CellSize, s.cfg.RenderOptions...)
	if err != nil {
		s.fail(c, err)
		return
	}
	if c.Query("markers") != "false" {
		cell := img.Bounds().Dx() / rec.Grid.Width
		if err := render.Markers(img, rec.Grid, render.CellMapper{Size: cell}, rec.Entrance, rec.Exit, markerColor); err != nil {
			s.fail(c, err)
			return
		}
	}
	s.png(c, img)
}

func (s *Server) mazeSolution(c *gin.Context) {
	rec, ok := s.record(c)
	if !ok {
		return
	}
	res, err := solver.Solve(rec.Grid, rec.Entrance, rec.Exit)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.cfg.Metrics.ObserveSolve(res.Found)
	c.JSON(http.StatusOK, newSolution(res))
}

func (s *Server) solveImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)
	fh, err := c.FormFile("image")
	if err != nil {
		s.fail(c, fmt.Errorf("%w: multipart field \"image\": %v", errBadRequest, err))
		return
	}
	f, err := fh.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()
	img, err := render.DecodePNGLimit(f, s.cfg.MaxUploadPixels)
	if errors.Is(err, render.ErrImageTooLarge) {
		s.fail(c, err)
		return
	}
	if err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	cls, err := classify.Classify(img, s.cfg.ClassifyOptions...)
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := solver.Solve(cls.Grid, cls.Entrance, cls.Exit)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.cfg.Metrics.ObserveSolve(res.Found)

	if c.Query("format") == "png" {
		out, err := render.Overlay(img, res.Path, cls.Layout, render.DefaultPalette().Route)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.png(c, out)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"solution": newSolution(res),
		"entrance": cls.Entrance,
		"exit":     cls.Exit,
		"grid":     cls.Grid,
	})
}

func (s *Server) png(c *gin.Context, img image.Image) {
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
