// Package config loads mazeforge settings from a YAML file, a .env file and
// MAZEFORGE_* environment variables, in that order of precedence (later
// wins), and validates the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAZEFORGE_"

// Config is the full application configuration.
type Config struct {
	Generator Generator `yaml:"generator"`
	Solver    Solver    `yaml:"solver"`
	Render    Render    `yaml:"render"`
	Server    Server    `yaml:"server"`
	Store     Store     `yaml:"store"`
	Log       Log       `yaml:"log"`
}

// Generator holds the default maze request and pipeline tuning.
type Generator struct {
	WidthPx  int   `yaml:"width_px" validate:"gt=0"`
	HeightPx int   `yaml:"height_px" validate:"gt=0"`
	CellSize int   `yaml:"cell_size" validate:"gte=1"`
	Walls    int   `yaml:"walls" validate:"gte=0"`
	Seed     int64 `yaml:"seed"`

	SmoothingThreshold  float64 `yaml:"smoothing_threshold" validate:"gte=0,lte=1"`
	SmoothingIterations int     `yaml:"smoothing_iterations" validate:"gte=0"`
	GrowthProbability   float64 `yaml:"growth_probability" validate:"gte=0,lte=1"`
	GapStoneProbability float64 `yaml:"gap_stone_probability" validate:"gte=0,lte=1"`
	// Repair is "staircase" or "minimal".
	Repair string `yaml:"repair" validate:"oneof=staircase minimal"`
}

// Solver holds classifier settings.
type Solver struct {
	GridSize  int `yaml:"grid_size" validate:"gte=3"`
	PortalRow int `yaml:"portal_row" validate:"gte=1"`
	// Strategy is "green" or "lab".
	Strategy string `yaml:"strategy" validate:"oneof=green lab"`
}

// Render holds raster settings.
type Render struct {
	MaxSide      int `yaml:"max_side" validate:"gte=1"`
	Noise        int `yaml:"noise" validate:"gte=0"`
	OutlineWidth int `yaml:"outline_width" validate:"gte=0"`
}

// Server holds HTTP settings.
type Server struct {
	Addr    string `yaml:"addr" validate:"required"`
	GinMode string `yaml:"gin_mode" validate:"oneof=debug release test"`
	// MaxUploadBytes bounds the multipart body accepted by /solve.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" validate:"gt=0"`
	// MaxUploadPixels bounds the decoded width×height of a /solve upload.
	MaxUploadPixels int `yaml:"max_upload_pixels" validate:"gt=0"`
}

// Store holds persistence settings.
type Store struct {
	Dir      string `yaml:"dir" validate:"required_unless=InMemory true"`
	InMemory bool   `yaml:"in_memory"`
}

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=panic fatal error warn warning info debug trace"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration: a 1000×1000 px canvas with
// 40 px cells and 150 walls, a 17×17 classifier and an in-memory store.
func Default() *Config {
	return &Config{
		Generator: Generator{
			WidthPx:             1000,
			HeightPx:            1000,
			CellSize:            40,
			Walls:               150,
			SmoothingThreshold:  0.3,
			SmoothingIterations: 2,
			GrowthProbability:   0.3,
			GapStoneProbability: 0.15,
			Repair:              "staircase",
		},
		Solver: Solver{GridSize: 17, PortalRow: 8, Strategy: "green"},
		Render: Render{MaxSide: 16000, OutlineWidth: 2},
		Server: Server{Addr: ":8080", GinMode: "release", MaxUploadBytes: 32 << 20, MaxUploadPixels: 1 << 26},
		Store:  Store{InMemory: true},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load builds a Config from Default, the YAML file at path (skipped when
// path is empty), the given .env files (".env" when none are given; a
// missing .env is not an error) and MAZEFORGE_* variables.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and the portal row range.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Solver.PortalRow > c.Solver.GridSize-2 {
		return fmt.Errorf("%w: portal_row %d outside 1..%d", ErrInvalid, c.Solver.PortalRow, c.Solver.GridSize-2)
	}
	return nil
}

func (c *Config) applyEnv() error {
	g, s, r := &c.Generator, &c.Solver, &c.Render
	steps := []error{
		envInt("WIDTH_PX", &g.WidthPx),
		envInt("HEIGHT_PX", &g.HeightPx),
		envInt("CELL_SIZE", &g.CellSize),
		envInt("WALLS", &g.Walls),
		envInt64("SEED", &g.Seed),
		envString("REPAIR", &g.Repair),
		envInt("GRID_SIZE", &s.GridSize),
		envInt("PORTAL_ROW", &s.PortalRow),
		envString("STRATEGY", &s.Strategy),
		envInt("MAX_SIDE", &r.MaxSide),
		envInt("NOISE", &r.Noise),
		envInt("OUTLINE_WIDTH", &r.OutlineWidth),
		envString("ADDR", &c.Server.Addr),
		envString("GIN_MODE", &c.Server.GinMode),
		envString("STORE_DIR", &c.Store.Dir),
		envBool("STORE_IN_MEMORY", &c.Store.InMemory),
		envString("LOG_LEVEL", &c.Log.Level),
		envString("LOG_FORMAT", &c.Log.Format),
	}
	return errors.Join(steps...)
}

func envString(key string, dst *string) error {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok {
		*dst = v
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalid, EnvPrefix, key, err)
	}
	*dst = n
	return nil
}

func envInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalid, EnvPrefix, key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be a boolean: %v", ErrInvalid, EnvPrefix, key, err)
	}
	*dst = b
	return nil
}
