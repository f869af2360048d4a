// Package config reads mazeband settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazeband/internal/maze"
)

// Environment variable names.
const (
	EnvWidth        = "MAZEBAND_WIDTH"
	EnvHeight       = "MAZEBAND_HEIGHT"
	EnvSeed         = "MAZEBAND_SEED"
	EnvPreset       = "MAZEBAND_PRESET"
	EnvStart        = "MAZEBAND_START"
	EnvFinish       = "MAZEBAND_FINISH"
	EnvStartMode    = "MAZEBAND_START_MODE"
	EnvFinishMode   = "MAZEBAND_FINISH_MODE"
	EnvBacktrack    = "MAZEBAND_BACKTRACK"
	EnvHeadless     = "MAZEBAND_HEADLESS"
	EnvHoneycombKey = "HONEYCOMB_MAZEBAND_API_KEY"
	EnvHoneycombSet = "HONEYCOMB_MAZEBAND_DATASET"
)

// Config holds mazeband configuration options.
type Config struct {
	Width  int
	Height int

	// Seed for random number generation. A seed of 0 means a time-based
	// seed is chosen at startup.
	Seed int64

	// Preset names an embedded layout. When set it supplies the size and
	// any custom start or finish not given explicitly.
	Preset string

	Start  *maze.Position
	Finish *maze.Position

	StartMode     maze.StartMode
	FinishMode    maze.FinishMode
	BacktrackMode maze.BacktrackMode

	// Headless prints the maze to stdout instead of opening the terminal UI.
	Headless bool

	HoneycombAPIKey  string
	HoneycombDataset string
}

// LoadDotEnv loads a .env file from the working directory if one exists.
func LoadDotEnv() error {
	return godotenv.Load()
}

// Load builds a Config from the environment, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Width:            maze.DefaultWidth,
		Height:           maze.DefaultHeight,
		StartMode:        maze.StartRelocateOrigin,
		FinishMode:       maze.FinishExclusive,
		BacktrackMode:    maze.BacktrackBranch,
		HoneycombDataset: "mazeband",
	}

	var err error
	if cfg.Width, err = intEnv(EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = intEnv(EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("maze size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("%s must be an integer: %w", EnvSeed, err)
		}
	}

	cfg.Preset = os.Getenv(EnvPreset)

	if cfg.Start, err = positionEnv(EnvStart); err != nil {
		return cfg, err
	}
	if cfg.Finish, err = positionEnv(EnvFinish); err != nil {
		return cfg, err
	}

	if v := os.Getenv(EnvStartMode); v != "" {
		if cfg.StartMode, err = ParseStartMode(v); err != nil {
			return cfg, err
		}
	}
	if v := os.Getenv(EnvFinishMode); v != "" {
		if cfg.FinishMode, err = ParseFinishMode(v); err != nil {
			return cfg, err
		}
	}
	if v := os.Getenv(EnvBacktrack); v != "" {
		if cfg.BacktrackMode, err = ParseBacktrackMode(v); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv(EnvHeadless); v != "" {
		if cfg.Headless, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("%s must be a boolean: %w", EnvHeadless, err)
		}
	}

	cfg.HoneycombAPIKey = os.Getenv(EnvHoneycombKey)
	if v := os.Getenv(EnvHoneycombSet); v != "" {
		cfg.HoneycombDataset = v
	}

	return cfg, nil
}

// Options converts the configuration into generator options.
func (c Config) Options() maze.Options {
	return maze.Options{
		CustomStart:   c.Start,
		CustomFinish:  c.Finish,
		StartMode:     c.StartMode,
		FinishMode:    c.FinishMode,
		BacktrackMode: c.BacktrackMode,
	}
}

// ParseStartMode accepts "flag" or "origin".
func ParseStartMode(s string) (maze.StartMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flag":
		return maze.StartFlagOnly, nil
	case "origin":
		return maze.StartRelocateOrigin, nil
	}
	return 0, fmt.Errorf("unknown start mode %q (want flag or origin)", s)
}

// ParseFinishMode accepts "keep" or "exclusive".
func ParseFinishMode(s string) (maze.FinishMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep":
		return maze.FinishKeepExisting, nil
	case "exclusive":
		return maze.FinishExclusive, nil
	}
	return 0, fmt.Errorf("unknown finish mode %q (want keep or exclusive)", s)
}

// ParseBacktrackMode accepts "candidate" or "branch".
func ParseBacktrackMode(s string) (maze.BacktrackMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "candidate":
		return maze.BacktrackCandidate, nil
	case "branch":
		return maze.BacktrackBranch, nil
	}
	return 0, fmt.Errorf("unknown backtrack mode %q (want candidate or branch)", s)
}

// ParsePosition parses "x,y".
func ParsePosition(s string) (maze.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return maze.Position{}, fmt.Errorf("invalid position %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return maze.Position{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return maze.Position{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return maze.Position{X: x, Y: y}, nil
}

func intEnv(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func positionEnv(key string) (*maze.Position, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	p, err := ParsePosition(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &p, nil
}
