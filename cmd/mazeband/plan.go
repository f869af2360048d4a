package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazeband/internal/config"
	"github.com/samdwyer/mazeband/internal/game"
	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/presets"
	"github.com/samdwyer/mazeband/internal/ui"
)

// plan is the resolved recipe for every maze of a session.
type plan struct {
	width, height int
	opts          maze.Options
	theme         ui.Theme
}

// newPlan merges the configuration with its preset, if any. Explicit start
// and finish coordinates win over the preset's.
func newPlan(cfg config.Config, registry *presets.Registry) (plan, error) {
	p := plan{
		width:  cfg.Width,
		height: cfg.Height,
		opts:   cfg.Options(),
		theme:  ui.DefaultTheme,
	}

	if cfg.Preset == "" {
		return p, nil
	}

	preset := registry.GetByID(cfg.Preset)
	if preset == nil {
		return p, fmt.Errorf("unknown preset %q (have %v)", cfg.Preset, registry.IDs())
	}

	p.width, p.height = preset.Width, preset.Height
	if p.opts.CustomStart == nil {
		p.opts.CustomStart = preset.StartPosition()
	}
	if p.opts.CustomFinish == nil {
		p.opts.CustomFinish = preset.FinishPosition()
	}
	p.theme = ui.Theme{
		Wall: preset.WallTCellColor(),
		Path: preset.PathTCellColor(),
	}
	return p, nil
}

// source returns a generator of fresh mazes sharing one random stream.
func (p plan) source(rng maze.RandomSource, logger logrus.FieldLogger) game.MazeSource {
	return func(ctx context.Context) (*maze.Grid, error) {
		gen := maze.NewGenerator(rng, p.opts)
		grid, err := gen.Generate(ctx, maze.NewGrid(p.width, p.height))
		if err != nil {
			return nil, err
		}

		stats := gen.Stats()
		components := maze.Components(grid)
		entry := logger.WithFields(logrus.Fields{
			"run_id":      stats.RunID,
			"width":       grid.Width,
			"height":      grid.Height,
			"advances":    stats.Advances,
			"backtracks":  stats.Backtracks,
			"relocations": stats.Relocations,
			"components":  components,
		})
		if components > 1 {
			entry.Warn("maze generated with disconnected regions")
		} else {
			entry.Info("maze generated")
		}
		return grid, nil
	}
}
