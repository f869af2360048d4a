// Package main is the entry point for mazeband.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazeband/internal/config"
	"github.com/samdwyer/mazeband/internal/game"
	"github.com/samdwyer/mazeband/internal/presets"
	"github.com/samdwyer/mazeband/internal/telemetry"
)

var log = logrus.New()

func main() {
	// Not fatal: variables may be set directly.
	if err := config.LoadDotEnv(); err != nil {
		log.WithError(err).Info(".env file not loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset)

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without traces")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	p, err := newPlan(cfg, presets.MustLoadRegistry())
	if err != nil {
		log.WithError(err).Fatal("cannot plan maze")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := p.source(rand.New(rand.NewSource(seed)), log.WithField("seed", seed))

	if cfg.Headless {
		grid, err := source(ctx)
		if err != nil {
			log.WithError(err).Fatal("generation failed")
		}
		fmt.Fprint(os.Stdout, grid.String())
		return
	}

	g, err := game.New(p.theme, source)
	if err != nil {
		log.WithError(err).Fatal("failed to open terminal")
	}
	if err := g.Run(ctx); err != nil {
		log.WithError(err).Fatal("game error")
	}
}
