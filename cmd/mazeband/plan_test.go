package main

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/config"
	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/presets"
	"github.com/samdwyer/mazeband/internal/ui"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewPlanWithoutPreset(t *testing.T) {
	cfg := config.Config{Width: 11, Height: 7, BacktrackMode: maze.BacktrackBranch}
	p, err := newPlan(cfg, presets.MustLoadRegistry())
	require.NoError(t, err)
	assert.Equal(t, 11, p.width)
	assert.Equal(t, 7, p.height)
	assert.Equal(t, ui.DefaultTheme, p.theme)
	assert.Equal(t, maze.BacktrackBranch, p.opts.BacktrackMode)
}

func TestNewPlanPreset(t *testing.T) {
	finish := maze.Position{X: 2, Y: 2}
	cfg := config.Config{Width: 5, Height: 5, Preset: "corridor", Finish: &finish}

	p, err := newPlan(cfg, presets.MustLoadRegistry())
	require.NoError(t, err)
	assert.Equal(t, 61, p.width)
	assert.Equal(t, 9, p.height)
	assert.Equal(t, &maze.Position{X: 0, Y: 4}, p.opts.CustomStart)
	assert.Equal(t, &finish, p.opts.CustomFinish, "explicit finish wins over preset")
}

func TestNewPlanUnknownPreset(t *testing.T) {
	_, err := newPlan(config.Config{Preset: "nope"}, presets.MustLoadRegistry())
	assert.Error(t, err)
}

func TestPlanSourceGeneratesFreshMazes(t *testing.T) {
	p := plan{width: 21, height: 11, opts: maze.Options{BacktrackMode: maze.BacktrackBranch}}
	source := p.source(rand.New(rand.NewSource(9)), quietLogger())

	first, err := source(context.Background())
	require.NoError(t, err)
	second, err := source(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Zero(t, maze.CountUnvisited(first))
	assert.True(t, maze.IsConnected(second))
}

func TestPlanSourceReportsErrors(t *testing.T) {
	p := plan{width: 5, height: 5, opts: maze.Options{CustomStart: &maze.Position{X: 9, Y: 9}}}
	_, err := p.source(rand.New(rand.NewSource(1)), quietLogger())(context.Background())
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
}
