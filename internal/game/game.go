package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
)

// MazeSource produces a freshly generated maze.
type MazeSource func(ctx context.Context) (*maze.Grid, error)

// Game holds the interactive session state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	source   MazeSource
	grid     *maze.Grid
	walker   *entity.Walker
	state    State
	running  bool
	solved   int
}

// New opens the terminal and creates a game drawing mazes from source.
func New(theme ui.Theme, source MazeSource) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		source:   source,
		running:  true,
	}, nil
}

// Run executes the main loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if err := g.newMaze(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.grid, g.walker, g.status())
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// newMaze replaces the current maze and puts the walker on its start.
func (g *Game) newMaze(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.new_maze")
	defer span.End()

	grid, err := g.source(ctx)
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}

	startX, startY := 0, 0
	if start, err := grid.StartCell(); err == nil {
		startX, startY = start.X, start.Y
	} else {
		span.SetAttributes(attribute.String("warning", "no start cell, using origin"))
	}

	g.grid = grid
	g.walker = entity.NewWalker(startX, startY)
	g.state = StateWalking

	span.SetAttributes(
		attribute.Int("maze.width", grid.Width),
		attribute.Int("maze.height", grid.Height),
		attribute.Int("walker.start_x", startX),
		attribute.Int("walker.start_y", startY),
	)
	return nil
}

func (g *Game) handleInput(ctx context.Context) error {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'n', 'N':
			return g.newMaze(ctx)
		}
	}
	return nil
}

// tryMove moves the walker if the target is not a wall. Reaching a finish
// cell solves the maze; a solved maze ignores further moves.
func (g *Game) tryMove(ctx context.Context, dx, dy int) bool {
	if g.state == StateSolved {
		return false
	}

	x, y := g.walker.X+dx, g.walker.Y+dy
	if !g.grid.IsPassable(x, y) {
		return false
	}
	g.walker.Move(dx, dy)

	if g.grid.At(maze.Position{X: x, Y: y}).IsFinish {
		g.state = StateSolved
		g.solved++

		_, span := telemetry.Tracer("game").Start(ctx, "game.solved")
		span.SetAttributes(
			attribute.Int("walker.steps", g.walker.Steps),
			attribute.Int("game.solved", g.solved),
		)
		span.End()
	}
	return true
}

func (g *Game) status() string {
	if g.state == StateSolved {
		return fmt.Sprintf("Solved in %d steps! n: new maze  q: quit", g.walker.Steps)
	}
	return fmt.Sprintf("Steps: %d  arrows: move  n: new maze  q: quit", g.walker.Steps)
}

// Close cleans up terminal resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
