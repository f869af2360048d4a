package maze

import (
	"context"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazeband/internal/telemetry"
)

// StartMode selects what a custom start coordinate changes.
type StartMode int

const (
	// StartFlagOnly moves the start flag but keeps traversing from the
	// cell that was flagged before generation.
	StartFlagOnly StartMode = iota
	// StartRelocateOrigin moves the flag and begins traversal there.
	StartRelocateOrigin
)

// String returns the configuration name of the mode.
func (m StartMode) String() string {
	switch m {
	case StartFlagOnly:
		return "flag"
	case StartRelocateOrigin:
		return "origin"
	default:
		return "unknown"
	}
}

// FinishMode selects how the finish flag is placed.
type FinishMode int

const (
	// FinishKeepExisting sets the new finish without clearing finish
	// flags already present on the grid.
	FinishKeepExisting FinishMode = iota
	// FinishExclusive clears every other finish flag so exactly one remains.
	FinishExclusive
)

// String returns the configuration name of the mode.
func (m FinishMode) String() string {
	switch m {
	case FinishKeepExisting:
		return "keep"
	case FinishExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// BacktrackMode selects which cell is pushed when the traversal advances.
type BacktrackMode int

const (
	// BacktrackCandidate pushes the newly reached cell. A cell is examined
	// again only once after it is popped, so branches it still had can be
	// left for relocation, splitting the maze into several components.
	BacktrackCandidate BacktrackMode = iota
	// BacktrackBranch pushes the cell being left, so every branch point is
	// revisited until exhausted. On the alternating layout this yields a
	// single spanning tree.
	BacktrackBranch
)

// String returns the configuration name of the mode.
func (m BacktrackMode) String() string {
	switch m {
	case BacktrackCandidate:
		return "candidate"
	case BacktrackBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Options tune a single generation run. The zero value keeps the
// pre-marked start and finishes wherever the traversal ends.
type Options struct {
	CustomStart   *Position
	CustomFinish  *Position
	StartMode     StartMode
	FinishMode    FinishMode
	BacktrackMode BacktrackMode
}

// Stats counts the transitions taken during one run.
type Stats struct {
	RunID       string
	Advances    int
	Backtracks  int
	Relocations int
}

// Generator carves mazes with a stack-based depth-first traversal.
// A Generator is not safe for concurrent use; give each goroutine its own
// along with its own random source.
type Generator struct {
	rng   RandomSource
	opts  Options
	stats Stats
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng RandomSource, opts Options) *Generator {
	return &Generator{rng: rng, opts: opts}
}

// Stats returns the counters of the most recent run.
func (gen *Generator) Stats() Stats {
	return gen.stats
}

// Generate carves g in place with a fresh Generator and returns it.
func Generate(ctx context.Context, g *Grid, rng RandomSource, opts Options) (*Grid, error) {
	return NewGenerator(rng, opts).Generate(ctx, g)
}

// Generate carves passages through g until no unvisited path cell remains
// and marks a finish. The grid is mutated in place and returned. On error
// the grid keeps whatever was carved before the failure.
func (gen *Generator) Generate(ctx context.Context, g *Grid) (*Grid, error) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	gen.stats = Stats{RunID: uuid.NewString()}

	err := gen.run(g)

	span.SetAttributes(
		attribute.String("maze.run_id", gen.stats.RunID),
		attribute.Int("maze.width", g.Width),
		attribute.Int("maze.height", g.Height),
		attribute.String("maze.start_mode", gen.opts.StartMode.String()),
		attribute.String("maze.finish_mode", gen.opts.FinishMode.String()),
		attribute.String("maze.backtrack_mode", gen.opts.BacktrackMode.String()),
		attribute.Int("maze.advances", gen.stats.Advances),
		attribute.Int("maze.backtracks", gen.stats.Backtracks),
		attribute.Int("maze.relocations", gen.stats.Relocations),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("maze.components", Components(g)))
	}

	return g, err
}

func (gen *Generator) run(g *Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	start, err := g.StartCell()
	if err != nil {
		return err
	}
	if err := gen.checkBounds(g); err != nil {
		return err
	}

	current := start
	if p := gen.opts.CustomStart; p != nil {
		custom := g.At(*p)
		start.IsStart = false
		custom.IsStart = true
		if gen.opts.StartMode == StartRelocateOrigin {
			current = custom
		}
	}

	remaining := CountUnvisited(g) - markVisited(current)
	stack := arraystack.New()

	for remaining > 0 {
		if neighbours := Neighbours(g, current); len(neighbours) > 0 {
			next := pickRandom(gen.rng, neighbours)
			if gen.opts.BacktrackMode == BacktrackBranch {
				stack.Push(current)
			} else {
				stack.Push(next)
			}
			wasPending, err := carve(g, current, next)
			if err != nil {
				return err
			}
			if wasPending {
				remaining--
			}
			current = next
			remaining -= markVisited(current)
			gen.stats.Advances++
			continue
		}

		if top, ok := stack.Pop(); ok {
			current = top.(*Cell)
			gen.stats.Backtracks++
			continue
		}

		// Nothing reachable is left: resume from a cell no carved passage
		// can lead to. It roots a new, disconnected component.
		current = pickRandom(gen.rng, UnvisitedCells(g))
		remaining -= markVisited(current)
		gen.stats.Relocations++
	}

	gen.markFinish(g, current)
	return nil
}

func (gen *Generator) checkBounds(g *Grid) error {
	if p := gen.opts.CustomStart; p != nil && !g.In(*p) {
		return errors.Wrapf(ErrOutOfBounds, "custom start (%d,%d) on %dx%d grid", p.X, p.Y, g.Width, g.Height)
	}
	if p := gen.opts.CustomFinish; p != nil && !g.In(*p) {
		return errors.Wrapf(ErrOutOfBounds, "custom finish (%d,%d) on %dx%d grid", p.X, p.Y, g.Width, g.Height)
	}
	return nil
}

// markFinish flags the custom finish if one was given, otherwise the cell
// the traversal ended on.
func (gen *Generator) markFinish(g *Grid, last *Cell) {
	if gen.opts.FinishMode == FinishExclusive {
		for _, c := range g.FinishCells() {
			c.IsFinish = false
		}
	}

	if p := gen.opts.CustomFinish; p != nil {
		g.At(*p).IsFinish = true
		return
	}
	last.IsFinish = true
}

// markVisited flags c as visited and returns 1 if that removed it from the
// unvisited count.
func markVisited(c *Cell) int {
	wasPending := c.pending()
	c.Visit = Visited
	if wasPending {
		return 1
	}
	return 0
}
