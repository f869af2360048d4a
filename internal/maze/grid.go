package maze

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// Step is the stride between two connectable path cells. Exactly one
	// wall cell lies between them.
	Step = 2

	// Default grid dimensions (10x10 logical cells).
	DefaultWidth  = 21
	DefaultHeight = 21
)

// Grid is a rectangular array of cells indexed Cells[y][x].
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// NewGrid allocates a grid in the alternating layout: cells whose x and y
// are both multiples of Step are unvisited paths, all others are walls.
// The cell at (0,0) is the start. Every path cell starts unvisited; the
// generator visits whichever cell it begins from.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cell := Cell{X: x, Y: y, Type: Wall}
			if x%Step == 0 && y%Step == 0 {
				cell.Type = Path
			}
			cells[y][x] = cell
		}
	}

	if width > 0 && height > 0 {
		cells[0][0].IsStart = true
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// NewGridFromRows builds a grid from a drawn layout. '#' is a wall, '.' a
// path, 'S' the start and 'F' a finish. All cells start unvisited.
func NewGridFromRows(rows []string) (*Grid, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	cells := make([][]Cell, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidDimensions, "row %d has %d columns, want %d", y, len(row), width)
		}
		cells[y] = make([]Cell, width)
		for x, ch := range []byte(row) {
			cell := Cell{X: x, Y: y, Type: Path}
			switch ch {
			case '#':
				cell.Type = Wall
			case '.':
			case 'S':
				cell.IsStart = true
			case 'F':
				cell.IsFinish = true
			default:
				return nil, errors.Errorf("unknown cell %q at (%d,%d)", ch, x, y)
			}
			cells[y][x] = cell
		}
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// Validate checks that the cell array matches Width and Height.
func (g *Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", g.Width, g.Height)
	}
	if len(g.Cells) != g.Height {
		return errors.Wrapf(ErrInvalidDimensions, "%d rows, want %d", len(g.Cells), g.Height)
	}
	for y, row := range g.Cells {
		if len(row) != g.Width {
			return errors.Wrapf(ErrInvalidDimensions, "row %d has %d columns, want %d", y, len(row), g.Width)
		}
	}
	return nil
}

// In returns true if the position lies on the grid.
func (g *Grid) In(p Position) bool {
	return p.In(g.Width, g.Height)
}

// At returns the cell at the given position, or nil if it is off the grid.
func (g *Grid) At(p Position) *Cell {
	if !g.In(p) {
		return nil
	}
	return &g.Cells[p.Y][p.X]
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	cell := g.At(Position{X: x, Y: y})
	return cell != nil && !cell.IsWall()
}

// StartCell returns the single cell flagged as the start.
func (g *Grid) StartCell() (*Cell, error) {
	var start *Cell
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if !g.Cells[y][x].IsStart {
				continue
			}
			if start != nil {
				return nil, errors.Wrapf(ErrDuplicateStartCell, "(%d,%d) and (%d,%d)", start.X, start.Y, x, y)
			}
			start = &g.Cells[y][x]
		}
	}
	if start == nil {
		return nil, ErrMissingStartCell
	}
	return start, nil
}

// FinishCells returns every cell flagged as a finish, in row-major order.
func (g *Grid) FinishCells() []*Cell {
	var finishes []*Cell
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x].IsFinish {
				finishes = append(finishes, &g.Cells[y][x])
			}
		}
	}
	return finishes
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, len(g.Cells))
	for y := range g.Cells {
		cells[y] = append([]Cell(nil), g.Cells[y]...)
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Rune returns the display character for a cell.
func (c *Cell) Rune() rune {
	switch {
	case c.IsStart:
		return 'S'
	case c.IsFinish:
		return 'F'
	case c.IsWall():
		return '#'
	default:
		return ' '
	}
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := range g.Cells {
		for x := range g.Cells[y] {
			sb.WriteRune(g.Cells[y][x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
