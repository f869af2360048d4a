// Package maze provides grid-based maze generation using an iterative
// recursive backtracker.
package maze

// CellType distinguishes cells that block passage from walkable ones.
type CellType int

const (
	// Wall blocks passage until carved.
	Wall CellType = iota
	// Path is part of the walkable area.
	Path
)

// String returns a human-readable cell type.
func (t CellType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// VisitState records whether the generator has reached a cell.
type VisitState int

const (
	// Unvisited cells are still waiting to be reached.
	Unvisited VisitState = iota
	// Visited cells never revert to Unvisited.
	Visited
)

// Position is a grid coordinate. X is the column, Y is the row.
type Position struct {
	X, Y int
}

// In returns true if the position lies within [0, width) x [0, height).
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Add returns the position offset by dx, dy.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cell is a single square of the grid.
type Cell struct {
	X, Y     int
	Type     CellType
	Visit    VisitState
	IsStart  bool
	IsFinish bool
}

// Pos returns the cell's coordinate.
func (c *Cell) Pos() Position {
	return Position{X: c.X, Y: c.Y}
}

// IsWall returns true if the cell blocks passage.
func (c *Cell) IsWall() bool {
	return c.Type == Wall
}

// IsVisited returns true once the generator has reached the cell.
func (c *Cell) IsVisited() bool {
	return c.Visit == Visited
}

// pending reports whether the cell still has to be reached.
func (c *Cell) pending() bool {
	return !c.IsWall() && !c.IsVisited()
}
