package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/maze"
)

// Theme colors the maze.
type Theme struct {
	Wall tcell.Color
	Path tcell.Color
}

// DefaultTheme is used when no preset supplies colors.
var DefaultTheme = Theme{
	Wall: tcell.ColorDarkGray,
	Path: tcell.ColorBlack,
}

// Renderer draws a maze and its walker.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the grid, the walker and a status line below the maze.
func (r *Renderer) Render(grid *maze.Grid, walker *entity.Walker, status string) {
	r.screen.Clear()

	for y := range grid.Cells {
		for x := range grid.Cells[y] {
			cell := &grid.Cells[y][x]
			r.screen.SetContent(x, y, cellRune(cell), r.cellStyle(cell))
		}
	}

	walkerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Background(r.theme.Path).
		Bold(true)
	r.screen.SetContent(walker.X, walker.Y, walker.Symbol, walkerStyle)

	r.renderText(status, grid.Height+1)
	r.screen.Show()
}

// Walls are drawn as solid blocks; Cell.Rune's ASCII form is for plain text.
func cellRune(cell *maze.Cell) rune {
	if cell.IsWall() && !cell.IsStart && !cell.IsFinish {
		return '█'
	}
	return cell.Rune()
}

func (r *Renderer) cellStyle(cell *maze.Cell) tcell.Style {
	switch {
	case cell.IsFinish:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(r.theme.Path).Bold(true)
	case cell.IsStart:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(r.theme.Path)
	case cell.IsWall():
		return tcell.StyleDefault.Foreground(r.theme.Wall)
	default:
		return tcell.StyleDefault.Background(r.theme.Path)
	}
}

func (r *Renderer) renderText(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
