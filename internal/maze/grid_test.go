package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridLayout(t *testing.T) {
	g := NewGrid(5, 5)
	require.NoError(t, g.Validate())

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := g.At(Position{X: x, Y: y})
			wantPath := x%2 == 0 && y%2 == 0
			assert.Equal(t, wantPath, !cell.IsWall(), "cell (%d,%d)", x, y)
			assert.Equal(t, x, cell.X)
			assert.Equal(t, y, cell.Y)
		}
	}

	start, err := g.StartCell()
	require.NoError(t, err)
	assert.Equal(t, Position{X: 0, Y: 0}, start.Pos())
	assert.False(t, start.IsVisited())
	assert.Equal(t, 9, CountUnvisited(g))
}

func TestNewGridFromRows(t *testing.T) {
	g, err := NewGridFromRows([]string{
		"S.F",
		"#.#",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.True(t, g.At(Position{X: 0, Y: 0}).IsStart)
	assert.True(t, g.At(Position{X: 2, Y: 0}).IsFinish)
	assert.True(t, g.At(Position{X: 0, Y: 1}).IsWall())
	assert.Equal(t, "S F\n# #\n", g.String())
}

func TestNewGridFromRowsErrors(t *testing.T) {
	_, err := NewGridFromRows([]string{"S..", "#."})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewGridFromRows([]string{"S.x"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *Grid)
	}{
		{"width mismatch", func(g *Grid) { g.Width = 7 }},
		{"height mismatch", func(g *Grid) { g.Height = 3 }},
		{"ragged row", func(g *Grid) { g.Cells[2] = g.Cells[2][:4] }},
		{"zero size", func(g *Grid) { g.Width, g.Height, g.Cells = 0, 0, nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(5, 5)
			tt.mutate(g)
			assert.ErrorIs(t, g.Validate(), ErrInvalidDimensions)
		})
	}
}

func TestStartCell(t *testing.T) {
	g, err := NewGridFromRows([]string{"...", "..."})
	require.NoError(t, err)
	_, err = g.StartCell()
	assert.ErrorIs(t, err, ErrMissingStartCell)

	g, err = NewGridFromRows([]string{"S.S"})
	require.NoError(t, err)
	_, err = g.StartCell()
	assert.ErrorIs(t, err, ErrDuplicateStartCell)
}

func TestAtOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	assert.Nil(t, g.At(Position{X: -1, Y: 0}))
	assert.Nil(t, g.At(Position{X: 0, Y: 3}))
	assert.False(t, g.IsPassable(3, 0))
	assert.True(t, g.IsPassable(2, 2))
	assert.False(t, g.IsPassable(1, 1))
}

func TestClone(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.Clone()
	c.Cells[1][1].Type = Path
	assert.True(t, g.Cells[1][1].IsWall(), "clone must not share cells")
}
