package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarveOpensOnlyTheMidpoint(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Position
		mid      Position
	}{
		{"down", Position{X: 2, Y: 2}, Position{X: 2, Y: 4}, Position{X: 2, Y: 3}},
		{"right", Position{X: 2, Y: 2}, Position{X: 4, Y: 2}, Position{X: 3, Y: 2}},
		{"up", Position{X: 2, Y: 2}, Position{X: 2, Y: 0}, Position{X: 2, Y: 1}},
		{"left", Position{X: 2, Y: 2}, Position{X: 0, Y: 2}, Position{X: 1, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(5, 5)
			before := g.Clone()

			require.NoError(t, Carve(g, g.At(tt.src), g.At(tt.dst)))

			mid := g.At(tt.mid)
			assert.Equal(t, Path, mid.Type)
			assert.True(t, mid.IsVisited())

			for y := range g.Cells {
				for x := range g.Cells[y] {
					if (Position{X: x, Y: y}) == tt.mid {
						continue
					}
					assert.Equal(t, before.Cells[y][x], g.Cells[y][x], "cell (%d,%d) changed", x, y)
				}
			}
		})
	}
}

func TestCarveRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Position
	}{
		{"diagonal", Position{X: 0, Y: 0}, Position{X: 2, Y: 2}},
		{"adjacent", Position{X: 0, Y: 0}, Position{X: 1, Y: 0}},
		{"too far", Position{X: 0, Y: 0}, Position{X: 4, Y: 0}},
		{"same cell", Position{X: 2, Y: 2}, Position{X: 2, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(5, 5)
			before := g.Clone()
			err := Carve(g, g.At(tt.src), g.At(tt.dst))
			assert.ErrorIs(t, err, ErrInvalidStepGeometry)
			assert.Equal(t, before.Cells, g.Cells)
		})
	}
}

func TestCountAndFirstUnvisitedAgree(t *testing.T) {
	g := NewGrid(5, 5)
	for CountUnvisited(g) > 0 {
		first := FirstUnvisited(g)
		require.NotNil(t, first)
		assert.Equal(t, first, UnvisitedCells(g)[0])
		first.Visit = Visited
	}
	assert.Nil(t, FirstUnvisited(g))
	assert.Empty(t, UnvisitedCells(g))
}
