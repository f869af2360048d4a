package maze

// maxNeighbours bounds the candidate set: one per axis direction.
const maxNeighbours = 4

// directions lists step offsets in search order: down, right, up, left.
// The order is fixed so seeded runs reproduce the same maze.
var directions = [maxNeighbours]Position{
	{X: 0, Y: Step},
	{X: Step, Y: 0},
	{X: 0, Y: -Step},
	{X: -Step, Y: 0},
}

// Neighbours returns the cells one step away from c that are on the grid,
// not walls and not yet visited.
func Neighbours(g *Grid, c *Cell) []*Cell {
	found := make([]*Cell, 0, maxNeighbours)
	for _, d := range directions {
		candidate := g.At(c.Pos().Add(d.X, d.Y))
		if candidate == nil {
			continue
		}
		if candidate.pending() {
			found = append(found, candidate)
		}
	}
	return found
}
