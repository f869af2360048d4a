package maze

// CountUnvisited returns the number of non-wall cells not yet visited.
func CountUnvisited(g *Grid) int {
	count := 0
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x].pending() {
				count++
			}
		}
	}
	return count
}

// UnvisitedCells returns every non-wall unvisited cell in row-major order.
func UnvisitedCells(g *Grid) []*Cell {
	var cells []*Cell
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x].pending() {
				cells = append(cells, &g.Cells[y][x])
			}
		}
	}
	return cells
}

// FirstUnvisited returns the first non-wall unvisited cell in row-major
// order, or nil if every such cell has been visited.
func FirstUnvisited(g *Grid) *Cell {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x].pending() {
				return &g.Cells[y][x]
			}
		}
	}
	return nil
}
