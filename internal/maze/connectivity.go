package maze

import "github.com/spakin/disjoint"

// Components returns the number of connected regions formed by non-wall
// cells, joining orthogonally adjacent cells. Relocation during generation
// can leave more than one.
func Components(g *Grid) int {
	sets := make([][]*disjoint.Element, len(g.Cells))
	for y := range g.Cells {
		sets[y] = make([]*disjoint.Element, len(g.Cells[y]))
		for x := range g.Cells[y] {
			if !g.Cells[y][x].IsWall() {
				sets[y][x] = disjoint.NewElement()
			}
		}
	}

	// Joining right and down covers every adjacency once.
	for y := range sets {
		for x, e := range sets[y] {
			if e == nil {
				continue
			}
			if x+1 < len(sets[y]) && sets[y][x+1] != nil {
				disjoint.Union(e, sets[y][x+1])
			}
			if y+1 < len(sets) && x < len(sets[y+1]) && sets[y+1][x] != nil {
				disjoint.Union(e, sets[y+1][x])
			}
		}
	}

	roots := make(map[*disjoint.Element]struct{})
	for y := range sets {
		for _, e := range sets[y] {
			if e != nil {
				roots[e.Find()] = struct{}{}
			}
		}
	}
	return len(roots)
}

// IsConnected returns true if every non-wall cell can reach every other.
func IsConnected(g *Grid) bool {
	return Components(g) <= 1
}
