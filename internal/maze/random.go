package maze

// RandomSource is the random stream that drives generation. *rand.Rand
// satisfies it; tests pass a seeded one for reproducible mazes.
type RandomSource interface {
	// Intn returns a value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// pickRandom returns one element of cells chosen uniformly. The choice
// depends only on the next draw and the order of cells. cells must not be
// empty.
func pickRandom(rng RandomSource, cells []*Cell) *Cell {
	return cells[rng.Intn(len(cells))]
}
