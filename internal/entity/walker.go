// Package entity provides things that move through a maze.
package entity

// Walker is the player token that explores a generated maze.
type Walker struct {
	X, Y   int  // Current position in the grid
	Symbol rune // Display symbol
	Steps  int  // Moves taken so far
}

// NewWalker creates a walker at the given position.
func NewWalker(x, y int) *Walker {
	return &Walker{
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// Move shifts the walker by the given delta and counts the step.
func (w *Walker) Move(dx, dy int) {
	w.X += dx
	w.Y += dy
	w.Steps++
}
