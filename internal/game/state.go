// Package game runs the interactive maze walker.
package game

// State represents the current game state.
type State int

const (
	// StateWalking is the default mode: the walker moves toward the finish.
	StateWalking State = iota
	// StateSolved means the walker reached a finish cell.
	StateSolved
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWalking:
		return "walking"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}
