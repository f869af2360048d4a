package maze

import "github.com/pkg/errors"

// Precondition violations reported by Generate and Carve. Callers match them
// with errors.Is; the returned errors carry the offending values.
var (
	ErrInvalidDimensions   = errors.New("grid shape does not match width and height")
	ErrMissingStartCell    = errors.New("no start cell")
	ErrDuplicateStartCell  = errors.New("more than one start cell")
	ErrOutOfBounds         = errors.New("coordinate out of bounds")
	ErrInvalidStepGeometry = errors.New("cells are not one step apart on exactly one axis")
)
