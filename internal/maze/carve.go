package maze

import "github.com/pkg/errors"

// Carve opens the wall between src and dst, which must be exactly Step
// apart along one axis. Only the cell between them is touched: it becomes
// a visited path.
func Carve(g *Grid, src, dst *Cell) error {
	_, err := carve(g, src, dst)
	return err
}

// carve is Carve that also reports whether the opened cell was a path still
// waiting to be visited, so the caller can keep its unvisited count exact.
func carve(g *Grid, src, dst *Cell) (wasPending bool, err error) {
	dx := dst.X - src.X
	dy := dst.Y - src.Y

	aligned := (abs(dx) == Step && dy == 0) || (abs(dy) == Step && dx == 0)
	if !aligned {
		return false, errors.Wrapf(ErrInvalidStepGeometry, "(%d,%d) -> (%d,%d)", src.X, src.Y, dst.X, dst.Y)
	}

	between := g.At(src.Pos().Add(sign(dx), sign(dy)))
	if between == nil {
		return false, errors.Wrapf(ErrOutOfBounds, "wall between (%d,%d) and (%d,%d)", src.X, src.Y, dst.X, dst.Y)
	}

	wasPending = between.pending()
	between.Type = Path
	between.Visit = Visited
	return wasPending, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
