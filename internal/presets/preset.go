package presets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/maze"
)

// Preset is a named maze size with optional start and finish coordinates.
type Preset struct {
	ID        string  `json:"id"`               // Unique identifier (e.g., "classic")
	Name      string  `json:"name"`             // Display name
	Width     int     `json:"width"`            // Grid columns, walls included
	Height    int     `json:"height"`           // Grid rows, walls included
	Start     *[2]int `json:"start,omitempty"`  // Custom start as [x, y]
	Finish    *[2]int `json:"finish,omitempty"` // Custom finish as [x, y]
	WallColor string  `json:"wallColor"`        // Hex color for walls
	PathColor string  `json:"pathColor"`        // Hex color for paths
}

// StartPosition returns the custom start, or nil to keep the grid's own.
func (p *Preset) StartPosition() *maze.Position {
	return toPosition(p.Start)
}

// FinishPosition returns the custom finish, or nil to finish where the
// traversal ends.
func (p *Preset) FinishPosition() *maze.Position {
	return toPosition(p.Finish)
}

// WallTCellColor returns the wall color, falling back to dark gray.
func (p *Preset) WallTCellColor() tcell.Color {
	return colorOr(p.WallColor, tcell.ColorDarkGray)
}

// PathTCellColor returns the path color, falling back to black.
func (p *Preset) PathTCellColor() tcell.Color {
	return colorOr(p.PathColor, tcell.ColorBlack)
}

func toPosition(xy *[2]int) *maze.Position {
	if xy == nil {
		return nil
	}
	return &maze.Position{X: xy[0], Y: xy[1]}
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// presetsFile represents the structure of presets.json.
type presetsFile struct {
	Presets []Preset `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]Preset, error) {
	file, err := Load[presetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}
