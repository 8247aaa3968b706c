package renderer

import (
	"image/color"

	"mazegen/pkg/engine/world"
)

// Palette maps each cell kind to a fixed colour
type Palette struct {
	Wall     color.RGBA
	Path     color.RGBA
	Start    color.RGBA
	End      color.RGBA
	Solution color.RGBA // used only for overlay cells
}

// DefaultPalette returns the standard maze colours
func DefaultPalette() Palette {
	return Palette{
		Wall:     color.RGBA{34, 40, 49, 255},    // Dark slate
		Path:     color.RGBA{233, 227, 223, 255}, // Off white
		Start:    color.RGBA{70, 92, 136, 255},   // Blue
		End:      color.RGBA{225, 122, 48, 255},  // Orange
		Solution: color.RGBA{120, 180, 120, 255}, // Muted green
	}
}

// ColorFor returns the colour of a cell kind
func (p Palette) ColorFor(kind world.Kind) color.RGBA {
	switch kind {
	case world.Path:
		return p.Path
	case world.Start:
		return p.Start
	case world.End:
		return p.End
	default:
		return p.Wall
	}
}
