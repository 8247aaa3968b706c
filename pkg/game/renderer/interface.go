// Package renderer turns finished grids into output artefacts.
// Renderers are pure consumers: they never mutate the grid.
package renderer

import (
	"mazegen/pkg/engine/world"
)

// Renderer defines the interface for maze output backends.
// Implementations include the PNG rasterizer and the console dump.
type Renderer interface {
	// Name identifies the backend in logs
	Name() string

	// Render writes the finished grid to the backend's destination
	Render(grid *world.Grid) error
}

// Overlay marks extra cells to highlight on top of the grid, such as a solution path.
type Overlay []world.Position
