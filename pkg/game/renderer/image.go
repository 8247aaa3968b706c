package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"mazegen/pkg/engine/world"
)

// DefaultCellSize is the edge length in pixels of one grid cell
const DefaultCellSize = 10

// DefaultImageFilename is where the PNG renderer writes by default
const DefaultImageFilename = "maze.png"

// ImageRenderer rasterizes a grid into a PNG file
type ImageRenderer struct {
	Path     string
	CellSize int
	Palette  Palette
	Overlay  Overlay
}

// NewImageRenderer creates a PNG renderer with the default palette and cell size
func NewImageRenderer(path string) *ImageRenderer {
	if path == "" {
		path = DefaultImageFilename
	}
	return &ImageRenderer{
		Path:     path,
		CellSize: DefaultCellSize,
		Palette:  DefaultPalette(),
	}
}

// Name returns the name of this renderer
func (r *ImageRenderer) Name() string {
	return "png"
}

// Render rasterizes grid and saves it to r.Path
func (r *ImageRenderer) Render(grid *world.Grid) error {
	img, err := Rasterize(grid, r.Palette, r.CellSize, r.Overlay)
	if err != nil {
		return err
	}
	return SavePNG(r.Path, img)
}

// Rasterize paints each grid cell as a cellSize x cellSize block of its
// palette colour. Overlay cells that are plain paths take the solution colour.
func Rasterize(grid *world.Grid, palette Palette, cellSize int, overlay Overlay) (*image.RGBA, error) {
	if grid == nil {
		return nil, fmt.Errorf("rasterize: nil grid")
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("rasterize: cell size %d must be positive", cellSize)
	}

	// one pixel per cell, then scale up
	cells := image.NewRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))
	grid.ForEachCell(func(x, y int, cell world.Cell) {
		cells.SetRGBA(x, y, palette.ColorFor(cell.Kind))
	})
	for _, p := range overlay {
		if grid.KindAt(p.X, p.Y) == world.Path {
			cells.SetRGBA(p.X, p.Y, palette.Solution)
		}
	}

	if cellSize == 1 {
		return cells, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, grid.Width()*cellSize, grid.Height()*cellSize))
	draw.NearestNeighbor.Scale(out, out.Bounds(), cells, cells.Bounds(), draw.Src, nil)
	return out, nil
}

// SavePNG encodes img as PNG at path
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
