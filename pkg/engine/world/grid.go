package world

import (
	"fmt"
)

// MinDimension is the smallest width or height that still holds one
// junction inside a wall border.
const MinDimension = 3

// Grid is a rectangular array of cells indexed [y][x].
// Width and height are always odd.
type Grid struct {
	cells  [][]Cell
	width  int
	height int

	start    Position
	end      Position
	hasStart bool
	hasEnd   bool
}

// NewGrid creates a new all-wall, unvisited grid with the given dimensions.
// Both dimensions must be odd and at least MinDimension.
func NewGrid(width, height int) (*Grid, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	g := &Grid{}
	g.build(width, height)
	return g, nil
}

// CheckDimensions reports whether width and height can hold a junction lattice.
func CheckDimensions(width, height int) error {
	if width < MinDimension || height < MinDimension {
		return fmt.Errorf("%w: %dx%d is smaller than %dx%d", ErrInvalidDimensions, width, height, MinDimension, MinDimension)
	}
	if width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: %dx%d must be odd in both directions", ErrInvalidDimensions, width, height)
	}
	return nil
}

func (g *Grid) build(width, height int) {
	g.width = width
	g.height = height
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		// zero value is an unvisited wall
		g.cells[y] = make([]Cell, width)
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsInterior checks if a position is strictly inside the border
func (g *Grid) IsInterior(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsInterior(x, y)
}

// IsJunction checks if a position lies on the junction lattice (both coordinates odd)
func (g *Grid) IsJunction(x, y int) bool {
	return g.IsInterior(x, y) && x%2 == 1 && y%2 == 1
}

// IsConnector checks if a position sits between two junctions
func (g *Grid) IsConnector(x, y int) bool {
	return g.IsInterior(x, y) && (x%2 == 1) != (y%2 == 1)
}

// JunctionCount returns the number of junctions on the lattice.
func (g *Grid) JunctionCount() int {
	return (g.height / 2) * (g.width / 2)
}

// At returns the cell at the given position
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.IsValidPosition(x, y) {
		return Cell{}, g.outOfBounds(x, y)
	}
	return g.cells[y][x], nil
}

// KindAt returns the kind of the cell at the given position, or Wall if out of bounds
func (g *Grid) KindAt(x, y int) Kind {
	if !g.IsValidPosition(x, y) {
		return Wall
	}
	return g.cells[y][x].Kind
}

// SetKind changes the kind of the cell at the given position.
// Setting Start or End records the position for Start/End lookups.
func (g *Grid) SetKind(x, y int, kind Kind) error {
	if !g.IsValidPosition(x, y) {
		return g.outOfBounds(x, y)
	}
	if !kind.IsValid() {
		return fmt.Errorf("unknown cell kind %d at (%d,%d)", kind, x, y)
	}

	prev := g.cells[y][x].Kind
	g.cells[y][x].Kind = kind

	pos := Position{X: x, Y: y}
	if prev == Start && g.start == pos {
		g.hasStart = false
	}
	if prev == End && g.end == pos {
		g.hasEnd = false
	}
	switch kind {
	case Start:
		g.start, g.hasStart = pos, true
	case End:
		g.end, g.hasEnd = pos, true
	}
	return nil
}

// SetVisited sets the generation bookkeeping flag of the cell at the given position
func (g *Grid) SetVisited(x, y int, visited bool) error {
	if !g.IsValidPosition(x, y) {
		return g.outOfBounds(x, y)
	}
	g.cells[y][x].Visited = visited
	return nil
}

// IsVisited returns the generation bookkeeping flag of the cell at the given position
func (g *Grid) IsVisited(x, y int) (bool, error) {
	if !g.IsValidPosition(x, y) {
		return false, g.outOfBounds(x, y)
	}
	return g.cells[y][x].Visited, nil
}

// Start returns the start position, if one has been placed
func (g *Grid) Start() (Position, bool) {
	return g.start, g.hasStart
}

// End returns the end position, if one has been placed
func (g *Grid) End() (Position, bool) {
	return g.end, g.hasEnd
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(x, y int, cell Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// ForEachJunction iterates over all junction positions in row-major order
func (g *Grid) ForEachJunction(fn func(x, y int, cell Cell)) {
	for y := 1; y < g.height-1; y += 2 {
		for x := 1; x < g.width-1; x += 2 {
			fn(x, y, g.cells[y][x])
		}
	}
}

func (g *Grid) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
}

// Validate checks a finished grid: the border is all wall except one Start on
// the west edge and one End on the east edge, each facing a Path cell.
func (g *Grid) Validate() error {
	if err := CheckDimensions(g.width, g.height); err != nil {
		return err
	}
	if !g.hasStart {
		return fmt.Errorf("%w: no start cell", ErrInvalidGrid)
	}
	if !g.hasEnd {
		return fmt.Errorf("%w: no end cell", ErrInvalidGrid)
	}
	if g.start.X != 0 || g.start.Y < 1 || g.start.Y > g.height-2 {
		return fmt.Errorf("%w: start at (%d,%d) is not on the west edge", ErrInvalidGrid, g.start.X, g.start.Y)
	}
	if g.end.X != g.width-1 || g.end.Y < 1 || g.end.Y > g.height-2 {
		return fmt.Errorf("%w: end at (%d,%d) is not on the east edge", ErrInvalidGrid, g.end.X, g.end.Y)
	}
	if g.KindAt(1, g.start.Y) != Path {
		return fmt.Errorf("%w: start at row %d does not face a path", ErrInvalidGrid, g.start.Y)
	}
	if g.KindAt(g.width-2, g.end.Y) != Path {
		return fmt.Errorf("%w: end at row %d does not face a path", ErrInvalidGrid, g.end.Y)
	}

	var err error
	g.ForEachCell(func(x, y int, cell Cell) {
		if err != nil {
			return
		}
		pos := Position{X: x, Y: y}
		switch cell.Kind {
		case Start:
			if pos != g.start {
				err = fmt.Errorf("%w: extra start cell at (%d,%d)", ErrInvalidGrid, x, y)
			}
		case End:
			if pos != g.end {
				err = fmt.Errorf("%w: extra end cell at (%d,%d)", ErrInvalidGrid, x, y)
			}
		case Path:
			if g.IsOnPerimeter(x, y) {
				err = fmt.Errorf("%w: border cell (%d,%d) is open", ErrInvalidGrid, x, y)
			}
		}
	})
	return err
}
