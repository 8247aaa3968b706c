// Package world provides the grid primitives the maze is carved into.
// A grid uses the odd-dimension convention: cells at odd (x, y) are
// junctions, cells with exactly one even coordinate are connectors, and
// the outer ring is a permanent border.
package world

// Kind is the state of a single grid cell. Exactly one kind holds at a time.
type Kind int

// Kind constants
const (
	Wall Kind = iota
	Path
	Start
	End
)

// AllKinds returns every cell kind for iteration
func AllKinds() []Kind {
	return []Kind{Wall, Path, Start, End}
}

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the kind is one of the four known kinds
func (k Kind) IsValid() bool {
	return k >= Wall && k <= End
}

// IsOpen returns true for kinds a walker can stand on
func (k Kind) IsOpen() bool {
	return k == Path || k == Start || k == End
}

// Cell is a single grid cell.
type Cell struct {
	Kind Kind

	// Visited is generation-time bookkeeping only.
	Visited bool
}

// IsWall returns true if the cell is a wall
func (c Cell) IsWall() bool {
	return c.Kind == Wall
}

// Position is an (x, y) grid coordinate; x is the column and y the row.
type Position struct {
	X int
	Y int
}

// Add returns the position offset by dx, dy
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the position n cells away in the given direction
func (p Position) Step(dir Direction, n int) Position {
	dx, dy := dir.Delta()
	return p.Add(dx*n, dy*n)
}
