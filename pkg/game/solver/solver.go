// Package solver inspects finished grids: whether the junction lattice forms
// a spanning tree, and the route from Start to End.
package solver

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/world"
)

var (
	// ErrNoStartEnd is returned when a grid has no start or end marker.
	ErrNoStartEnd = errors.New("grid has no start or end")

	// ErrNoSolution is returned when End cannot be reached from Start.
	ErrNoSolution = errors.New("end is not reachable from start")
)

// Report summarises the junction graph of a grid
type Report struct {
	Junctions     int // junction positions on the lattice
	OpenJunctions int // junctions that are not walls
	Connectors    int // carved cells between two junctions
	Reachable     int // junctions reachable from the first open junction
}

// Connected returns true if every junction is open and reachable
func (r Report) Connected() bool {
	return r.OpenJunctions == r.Junctions && r.Reachable == r.Junctions
}

// Acyclic returns true if the junction graph has no loops.
// For a connected graph this is exactly J-1 edges.
func (r Report) Acyclic() bool {
	return r.Connected() && r.Connectors == r.Junctions-1
}

// IsPerfect returns true if the junctions form a spanning tree
func (r Report) IsPerfect() bool {
	return r.Connected() && r.Acyclic()
}

// String implements fmt.Stringer
func (r Report) String() string {
	return fmt.Sprintf("junctions=%d open=%d connectors=%d reachable=%d perfect=%v",
		r.Junctions, r.OpenJunctions, r.Connectors, r.Reachable, r.IsPerfect())
}

// Analyze counts junctions and carved connectors and walks the junction graph
func Analyze(grid *world.Grid) Report {
	var r Report
	var first *world.Position

	grid.ForEachCell(func(x, y int, cell world.Cell) {
		switch {
		case grid.IsJunction(x, y):
			r.Junctions++
			if cell.Kind.IsOpen() {
				r.OpenJunctions++
				if first == nil {
					first = &world.Position{X: x, Y: y}
				}
			}
		case grid.IsConnector(x, y):
			if cell.Kind.IsOpen() {
				r.Connectors++
			}
		}
	})

	if first != nil {
		r.Reachable = reachableJunctions(grid, *first).Size()
	}
	return r
}

// reachableJunctions walks from start across carved connectors only
func reachableJunctions(grid *world.Grid, start world.Position) mapset.Set[world.Position] {
	reachable := mapset.New[world.Position]()
	queue := []world.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, dir := range world.AllDirections() {
			wall := current.Step(dir, 1)
			next := current.Step(dir, 2)
			if !grid.IsJunction(next.X, next.Y) {
				continue
			}
			if !grid.KindAt(wall.X, wall.Y).IsOpen() || !grid.KindAt(next.X, next.Y).IsOpen() {
				continue
			}
			if !reachable.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return reachable
}

// SolutionPath returns the cells from Start to End inclusive, moving one cell
// at a time through open cells. In a perfect maze this route is unique.
func SolutionPath(grid *world.Grid) ([]world.Position, error) {
	start, okStart := grid.Start()
	end, okEnd := grid.End()
	if !okStart || !okEnd {
		return nil, ErrNoStartEnd
	}

	parent := make(map[world.Position]world.Position)
	seen := mapset.New[world.Position]()
	seen.Put(start)
	queue := []world.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return backtrack(parent, start, end), nil
		}

		for _, dir := range world.AllDirections() {
			next := current.Step(dir, 1)
			if seen.Has(next) || !grid.KindAt(next.X, next.Y).IsOpen() {
				continue
			}
			seen.Put(next)
			parent[next] = current
			queue = append(queue, next)
		}
	}

	return nil, fmt.Errorf("%w: start (%d,%d), end (%d,%d)", ErrNoSolution, start.X, start.Y, end.X, end.Y)
}

func backtrack(parent map[world.Position]world.Position, start, end world.Position) []world.Position {
	path := []world.Position{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
