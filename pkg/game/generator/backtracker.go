package generator

import (
	"fmt"

	"github.com/zyedidia/generic/stack"

	"mazegen/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze with an iterative randomized
// depth-first search, then places the start and end markers.
type BacktrackerGenerator struct {
	// Progress, if set, is called every ProgressInterval carved junctions.
	Progress ProgressFunc

	// PlacementAttempts caps start/end resampling; zero means DefaultPlacementAttempts.
	PlacementAttempts int
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return BacktrackerName
}

// Generate carves grid and places start/end
func (g *BacktrackerGenerator) Generate(grid *world.Grid, rng Rand) error {
	if grid == nil {
		return fmt.Errorf("%s: nil grid", g.Name())
	}
	Carve(grid, rng, g.Progress)
	if err := PlaceStartEnd(grid, rng, g.PlacementAttempts); err != nil {
		return err
	}
	return grid.Validate()
}

// Carve runs the iterative backtracker over every junction of grid.
// Each pop shuffles the four directions independently; the first unvisited
// neighbour is carved and the walk continues from it. A cell with no
// unvisited neighbours is dropped, which backtracks to the cell below it.
func Carve(grid *world.Grid, rng Rand, progress ProgressFunc) {
	total := grid.JunctionCount()
	carved := 0

	seed := randomJunction(grid, rng)
	openJunction(grid, seed)

	pending := stack.New[world.Position]()
	pending.Push(seed)

	for pending.Size() > 0 {
		current := pending.Pop()

		for _, dir := range shuffledDirections(rng) {
			next, ok := unvisitedNeighbor(grid, current, dir)
			if !ok {
				continue
			}

			wall := current.Step(dir, 1)
			must(grid.SetKind(wall.X, wall.Y, world.Path))
			openJunction(grid, next)

			carved++
			if progress != nil && carved%ProgressInterval == 0 {
				progress(carved, total, float64(carved)/float64(total)*100)
			}

			pending.Push(current)
			pending.Push(next)
			break
		}
	}
}
