package generator

import (
	"fmt"

	"mazegen/pkg/engine/world"
)

// RecursiveGenerator carves the same maze shape as BacktrackerGenerator but
// backtracks through the call stack. Recursion depth grows with the longest
// corridor, so it suits small grids.
type RecursiveGenerator struct {
	PlacementAttempts int
}

// Name returns the name of this generator
func (g *RecursiveGenerator) Name() string {
	return RecursiveName
}

// Generate carves grid and places start/end
func (g *RecursiveGenerator) Generate(grid *world.Grid, rng Rand) error {
	if grid == nil {
		return fmt.Errorf("%s: nil grid", g.Name())
	}
	CarveRecursive(grid, rng)
	if err := PlaceStartEnd(grid, rng, g.PlacementAttempts); err != nil {
		return err
	}
	return grid.Validate()
}

// CarveRecursive carves grid from a random junction using recursion
func CarveRecursive(grid *world.Grid, rng Rand) {
	carveFrom(grid, rng, randomJunction(grid, rng))
}

func carveFrom(grid *world.Grid, rng Rand, current world.Position) {
	openJunction(grid, current)

	for _, dir := range shuffledDirections(rng) {
		// re-checked after each return: deeper calls may have reached it
		next, ok := unvisitedNeighbor(grid, current, dir)
		if !ok {
			continue
		}
		wall := current.Step(dir, 1)
		must(grid.SetKind(wall.X, wall.Y, world.Path))
		carveFrom(grid, rng, next)
	}
}
