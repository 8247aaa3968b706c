package generator

import (
	"errors"
	"fmt"

	"mazegen/pkg/engine/world"
)

// DefaultPlacementAttempts is the start/end resampling cap used when none is configured.
const DefaultPlacementAttempts = 1000

// ErrPlacementFailed is returned when no start/end rows facing a path were
// found within the attempt cap.
var ErrPlacementFailed = errors.New("start/end placement failed")

// PlaceStartEnd puts Start on the west edge and End on the east edge, each on
// an independently drawn row whose inward neighbour is a Path. Both rows are
// redrawn until that holds or attempts run out.
func PlaceStartEnd(grid *world.Grid, rng Rand, attempts int) error {
	if attempts <= 0 {
		attempts = DefaultPlacementAttempts
	}

	west, east := 0, grid.Width()-1
	rows := grid.Height() - 2

	for i := 0; i < attempts; i++ {
		startY := 1 + rng.Intn(rows)
		endY := 1 + rng.Intn(rows)

		if grid.KindAt(west+1, startY) != world.Path || grid.KindAt(east-1, endY) != world.Path {
			continue
		}

		must(grid.SetKind(west, startY, world.Start))
		must(grid.SetKind(east, endY, world.End))
		return nil
	}

	return fmt.Errorf("%w: no open rows after %d attempts", ErrPlacementFailed, attempts)
}
