package generator

import (
	"errors"
	"math/rand"
	"testing"

	"mazegen/pkg/engine/world"
)

// scriptedRand returns queued Intn results and never shuffles.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func (r *scriptedRand) Shuffle(int, func(i, j int)) {}

func TestPlaceStartEnd_AllWallFails(t *testing.T) {
	g := newGrid(t, 9, 9)
	err := PlaceStartEnd(g, rand.New(rand.NewSource(1)), 25)
	if !errors.Is(err, ErrPlacementFailed) {
		t.Fatalf("PlaceStartEnd on solid grid = %v, want ErrPlacementFailed", err)
	}
	g.ForEachCell(func(x, y int, cell world.Cell) {
		if cell.Kind != world.Wall {
			t.Errorf("cell (%d,%d) = %v after failed placement, want Wall", x, y, cell.Kind)
		}
	})
}

func TestPlaceStartEnd_ResamplesBothRows(t *testing.T) {
	// Only row 3 is open on both sides.
	g := newGrid(t, 5, 7)
	for x := 1; x <= 3; x++ {
		g.SetKind(x, 3, world.Path)
	}
	// Intn(5) draws: (0,2) -> rows 1 and 3, rejected; (2,2) -> rows 3 and 3.
	rng := &scriptedRand{values: []int{0, 2, 2, 2}}
	if err := PlaceStartEnd(g, rng, 10); err != nil {
		t.Fatalf("PlaceStartEnd: %v", err)
	}
	if rng.calls != 4 {
		t.Errorf("rows drawn %d times, want 4", rng.calls)
	}
	if p, _ := g.Start(); p != (world.Position{X: 0, Y: 3}) {
		t.Errorf("start = %v, want (0,3)", p)
	}
	if p, _ := g.End(); p != (world.Position{X: 4, Y: 3}) {
		t.Errorf("end = %v, want (4,3)", p)
	}
}

func TestPlaceStartEnd_DefaultAttempts(t *testing.T) {
	g := newGrid(t, 5, 5)
	rng := &scriptedRand{values: []int{0}}
	err := PlaceStartEnd(g, rng, 0)
	if !errors.Is(err, ErrPlacementFailed) {
		t.Fatalf("error = %v, want ErrPlacementFailed", err)
	}
	if rng.calls != 2*DefaultPlacementAttempts {
		t.Errorf("rows drawn %d times, want %d", rng.calls, 2*DefaultPlacementAttempts)
	}
}
