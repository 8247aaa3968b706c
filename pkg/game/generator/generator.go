package generator

import (
	"errors"
	"fmt"
	"sort"

	"mazegen/pkg/engine/world"
)

// ErrUnknownGenerator is returned by New for a name that is not registered.
var ErrUnknownGenerator = errors.New("unknown generator")

// Rand is the randomness a generator draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// ProgressFunc receives the number of carved junctions, the junction total and
// the completed percentage.
type ProgressFunc func(carved, total int, percent float64)

// ProgressInterval is how many carved junctions pass between progress reports.
const ProgressInterval = 100_000

// GridGenerator is an interface for maze carving algorithms.
// Generate mutates a freshly built all-wall grid in place.
type GridGenerator interface {
	Generate(grid *world.Grid, rng Rand) error
	Name() string
}

// Option configures a generator built by New
type Option func(*options)

type options struct {
	progress          ProgressFunc
	placementAttempts int
}

// WithProgress sets the callback for periodic progress reports
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithPlacementAttempts caps how often start/end rows are resampled
func WithPlacementAttempts(n int) Option {
	return func(o *options) {
		o.placementAttempts = n
	}
}

// Generator names
const (
	BacktrackerName = "backtracker"
	RecursiveName   = "recursive"
)

var constructors = map[string]func(options) GridGenerator{
	BacktrackerName: func(o options) GridGenerator {
		return &BacktrackerGenerator{Progress: o.progress, PlacementAttempts: o.placementAttempts}
	},
	RecursiveName: func(o options) GridGenerator {
		return &RecursiveGenerator{PlacementAttempts: o.placementAttempts}
	},
}

// Available generators with default settings
var (
	Backtracker = &BacktrackerGenerator{}
	Recursive   = &RecursiveGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Backtracker

// New builds the generator registered under name
func New(name string, opts ...Option) (GridGenerator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownGenerator, name, Names())
	}
	o := options{placementAttempts: DefaultPlacementAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	return ctor(o), nil
}

// Names returns the registered generator names in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// randomJunction picks a uniformly random junction inside the border
func randomJunction(grid *world.Grid, rng Rand) world.Position {
	return world.Position{
		X: rng.Intn(grid.Width()/2)*2 + 1,
		Y: rng.Intn(grid.Height()/2)*2 + 1,
	}
}

// shuffledDirections returns the four directions in a fresh random order
func shuffledDirections(rng Rand) []world.Direction {
	dirs := world.AllDirections()
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

// openJunction marks a junction visited and carved
func openJunction(grid *world.Grid, p world.Position) {
	must(grid.SetVisited(p.X, p.Y, true))
	must(grid.SetKind(p.X, p.Y, world.Path))
}

// unvisitedNeighbor reports whether the junction two steps away in dir can be entered
func unvisitedNeighbor(grid *world.Grid, from world.Position, dir world.Direction) (world.Position, bool) {
	next := from.Step(dir, 2)
	if !grid.IsInterior(next.X, next.Y) {
		return next, false
	}
	visited, err := grid.IsVisited(next.X, next.Y)
	must(err)
	return next, !visited
}

// must turns a grid access error into a panic. The carving arithmetic never
// leaves the grid, so an error here is a bug in this package.
func must(err error) {
	if err != nil {
		panic("generator: " + err.Error())
	}
}
