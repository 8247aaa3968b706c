// Package devtools provides developer tools for inspecting generated mazes.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/renderer/tui"
	"mazegen/pkg/game/solver"
)

// DefaultDumpFilename is where DumpMapToFile writes when no path is given
const DefaultDumpFilename = "maze.txt"

// Metadata describes how a grid was produced
type Metadata struct {
	Seed      int64
	Generator string
}

// DumpMapToFile writes a full debug dump: metadata, structure report, legend,
// the plain map and the map with the solution marked. Returns the absolute path.
func DumpMapToFile(path string, grid *world.Grid, meta Metadata) (string, error) {
	if grid == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, grid, meta); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// WriteMapDump writes the dump body to w
func WriteMapDump(w io.Writer, grid *world.Grid, meta Metadata) error {
	report := solver.Analyze(grid)
	path, solveErr := solver.SolutionPath(grid)
	start, hasStart := grid.Start()
	end, hasEnd := grid.End()

	p := &dumpWriter{w: w}

	// --- Metadata ---
	p.println("=== MAZE DUMP ===")
	p.println("")
	p.println("--- Metadata ---")
	p.printf("generator: %s\n", meta.Generator)
	p.printf("seed: %d\n", meta.Seed)
	p.printf("width: %d\n", grid.Width())
	p.printf("height: %d\n", grid.Height())
	p.printf("coordinate_system: x,y (0-based, x=column, y=row)\n")
	if hasStart {
		p.printf("start: %d,%d\n", start.X, start.Y)
	} else {
		p.println("start: none")
	}
	if hasEnd {
		p.printf("end: %d,%d\n", end.X, end.Y)
	} else {
		p.println("end: none")
	}
	p.println("")

	// --- Structure ---
	p.println("--- Structure ---")
	p.printf("junctions: %d\n", report.Junctions)
	p.printf("open_junctions: %d\n", report.OpenJunctions)
	p.printf("connectors: %d\n", report.Connectors)
	p.printf("reachable: %d\n", report.Reachable)
	p.printf("connected: %v\n", report.Connected())
	p.printf("acyclic: %v\n", report.Acyclic())
	if solveErr != nil {
		p.printf("solution: %v\n", solveErr)
	} else {
		p.printf("solution_length: %d\n", len(path))
	}
	p.println("")

	// --- Legend ---
	p.println("--- Legend ---")
	p.printf("%s = wall  '%s' = path  %s = start  %s = end  %s = solution\n",
		tui.IconWall, tui.IconPath, tui.IconStart, tui.IconEnd, tui.IconSolution)
	p.println("")

	console := tui.New(w)

	p.println("--- Map ---")
	if p.err == nil {
		p.err = console.Render(grid)
	}
	p.println("")

	if solveErr == nil {
		p.println("--- Map (solution marked) ---")
		console.Overlay = path
		if p.err == nil {
			p.err = console.Render(grid)
		}
		p.println("")
	}

	p.println("=== END MAZE DUMP ===")
	return p.err
}

// dumpWriter keeps the first write error so the dump reads top to bottom
type dumpWriter struct {
	w   io.Writer
	err error
}

func (d *dumpWriter) printf(format string, a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, a...)
}

func (d *dumpWriter) println(s string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, s)
}
