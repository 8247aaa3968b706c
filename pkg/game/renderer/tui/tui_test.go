package tui

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/solver"
)

func TestRender_MinimumMaze(t *testing.T) {
	g, err := world.NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err := generator.DefaultGenerator.Generate(g, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := "###\nO X\n###\n"
	if got := Render(g); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_SymbolsMatchKinds(t *testing.T) {
	g, _ := world.NewGrid(21, 11)
	if err := generator.DefaultGenerator.Generate(g, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(Render(g), "\n"), "\n")
	if len(lines) != g.Height() {
		t.Fatalf("got %d lines, want %d", len(lines), g.Height())
	}
	symbols := map[world.Kind]byte{world.Wall: '#', world.Path: ' ', world.Start: 'O', world.End: 'X'}
	g.ForEachCell(func(x, y int, cell world.Cell) {
		if len(lines[y]) != g.Width() {
			t.Fatalf("line %d has %d columns, want %d", y, len(lines[y]), g.Width())
		}
		if lines[y][x] != symbols[cell.Kind] {
			t.Errorf("(%d,%d) = %q, want %q for %v", x, y, lines[y][x], symbols[cell.Kind], cell.Kind)
		}
	})
}

func TestConsoleRenderer_Overlay(t *testing.T) {
	g, _ := world.NewGrid(9, 9)
	if err := generator.DefaultGenerator.Generate(g, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	path, err := solver.SolutionPath(g)
	if err != nil {
		t.Fatalf("SolutionPath: %v", err)
	}

	var buf bytes.Buffer
	r := New(&buf)
	r.Overlay = path
	if err := r.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Start and End keep their own symbols.
	if got, want := strings.Count(buf.String(), IconSolution), len(path)-2; got != want {
		t.Errorf("solution marks = %d, want %d", got, want)
	}
}

func TestConsoleRenderer_Colorize(t *testing.T) {
	g, _ := world.NewGrid(3, 3)
	var plain, colored bytes.Buffer
	New(&plain).Render(g)
	r := New(&colored)
	r.Colorize = true
	r.Render(g)
	if plain.String() != "###\n###\n###\n" {
		t.Errorf("plain render = %q", plain.String())
	}
	if !strings.Contains(colored.String(), IconWall) {
		t.Errorf("colored render lost wall symbols: %q", colored.String())
	}
}
