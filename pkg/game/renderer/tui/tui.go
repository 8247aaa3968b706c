// Package tui dumps grids to a terminal as text, one row per line.
package tui

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/terminal"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/renderer"
)

// Symbols for each cell kind
const (
	IconWall     = "#"
	IconPath     = " "
	IconStart    = "O"
	IconEnd      = "X"
	IconSolution = "."
)

// ConsoleRenderer is the terminal renderer implementation
type ConsoleRenderer struct {
	Out      io.Writer
	Colorize bool
	Overlay  renderer.Overlay

	colorWall     color.Style
	colorPath     color.Style
	colorStart    color.Style
	colorEnd      color.Style
	colorSolution color.Style
}

// New creates a new console renderer writing to out (stdout if nil)
func New(out io.Writer) *ConsoleRenderer {
	if out == nil {
		out = os.Stdout
	}
	t := &ConsoleRenderer{Out: out}
	t.Init()
	return t
}

// Init initializes the console colours
func (t *ConsoleRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorPath = color.Style{color.BgWhite}
	t.colorStart = color.Style{color.FgBlue, color.OpBold}
	t.colorEnd = color.Style{color.FgYellow, color.OpBold}
	t.colorSolution = color.Style{color.FgGreen, color.OpBold}
}

// Name returns the name of this renderer
func (t *ConsoleRenderer) Name() string {
	return "console"
}

// FitsTerminal reports whether each row fits the current terminal width
func (t *ConsoleRenderer) FitsTerminal(grid *world.Grid) bool {
	return grid.Width() <= terminal.GetWidth()
}

// Render writes the grid to Out
func (t *ConsoleRenderer) Render(grid *world.Grid) error {
	w := bufio.NewWriter(t.Out)
	if _, err := w.WriteString(t.render(grid)); err != nil {
		return err
	}
	return w.Flush()
}

// Render returns the plain text dump of a grid: '#' wall, ' ' path,
// 'O' start, 'X' end, one row per line.
func Render(grid *world.Grid) string {
	return New(io.Discard).render(grid)
}

func (t *ConsoleRenderer) render(grid *world.Grid) string {
	onPath := mapset.New[world.Position]()
	for _, p := range t.Overlay {
		onPath.Put(p)
	}

	var sb strings.Builder
	sb.Grow((grid.Width() + 1) * grid.Height())
	grid.ForEachCell(func(x, y int, cell world.Cell) {
		if cell.Kind == world.Path && onPath.Has(world.Position{X: x, Y: y}) {
			sb.WriteString(t.style(t.colorSolution, IconSolution))
		} else {
			sb.WriteString(t.symbol(cell.Kind))
		}
		if x == grid.Width()-1 {
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

func (t *ConsoleRenderer) symbol(kind world.Kind) string {
	switch kind {
	case world.Path:
		return t.style(t.colorPath, IconPath)
	case world.Start:
		return t.style(t.colorStart, IconStart)
	case world.End:
		return t.style(t.colorEnd, IconEnd)
	default:
		return t.style(t.colorWall, IconWall)
	}
}

func (t *ConsoleRenderer) style(s color.Style, text string) string {
	if !t.Colorize {
		return text
	}
	return s.Sprint(text)
}
