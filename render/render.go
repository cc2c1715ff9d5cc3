// Package render draws a grid for the terminal.
//
// Grid paints each cell as a two-column block coloured by its CellState,
// optionally with an arrow pointing at the neighbour that discovered it.
// ASCII produces an uncoloured single-glyph-per-cell picture for logs and
// tests.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridviz/grid"
	"github.com/katalvlaran/gridviz/search"
)

// Palette maps each cell state to a style.
type Palette map[grid.CellState]lipgloss.Style

// DefaultPalette returns the classic colour scheme.
func DefaultPalette() Palette {
	bg := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Foreground(lipgloss.Color("#000000"))
	}
	return Palette{
		grid.Open:     bg("#FFFFFF"),
		grid.Wall:     bg("#000000").Foreground(lipgloss.Color("#FFFFFF")),
		grid.Visited:  bg("#40D810"),
		grid.Frontier: bg("#D0A010"),
		grid.Source:   bg("#20FF20"),
		grid.Target:   bg("#FF2020"),
	}
}

var glyphs = map[grid.CellState]byte{
	grid.Open:     '.',
	grid.Wall:     '#',
	grid.Visited:  'o',
	grid.Frontier: '+',
	grid.Source:   'S',
	grid.Target:   'T',
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette replaces the default colours.
func WithPalette(p Palette) Option {
	return func(r *Renderer) { r.palette = p }
}

// WithArrows toggles origin arrows on discovered cells.
func WithArrows(on bool) Option {
	return func(r *Renderer) { r.arrows = on }
}

// Renderer paints grids with a palette.
type Renderer struct {
	palette Palette
	arrows  bool
	status  lipgloss.Style
}

// New returns a renderer using DefaultPalette with arrows enabled.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		palette: DefaultPalette(),
		arrows:  true,
		status:  lipgloss.NewStyle().Bold(true).PaddingTop(1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Grid renders g row by row, two columns per cell.
func (r *Renderer) Grid(g *grid.Grid) string {
	var sb strings.Builder
	for c := range g.Cells() {
		cell := "  "
		if r.arrows && (c.State == grid.Visited || c.State == grid.Frontier) {
			cell = Arrow(g.Flags(c.Row, c.Col)) + " "
		}
		sb.WriteString(r.palette[c.State].Render(cell))
		if c.Col == g.Cols()-1 && c.Row < g.Rows()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Status renders the one-line summary under the grid.
func (r *Renderer) Status(kind search.Kind, st search.Status, size int, fill float64, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return r.status.Render(fmt.Sprintf("%s  %s  %d×%d  fill %.0f%%  [%s]",
		kind, st, size, size, fill*100, state))
}

// Arrow returns the glyph pointing from a cell towards its origin, or a
// space when no origin is recorded.
func Arrow(f grid.Flags) string {
	dr, dc := f.OriginOffset()
	switch {
	case dr < 0:
		return "↑"
	case dr > 0:
		return "↓"
	case dc < 0:
		return "←"
	case dc > 0:
		return "→"
	}
	return " "
}

// ASCII renders g with one glyph per cell: '.' open, '#' wall, 'o' visited,
// '+' frontier, 'S' source, 'T' target. Cells on path that are not an
// endpoint are drawn as '*'.
func ASCII(g *grid.Grid, path []grid.Pos) string {
	onPath := make(map[grid.Pos]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	var sb strings.Builder
	sb.Grow(g.Len() + g.Rows())
	for c := range g.Cells() {
		ch := glyphs[c.State]
		if onPath[grid.Pos{Row: c.Row, Col: c.Col}] && c.State != grid.Source && c.State != grid.Target {
			ch = '*'
		}
		sb.WriteByte(ch)
		if c.Col == g.Cols()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
