package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridviz/grid"
)

// parse builds a grid from literal rows: '#' wall, 'S' source, 'T' target,
// 'o' visited, '+' frontier, anything else open. 'S' and 'T' may be written
// as 's'/'t' to overlay a wall.
func parse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	for r, line := range rows {
		if len(line) != g.Cols() {
			t.Fatalf("row %d has %d cols; want %d", r, len(line), g.Cols())
		}
		for c, ch := range line {
			var err error
			switch ch {
			case '#':
				err = g.SetWall(r, c, true)
			case 'o':
				err = g.MarkVisited(r, c)
			case '+':
				err = g.MarkFrontier(r, c)
			case 'S':
				err = g.SetSource(r, c)
			case 'T':
				err = g.SetTarget(r, c)
			case 's':
				if err = g.SetWall(r, c, true); err == nil {
					err = g.SetSource(r, c)
				}
			case 't':
				if err = g.SetWall(r, c, true); err == nil {
					err = g.SetTarget(r, c)
				}
			}
			if err != nil {
				t.Fatalf("cell (%d,%d): %v", r, c, err)
			}
		}
	}
	return g
}
