package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridviz/grid"
	"github.com/katalvlaran/gridviz/search"
)

// layout builds a grid from rows of '#' (wall), 'S', 'T' and '.' and
// returns it with the endpoint positions.
func layout(t testing.TB, rows ...string) (g *grid.Grid, src, dst grid.Pos) {
	t.Helper()
	g, err := grid.New(len(rows), len(rows[0]))
	require.NoError(t, err)
	g.Regenerate(func(row, col int) bool { return rows[row][col] == '#' })
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case 'S':
				src = grid.Pos{Row: r, Col: c}
				require.NoError(t, g.SetSource(r, c))
			case 'T':
				dst = grid.Pos{Row: r, Col: c}
				require.NoError(t, g.SetTarget(r, c))
			}
		}
	}
	return g, src, dst
}

// runToEnd steps s until done and returns the number of Step calls.
// It fails the test if more than limit calls are needed.
func runToEnd(t testing.TB, s search.Stepper, g *grid.Grid, limit int) int {
	t.Helper()
	for n := 1; n <= limit; n++ {
		if s.Step(g) {
			return n
		}
	}
	t.Fatalf("search not done after %d steps", limit)
	return limit
}
