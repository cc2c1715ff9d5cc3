package search

import (
	"fmt"

	"github.com/katalvlaran/gridviz/grid"
)

// Path rebuilds the route from source to target by following the origin
// bits recorded on each discovered cell, starting at target. The result
// includes both endpoints. Returns ErrNoPath when a cell on the way has no
// origin or the chain loops, and grid.ErrInvalidCoordinate for positions
// outside g.
//
// Complexity: O(path length).
func Path(g *grid.Grid, source, target grid.Pos) ([]grid.Pos, error) {
	for _, p := range []grid.Pos{source, target} {
		if !g.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: %v", grid.ErrInvalidCoordinate, p)
		}
	}
	path := []grid.Pos{target}
	for cur := target; cur != source; {
		dr, dc := g.Flags(cur.Row, cur.Col).OriginOffset()
		if dr == 0 && dc == 0 {
			return nil, fmt.Errorf("%w: %v has no origin", ErrNoPath, cur)
		}
		cur = grid.Pos{Row: cur.Row + dr, Col: cur.Col + dc}
		if !g.InBounds(cur.Row, cur.Col) || len(path) > g.Len() {
			return nil, fmt.Errorf("%w: broken origin chain at %v", ErrNoPath, cur)
		}
		path = append(path, cur)
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
