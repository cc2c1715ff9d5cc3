package grid

import "fmt"

// Snapshot returns a deep copy of g, revision included.
// Complexity: O(rows×cols).
func (g *Grid) Snapshot() *Grid {
	cp := *g
	cp.cells = make([]Flags, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// Changed lists, in row-major order, the cells whose classification or
// origin bits differ between prev and g. A nil prev means every cell.
// Returns ErrShapeMismatch when the dimensions differ.
func (g *Grid) Changed(prev *Grid) ([]Pos, error) {
	if prev == nil {
		out := make([]Pos, 0, len(g.cells))
		for idx := range g.cells {
			out = append(out, g.Coordinate(idx))
		}
		return out, nil
	}
	if prev.rows != g.rows || prev.cols != g.cols {
		return nil, fmt.Errorf("%w: %d×%d vs %d×%d", ErrShapeMismatch, prev.rows, prev.cols, g.rows, g.cols)
	}
	var out []Pos
	for idx := range g.cells {
		if g.classify(idx) != prev.classify(idx) ||
			g.cells[idx]&originMask != prev.cells[idx]&originMask {
			out = append(out, g.Coordinate(idx))
		}
	}
	return out, nil
}
