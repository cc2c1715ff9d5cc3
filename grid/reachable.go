package grid

// Reachable flood-fills from `from` over non-wall cells with 4-connectivity
// and returns a row-major mask of the cells it reaches. The start cell is
// always included, even when it is a wall.
//
// Time:   O(rows×cols).
// Memory: O(rows×cols) for the mask and queue.
func (g *Grid) Reachable(from Pos) ([]bool, error) {
	i0, err := g.index(from.Row, from.Col)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, len(g.cells))
	seen[i0] = true
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range neighborOffsets {
			r, c := u.Row+d[0], u.Col+d[1]
			if !g.InBounds(r, c) {
				continue
			}
			vi := r*g.cols + c
			if seen[vi] || g.cells[vi].Has(FlagWall) {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return seen, nil
}

// Connected reports whether b can be reached from a without crossing walls.
// A walled b is unreachable unless b == a.
func (g *Grid) Connected(a, b Pos) (bool, error) {
	bi, err := g.index(b.Row, b.Col)
	if err != nil {
		return false, err
	}
	seen, err := g.Reachable(a)
	if err != nil {
		return false, err
	}
	return seen[bi], nil
}

// Components groups the non-wall cells into 4-connected regions. Each
// region is a slice of positions in discovery order; regions are ordered by
// their first cell in row-major order.
func (g *Grid) Components() [][]Pos {
	seen := make([]bool, len(g.cells))
	var comps [][]Pos
	for i0, f := range g.cells {
		if f.Has(FlagWall) || seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []int{i0}
		var comp []Pos
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range neighborOffsets {
				r, c := u.Row+d[0], u.Col+d[1]
				if !g.InBounds(r, c) {
					continue
				}
				vi := r*g.cols + c
				if !seen[vi] && !g.cells[vi].Has(FlagWall) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
