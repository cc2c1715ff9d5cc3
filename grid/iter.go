package grid

import "iter"

// Cells yields (row, col, state) for every cell in row-major order.
// The sequence is lazy and can be ranged over any number of times; it
// reflects the grid at the moment each cell is yielded.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for idx := range g.cells {
			p := g.Coordinate(idx)
			if !yield(Cell{Row: p.Row, Col: p.Col, State: g.classify(idx)}) {
				return
			}
		}
	}
}

// Origins yields the origin offset of every cell in row-major order.
// Cells without origin bits yield DR == DC == 0.
func (g *Grid) Origins() iter.Seq[Origin] {
	return func(yield func(Origin) bool) {
		for idx, f := range g.cells {
			p := g.Coordinate(idx)
			dr, dc := f.OriginOffset()
			if !yield(Origin{Row: p.Row, Col: p.Col, DR: dr, DC: dc}) {
				return
			}
		}
	}
}
