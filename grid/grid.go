package grid

import "fmt"

// neighborOffsets lists (dr, dc) in the fixed expansion order: up, left,
// right, down. Search visit order depends on it.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// New returns a rows×cols grid with every cell Open and no source or target.
// Returns ErrEmptyGrid if rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	return &Grid{
		rows:   rows,
		cols:   cols,
		cells:  make([]Flags, rows*cols),
		source: NoCell,
		target: NoCell,
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.cells) }

// Revision returns a counter bumped by every mutation.
func (g *Grid) Revision() uint64 { return g.revision }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// index maps (row, col) to the row-major index.
func (g *Grid) index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return NoCell, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrInvalidCoordinate, row, col, g.rows, g.cols)
	}
	return row*g.cols + col, nil
}

// Coordinate converts a row-major index back to a Pos.
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.cols, Col: idx % g.cols}
}

// Flags returns the raw flag byte of (row, col), or 0 when out of bounds.
func (g *Grid) Flags(row, col int) Flags {
	idx, err := g.index(row, col)
	if err != nil {
		return 0
	}
	return g.cells[idx]
}

// Source returns the source position; ok is false when unset.
func (g *Grid) Source() (p Pos, ok bool) {
	if g.source == NoCell {
		return Pos{}, false
	}
	return g.Coordinate(g.source), true
}

// Target returns the target position; ok is false when unset.
func (g *Grid) Target() (p Pos, ok bool) {
	if g.target == NoCell {
		return Pos{}, false
	}
	return g.Coordinate(g.target), true
}

// Regenerate sets FlagWall on every cell for which isWall(row, col) is true
// and clears it elsewhere, visiting cells in row-major order. Only the wall
// bit changes: source, target, visited, frontier and origin bits are left as
// they are. Build from New first for a full reset.
func (g *Grid) Regenerate(isWall func(row, col int) bool) *Grid {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			g.cells[idx] = g.cells[idx].Set(FlagWall, isWall(row, col))
		}
	}
	g.revision++
	return g
}

// Clear drops every flag, origin bits included. Source and target stay.
func (g *Grid) Clear() {
	clear(g.cells)
	g.revision++
}

// ClearVisits drops the frontier, visited and origin bits of every cell,
// keeping walls, source and target. Used before re-running a search on the
// same layout.
func (g *Grid) ClearVisits() {
	for i, f := range g.cells {
		g.cells[i] = f & FlagWall
	}
	g.revision++
}

// SetWall sets (row, col) to Wall when isWall is true, Open otherwise.
func (g *Grid) SetWall(row, col int, isWall bool) error {
	if isWall {
		return g.SetState(row, col, Wall)
	}
	return g.SetState(row, col, Open)
}

// SetState overwrites the wall/visited/frontier flags of (row, col) so that
// exactly the one named by state is set (none for Open). Source and Target
// move the corresponding index to (row, col) and leave the flags alone.
// Origin bits are never touched.
func (g *Grid) SetState(row, col int, state CellState) error {
	if !state.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidState, int(state))
	}
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	switch state {
	case Source:
		g.source = idx
	case Target:
		g.target = idx
	default:
		g.setFlags(idx, state)
	}
	g.revision++
	return nil
}

// setFlags applies the mutual exclusion of wall/visited/frontier.
func (g *Grid) setFlags(idx int, state CellState) {
	f := g.cells[idx].Without(stateMask)
	switch state {
	case Wall:
		f = f.With(FlagWall)
	case Frontier:
		f = f.With(FlagFrontier)
	case Visited:
		f = f.With(FlagVisited)
	}
	g.cells[idx] = f
}

// SetSource designates (row, col) as the source. Flags are untouched.
func (g *Grid) SetSource(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.source = idx
	g.revision++
	return nil
}

// SetTarget designates (row, col) as the target. Flags are untouched.
func (g *Grid) SetTarget(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.target = idx
	g.revision++
	return nil
}

// CellState classifies (row, col) with priority
// Target > Source > Wall > Visited > Frontier > Open.
func (g *Grid) CellState(row, col int) (CellState, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return Open, err
	}
	return g.classify(idx), nil
}

// StateAt is CellState for a position already known to be in bounds.
// It panics on an out-of-bounds position.
func (g *Grid) StateAt(p Pos) CellState {
	if !g.InBounds(p.Row, p.Col) {
		panic(fmt.Sprintf("grid: StateAt%v outside %d×%d grid", p, g.rows, g.cols))
	}
	return g.classify(p.Row*g.cols + p.Col)
}

func (g *Grid) classify(idx int) CellState {
	f := g.cells[idx]
	switch {
	case idx == g.target:
		return Target
	case idx == g.source:
		return Source
	case f.Has(FlagWall):
		return Wall
	case f.Has(FlagVisited):
		return Visited
	case f.Has(FlagFrontier):
		return Frontier
	default:
		return Open
	}
}

// IsWall reports whether (row, col) carries FlagWall. False when out of bounds.
func (g *Grid) IsWall(row, col int) bool {
	return g.InBounds(row, col) && g.Flags(row, col).Has(FlagWall)
}

// IsVisited reports whether (row, col) carries FlagVisited.
func (g *Grid) IsVisited(row, col int) bool {
	return g.InBounds(row, col) && g.Flags(row, col).Has(FlagVisited)
}

// IsFrontier reports whether (row, col) carries FlagFrontier.
func (g *Grid) IsFrontier(row, col int) bool {
	return g.InBounds(row, col) && g.Flags(row, col).Has(FlagFrontier)
}

// IsSource reports whether (row, col) is the source.
func (g *Grid) IsSource(row, col int) bool {
	return g.InBounds(row, col) && row*g.cols+col == g.source
}

// IsTarget reports whether (row, col) is the target.
func (g *Grid) IsTarget(row, col int) bool {
	return g.InBounds(row, col) && row*g.cols+col == g.target
}

// MarkVisited is SetState(row, col, Visited).
func (g *Grid) MarkVisited(row, col int) error {
	return g.SetState(row, col, Visited)
}

// MarkFrontier is SetState(row, col, Frontier).
func (g *Grid) MarkFrontier(row, col int) error {
	return g.SetState(row, col, Frontier)
}

// Neighbors returns the in-bounds orthogonal neighbours of (row, col) in the
// order up, left, right, down. Walls are included; callers filter.
func (g *Grid) Neighbors(row, col int) ([]Pos, error) {
	if _, err := g.index(row, col); err != nil {
		return nil, err
	}
	out := make([]Pos, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if g.InBounds(r, c) {
			out = append(out, Pos{Row: r, Col: c})
		}
	}
	return out, nil
}

// SetOrigin records on cell to the direction in which from lies:
// FlagFromUp iff from is above, FlagFromDown iff below, FlagFromLeft iff to
// the left, FlagFromRight iff to the right. At most one vertical and one
// horizontal bit end up set; other flags are untouched.
func (g *Grid) SetOrigin(from, to Pos) error {
	idx, err := g.index(to.Row, to.Col)
	if err != nil {
		return err
	}
	f := g.cells[idx]
	f = f.Set(FlagFromUp, from.Row < to.Row)
	f = f.Set(FlagFromDown, from.Row > to.Row)
	f = f.Set(FlagFromLeft, from.Col < to.Col)
	f = f.Set(FlagFromRight, from.Col > to.Col)
	g.cells[idx] = f
	g.revision++
	return nil
}

// ClearOrigin drops the origin bits of (row, col).
func (g *Grid) ClearOrigin(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cells[idx] = g.cells[idx].Without(originMask)
	g.revision++
	return nil
}
