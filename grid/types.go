package grid

import "fmt"

// NoCell is the sentinel index for an unset source or target.
const NoCell = -1

// Pos is a (row, col) coordinate.
type Pos struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Flags is the packed per-cell attribute set.
type Flags uint8

const (
	// FlagWall marks an impassable cell.
	FlagWall Flags = 1 << iota
	// FlagFrontier marks a cell discovered but not yet expanded.
	FlagFrontier
	// FlagVisited marks a cell whose neighbours have been examined.
	FlagVisited
	_
	// FlagFromLeft means the discovering neighbour lies to the left.
	FlagFromLeft
	// FlagFromRight means the discovering neighbour lies to the right.
	FlagFromRight
	// FlagFromUp means the discovering neighbour lies above.
	FlagFromUp
	// FlagFromDown means the discovering neighbour lies below.
	FlagFromDown
)

const (
	stateMask  = FlagWall | FlagFrontier | FlagVisited
	originMask = FlagFromLeft | FlagFromRight | FlagFromUp | FlagFromDown
)

// Has reports whether every bit of x is set in f.
func (f Flags) Has(x Flags) bool { return f&x == x }

// With returns f with the bits of x set.
func (f Flags) With(x Flags) Flags { return f | x }

// Without returns f with the bits of x cleared.
func (f Flags) Without(x Flags) Flags { return f &^ x }

// Set returns f with x set when on is true and cleared otherwise.
func (f Flags) Set(x Flags, on bool) Flags {
	if on {
		return f.With(x)
	}
	return f.Without(x)
}

// OriginOffset returns the (dr, dc) step from the cell towards the
// neighbour that discovered it. (0, 0) means no origin is recorded.
func (f Flags) OriginOffset() (dr, dc int) {
	switch {
	case f.Has(FlagFromUp):
		dr = -1
	case f.Has(FlagFromDown):
		dr = 1
	}
	switch {
	case f.Has(FlagFromLeft):
		dc = -1
	case f.Has(FlagFromRight):
		dc = 1
	}
	return dr, dc
}

// CellState is the display classification of a cell.
type CellState int

const (
	// Open is a free, untouched cell.
	Open CellState = iota
	// Wall is an impassable cell.
	Wall
	// Frontier is a discovered, not yet expanded cell.
	Frontier
	// Visited is an expanded cell.
	Visited
	// Source is the search start.
	Source
	// Target is the search goal.
	Target
)

var stateNames = [...]string{"OPEN", "WALL", "FRONTIER", "VISITED", "SOURCE", "TARGET"}

// String returns the upper-case state name.
func (s CellState) String() string {
	if s < Open || s > Target {
		return fmt.Sprintf("CellState(%d)", int(s))
	}
	return stateNames[s]
}

// Valid reports whether s is one of the defined states.
func (s CellState) Valid() bool {
	return s >= Open && s <= Target
}

// Cell is one element of the Cells sequence.
type Cell struct {
	Row, Col int
	State    CellState
}

// Origin is one element of the Origins sequence: the cell at (Row, Col) was
// discovered from (Row+DR, Col+DC).
type Origin struct {
	Row, Col int
	DR, DC   int
}

// Grid is a rows×cols occupancy grid. Dimensions are fixed at construction.
// A Grid is not safe for concurrent mutation; one writer at a time.
type Grid struct {
	rows, cols int
	cells      []Flags
	source     int
	target     int
	revision   uint64
}
