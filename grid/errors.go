package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrInvalidCoordinate indicates a row/col pair outside the grid.
	ErrInvalidCoordinate = errors.New("grid: coordinate out of bounds")
	// ErrInvalidState indicates an unknown CellState value.
	ErrInvalidState = errors.New("grid: invalid cell state")
	// ErrShapeMismatch indicates two grids of different dimensions were compared.
	ErrShapeMismatch = errors.New("grid: grids have different dimensions")
)
