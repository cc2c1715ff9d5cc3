// Package grid models a 2-D occupancy grid for step-by-step search
// visualisation.
//
// What:
//
//   - Grid stores one packed Flags byte per cell (row-major, idx = row*cols+col):
//     FlagWall, FlagFrontier, FlagVisited and four origin bits (FlagFromUp,
//     FlagFromDown, FlagFromLeft, FlagFromRight) recording which neighbour
//     discovered the cell.
//   - Two distinguished cells, the source and the target, are kept as indices
//     next to the flag buffer. They overlay the flags: a target sitting on a
//     wall is still classified as Target.
//   - CellState classifies a cell with the fixed priority
//     Target > Source > Wall > Visited > Frontier > Open.
//
// Why:
//
//   - One byte per cell keeps a 200×200 grid at 40 KB, so a renderer can walk
//     the whole grid on every animation frame.
//   - Origin bits are enough to rebuild a path without a parent map.
//
// Versioning:
//
//	Every mutating call bumps Revision. Snapshot takes a deep copy and Changed
//	lists the cells whose classification or origin differs from a snapshot,
//	so a renderer can redraw only dirty cells.
//
// Errors:
//
//   - ErrEmptyGrid: rows < 1 or cols < 1.
//   - ErrInvalidCoordinate: a row/col outside the grid.
//   - ErrInvalidState: a CellState value outside the enum.
//   - ErrShapeMismatch: Changed called with a grid of other dimensions.
//
// Complexity:
//
//   - All per-cell queries and mutators: O(1).
//   - Cells, Origins, Changed, Reachable: O(rows×cols).
package grid
