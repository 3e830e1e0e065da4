// Package grid provides Grid[T], a dense rectangular 2-D container over an
// arbitrary cell type, addressed by coord.Coord.
//
// What:
//
//   - Grid stores width×height cells in one row-major slice (index = x + width·y).
//     Height is derived from the slice length, so it can never disagree with it.
//   - Lookups outside the grid are absent, not errors: Get returns (zero, false),
//     Ptr returns nil. There is no wraparound.
//   - All, Cells and Values iterate row-major (y outer, x inner) and can be
//     restarted by calling them again.
//   - Flip, RotateClockwise and Rotate transform the grid in place.
//   - Parse and Text convert to and from the one-character-per-cell text format.
//   - Neighbors, ConnectedComponents, Flood and ShortestPath treat the grid as an
//     implicit graph with 4- or 8-connectivity.
//
// Text format:
//
//	one line per row, one character per cell, all lines of equal length,
//	rows terminated by '\n'. Empty lines inside the body are rejected.
//
// Complexity:
//
//   - Get/Set/Ptr:          O(1).
//   - Flip, Rotate:         O(W×H).
//   - ConnectedComponents:  O(W×H×d), d = 4 or 8.
//   - ShortestPath:         O(W×H×d·log(W×H)).
//
// Errors:
//
//   - ErrEmptyGrid:       text contains no rows.
//   - ErrEmptyLine:       text contains an empty row.
//   - ErrNonUniformWidth: rows of differing lengths.
//   - ErrInvalidCell:     the cell parser rejected a character.
//   - ErrDimensions:      a cell slice does not fit the requested width.
//   - ErrOutOfBounds:     a path endpoint lies outside the grid.
//   - ErrNegativeCost:    a step cost callback returned a negative cost.
//   - ErrNoPath:          the destination is unreachable.
package grid
