// Package coord provides the integer lattice algebra shared by the grid-based
// puzzles: positions, displacements, turns and compass directions.
//
// What:
//
//   - Coord is a cell position (x grows to the right, y grows downwards).
//   - Delta is a displacement; Coord.Add(Delta) moves a position.
//   - Turn is a quarter-turn relative to a heading (Front, Right, Back, Left).
//   - Direction enumerates the four orthogonal headings, Direction8 the eight
//     compass headings including diagonals.
//
// Canonical order:
//
//   - Directions:  Up, Right, Down, Left (clockwise starting at Up).
//   - Directions8: North, NorthEast, East, SouthEast, South, SouthWest, West,
//     NorthWest (clockwise starting at North).
//
// Traversals that range over these tables depend on the order only for
// performance, never for the result.
//
// All values are immutable and comparable, so they can be used as map keys.
// Integer overflow is a caller error and is not checked.
package coord
