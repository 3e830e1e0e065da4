// Package grid defines the Grid container, transform selectors,
// connectivity options and sentinel errors.
package grid

import (
	"errors"

	"github.com/katalvlaran/aoc/coord"
)

// Sentinel errors for grid construction and traversal.
var (
	// ErrEmptyGrid indicates the input text has no rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row")
	// ErrEmptyLine indicates an empty row inside the input text.
	ErrEmptyLine = errors.New("grid: unexpected empty line")
	// ErrNonUniformWidth indicates rows of differing lengths.
	ErrNonUniformWidth = errors.New("grid: non-uniform width")
	// ErrInvalidCell indicates the cell parser rejected a character.
	ErrInvalidCell = errors.New("grid: invalid cell character")
	// ErrDimensions indicates a cell slice whose length is not a multiple of the width.
	ErrDimensions = errors.New("grid: cell count does not match width")
	// ErrOutOfBounds indicates a coordinate outside the grid where one is required.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNegativeCost indicates a step cost below zero.
	ErrNegativeCost = errors.New("grid: negative step cost")
	// ErrNoPath indicates the destination cannot be reached.
	ErrNoPath = errors.New("grid: no path between cells")
)

// Axis selects the mirror line for Flip.
type Axis int

const (
	// Horizontal mirrors across the horizontal midline: the top row swaps with the bottom row.
	Horizontal Axis = iota
	// Vertical mirrors across the vertical midline: the left column swaps with the right column.
	Vertical
)

// Rotation is a clockwise rotation by a multiple of 90°.
type Rotation int

const (
	// Cw0 leaves the grid unchanged.
	Cw0 Rotation = iota
	// Cw90 is a quarter turn clockwise.
	Cw90
	// Cw180 is a half turn.
	Cw180
	// Cw270 is a quarter turn counter-clockwise.
	Cw270
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses coord.Directions: Up, Right, Down, Left.
	Conn4 Connectivity = iota
	// Conn8 uses coord.Directions8: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = directionOffsets4()
	offsets8 = directionOffsets8()
)

func directionOffsets4() []coord.Delta {
	out := make([]coord.Delta, 0, len(coord.Directions))
	for _, d := range coord.Directions {
		out = append(out, d.Delta())
	}
	return out
}

func directionOffsets8() []coord.Delta {
	out := make([]coord.Delta, 0, len(coord.Directions8))
	for _, d := range coord.Directions8 {
		out = append(out, d.Delta())
	}
	return out
}

// offsets returns the precomputed neighbor deltas for c.
func (c Connectivity) offsets() []coord.Delta {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Grid is a dense row-major 2-D container. The zero value is not usable;
// construct with New, FromCells or Parse.
//
// Invariant: len(cells) is a multiple of width; a zero width holds no cells.
type Grid[T any] struct {
	cells []T
	width int
}
