package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/aoc/coord"
)

// New allocates a width×height grid of zero-valued cells.
// Negative dimensions are a caller error and panic.
func New[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", width, height))
	}
	if width == 0 {
		height = 0
	}
	return &Grid[T]{cells: make([]T, width*height), width: width}
}

// FromCells wraps a row-major cell slice without copying it.
// Returns ErrDimensions unless width > 0 and len(cells) is a multiple of width.
func FromCells[T any](cells []T, width int) (*Grid[T], error) {
	if width <= 0 || len(cells)%width != 0 {
		return nil, fmt.Errorf("%w: %d cells, width %d", ErrDimensions, len(cells), width)
	}
	return &Grid[T]{cells: cells, width: width}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows, derived from the cell count.
func (g *Grid[T]) Height() int {
	if g.width == 0 {
		return 0
	}
	return len(g.cells) / g.width
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether c addresses a cell of g.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c coord.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.Height()
}

// index maps c to a row-major index: y*width + x.
func (g *Grid[T]) index(c coord.Coord) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return c.Y*g.width + c.X, true
}

// coordinate converts a row-major index back to its Coord.
func (g *Grid[T]) coordinate(idx int) coord.Coord {
	return coord.Coord{X: idx % g.width, Y: idx / g.width}
}

// Get returns the cell at c, or (zero, false) when c lies outside the grid.
func (g *Grid[T]) Get(c coord.Coord) (T, bool) {
	i, ok := g.index(c)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// Ptr returns a pointer to the cell at c for in-place mutation, or nil when c
// lies outside the grid. The pointer is invalidated by RotateClockwise.
func (g *Grid[T]) Ptr(c coord.Coord) *T {
	i, ok := g.index(c)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// Set stores v at c and reports whether c was in bounds.
func (g *Grid[T]) Set(c coord.Coord, v T) bool {
	i, ok := g.index(c)
	if ok {
		g.cells[i] = v
	}
	return ok
}

// All yields every (Coord, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[coord.Coord, T] {
	return func(yield func(coord.Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(g.coordinate(i), v) {
				return
			}
		}
	}
}

// Cells yields every (Coord, *cell) pair in row-major order; writes through
// the pointer update the grid.
func (g *Grid[T]) Cells() iter.Seq2[coord.Coord, *T] {
	return func(yield func(coord.Coord, *T) bool) {
		for i := range g.cells {
			if !yield(g.coordinate(i), &g.cells[i]) {
				return
			}
		}
	}
}

// Values yields every cell value in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Neighbors yields the in-bounds neighbors of c under conn, in the canonical
// direction order of package coord.
func (g *Grid[T]) Neighbors(c coord.Coord, conn Connectivity) iter.Seq2[coord.Coord, T] {
	return func(yield func(coord.Coord, T) bool) {
		for _, d := range conn.offsets() {
			n := c.Add(d)
			i, ok := g.index(n)
			if !ok {
				continue
			}
			if !yield(n, g.cells[i]) {
				return
			}
		}
	}
}

// CountFunc returns the number of cells for which pred holds.
func (g *Grid[T]) CountFunc(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Clone returns a copy of g with its own cell storage.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{cells: cells, width: g.width}
}

// Equal reports whether a and b have the same dimensions and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || len(a.cells) != len(b.cells) {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
