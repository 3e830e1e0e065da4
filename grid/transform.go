package grid

// Flip mirrors g in place across the midline selected by axis. For an odd
// dimension the middle row (or column) stays where it is.
// Complexity: O(W×H), no allocation.
func (g *Grid[T]) Flip(axis Axis) {
	w, h := g.width, g.Height()
	switch axis {
	case Horizontal:
		for y := 0; y < h/2; y++ {
			top, bottom := y*w, (h-1-y)*w
			for x := 0; x < w; x++ {
				g.cells[top+x], g.cells[bottom+x] = g.cells[bottom+x], g.cells[top+x]
			}
		}
	case Vertical:
		for y := 0; y < h; y++ {
			row := y * w
			for x := 0; x < w/2; x++ {
				l, r := row+x, row+w-1-x
				g.cells[l], g.cells[r] = g.cells[r], g.cells[l]
			}
		}
	}
}

// RotateClockwise turns g by 90° clockwise. Width and height swap when the
// grid is not square; the old row y becomes the new column h-1-y.
// Complexity: O(W×H) time, one W×H buffer.
func (g *Grid[T]) RotateClockwise() {
	w, h := g.width, g.Height()
	if w == 0 {
		return
	}
	rotated := make([]T, 0, len(g.cells))
	for x := 0; x < w; x++ {
		for y := h - 1; y >= 0; y-- {
			rotated = append(rotated, g.cells[y*w+x])
		}
	}
	g.cells = rotated
	g.width = h
}

// Rotate applies r as a sequence of clockwise quarter turns.
func (g *Grid[T]) Rotate(r Rotation) {
	n := int(r) % 4
	if n < 0 {
		n += 4
	}
	for i := 0; i < n; i++ {
		g.RotateClockwise()
	}
}
