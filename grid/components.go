package grid

import "github.com/katalvlaran/aoc/coord"

// ConnectedComponents finds all contiguous regions of cells for which keep
// holds, according to conn. Components are returned in row-major order of
// their first cell; each component lists its cells in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) ConnectedComponents(conn Connectivity, keep func(T) bool) [][]coord.Coord {
	seen := make([]bool, len(g.cells))
	offsets := conn.offsets()
	var comps [][]coord.Coord

	for i0, v := range g.cells {
		if seen[i0] || !keep(v) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []coord.Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range offsets {
				vi, ok := g.index(u.Add(d))
				if !ok || seen[vi] || !keep(g.cells[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Flood returns every cell reachable from start by moves between neighbors
// (under conn) that accept allows, start included, in discovery order.
// Returns nil when start is outside the grid.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (g *Grid[T]) Flood(start coord.Coord, conn Connectivity, accept func(from, to coord.Coord) bool) []coord.Coord {
	i0, ok := g.index(start)
	if !ok {
		return nil
	}
	seen := make([]bool, len(g.cells))
	seen[i0] = true
	out := []coord.Coord{start}

	for qi := 0; qi < len(out); qi++ {
		u := out[qi]
		for _, d := range conn.offsets() {
			v := u.Add(d)
			vi, ok := g.index(v)
			if !ok || seen[vi] || !accept(u, v) {
				continue
			}
			seen[vi] = true
			out = append(out, v)
		}
	}

	return out
}
