package grid

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/aoc/coord"
)

// CostFunc returns the cost of stepping from one cell onto a neighbor, and
// false when the step is forbidden.
type CostFunc func(from, to coord.Coord) (int64, bool)

// ShortestPath returns the minimum total cost of a walk from src to dst moving
// between neighbors under conn, where each step is priced by cost.
//
// Behavior:
//  1. Validate that both endpoints lie inside the grid.
//  2. Dijkstra from src with a lazy decrease-key min-heap.
//  3. Stop as soon as dst is finalized.
//
// Returns ErrOutOfBounds, ErrNegativeCost or ErrNoPath.
// Complexity: O(W·H·d·log(W·H)) time, O(W·H) memory.
func (g *Grid[T]) ShortestPath(src, dst coord.Coord, conn Connectivity, cost CostFunc) (int64, error) {
	si, ok := g.index(src)
	if !ok {
		return 0, fmt.Errorf("%w: source %v", ErrOutOfBounds, src)
	}
	di, ok := g.index(dst)
	if !ok {
		return 0, fmt.Errorf("%w: destination %v", ErrOutOfBounds, dst)
	}

	r := &runner[T]{
		g:       g,
		conn:    conn,
		cost:    cost,
		dist:    make([]int64, len(g.cells)),
		visited: make([]bool, len(g.cells)),
	}
	r.init(si)
	if err := r.process(di); err != nil {
		return 0, err
	}
	if !r.visited[di] {
		return 0, fmt.Errorf("%w: %v to %v", ErrNoPath, src, dst)
	}

	return r.dist[di], nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner[T any] struct {
	g       *Grid[T]
	conn    Connectivity
	cost    CostFunc
	dist    []int64 // best known distance per cell index
	visited []bool  // finalized cells
	pq      nodePQ
}

// init sets every distance to +∞ and pushes the source with distance 0.
func (r *runner[T]) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
}

// process pops cells in increasing distance order until dst is finalized or
// the heap runs dry.
func (r *runner[T]) process(dst int) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.idx] {
			continue // stale entry
		}
		r.visited[item.idx] = true
		if item.idx == dst {
			return nil
		}
		if err := r.relax(item.idx); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of the neighbors of u.
func (r *runner[T]) relax(u int) error {
	from := r.g.coordinate(u)
	for _, d := range r.conn.offsets() {
		to := from.Add(d)
		v, ok := r.g.index(to)
		if !ok || r.visited[v] {
			continue
		}
		w, ok := r.cost(from, to)
		if !ok {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: %v to %v costs %d", ErrNegativeCost, from, to, w)
		}
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		heap.Push(&r.pq, nodeItem{idx: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a cell index and its tentative distance.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist. Outdated entries stay in
// the heap and are skipped when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
