package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/coord"
	"github.com/katalvlaran/aoc/grid"
)

func isHash(r rune) bool { return r == '#' }

//----------------------------------------------------------------------------//
// ConnectedComponents
//----------------------------------------------------------------------------//

// TestConnectedComponents_Conn4 finds three islands with orthogonal moves.
func TestConnectedComponents_Conn4(t *testing.T) {
	g := mustParse(t, ".##.#\n##.##\n#.##.\n")

	comps := g.ConnectedComponents(grid.Conn4, isHash)
	want := [][]coord.Coord{
		{{1, 0}, {2, 0}, {1, 1}, {0, 1}, {0, 2}},
		{{4, 0}, {4, 1}, {3, 1}, {3, 2}, {2, 2}},
	}
	if diff := cmp.Diff(want, comps); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

// TestConnectedComponents_Conn8 merges diagonal neighbors.
func TestConnectedComponents_Conn8(t *testing.T) {
	g := mustParse(t, "#..\n.#.\n..#\n")

	assert.Len(t, g.ConnectedComponents(grid.Conn4, isHash), 3)
	comps := g.ConnectedComponents(grid.Conn8, isHash)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 3)
}

// TestConnectedComponents_None returns nil when no cell qualifies.
func TestConnectedComponents_None(t *testing.T) {
	g := mustParse(t, "...\n...\n")
	assert.Empty(t, g.ConnectedComponents(grid.Conn8, isHash))
}

//----------------------------------------------------------------------------//
// Flood
//----------------------------------------------------------------------------//

// TestFlood_Directed follows only non-decreasing steps.
func TestFlood_Directed(t *testing.T) {
	g, err := grid.Parse("123\n214\n999\n", grid.ParseDigit)
	require.NoError(t, err)

	uphill := func(from, to coord.Coord) bool {
		a, _ := g.Get(from)
		b, _ := g.Get(to)
		return b >= a && b != 9
	}
	got := g.Flood(coord.Coord{X: 1, Y: 1}, grid.Conn4, uphill)
	want := []coord.Coord{{1, 1}, {1, 0}, {2, 1}, {0, 1}, {2, 0}}
	assert.Equal(t, want, got)
}

// TestFlood_OutOfBounds returns nil for an invalid start.
func TestFlood_OutOfBounds(t *testing.T) {
	g := grid.New[int](2, 2)
	assert.Nil(t, g.Flood(coord.Coord{X: 2, Y: 0}, grid.Conn4, func(_, _ coord.Coord) bool { return true }))
}

//----------------------------------------------------------------------------//
// ShortestPath
//----------------------------------------------------------------------------//

// enterCost prices a step by the digit of the entered cell.
func enterCost(g *grid.Grid[grid.Digit]) grid.CostFunc {
	return func(_, to coord.Coord) (int64, bool) {
		v, _ := g.Get(to)
		return int64(v), true
	}
}

// TestShortestPath_Basic routes around an expensive center.
func TestShortestPath_Basic(t *testing.T) {
	g, err := grid.Parse("111\n191\n111\n", grid.ParseDigit)
	require.NoError(t, err)

	d, err := g.ShortestPath(coord.Coord{}, coord.Coord{X: 2, Y: 2}, grid.Conn4, enterCost(g))
	require.NoError(t, err)
	assert.Equal(t, int64(4), d)

	d, err = g.ShortestPath(coord.Coord{X: 1, Y: 1}, coord.Coord{X: 1, Y: 1}, grid.Conn4, enterCost(g))
	require.NoError(t, err)
	assert.Zero(t, d, "source equals destination")
}

// TestShortestPath_Errors covers the sentinel errors.
func TestShortestPath_Errors(t *testing.T) {
	g, err := grid.Parse("10\n01\n", grid.ParseDigit)
	require.NoError(t, err)

	_, err = g.ShortestPath(coord.Coord{X: -1}, coord.Coord{}, grid.Conn4, enterCost(g))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = g.ShortestPath(coord.Coord{}, coord.Coord{X: 2}, grid.Conn4, enterCost(g))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	walls := func(_, to coord.Coord) (int64, bool) {
		v, _ := g.Get(to)
		return 1, v != 0
	}
	_, err = g.ShortestPath(coord.Coord{}, coord.Coord{X: 1, Y: 1}, grid.Conn4, walls)
	assert.ErrorIs(t, err, grid.ErrNoPath)

	d, err := g.ShortestPath(coord.Coord{}, coord.Coord{X: 1, Y: 1}, grid.Conn8, walls)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d, "diagonal step is allowed under Conn8")

	negative := func(_, _ coord.Coord) (int64, bool) { return -1, true }
	_, err = g.ShortestPath(coord.Coord{}, coord.Coord{X: 1, Y: 1}, grid.Conn4, negative)
	assert.ErrorIs(t, err, grid.ErrNegativeCost)
}
