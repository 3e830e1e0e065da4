// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/aoc/coord"
	"github.com/katalvlaran/aoc/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse, transform, render
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_RotateClockwise parses a 3×2 block, rotates it and flips it.
func ExampleGrid_RotateClockwise() {
	g, err := grid.Parse("#..\n##.\n", grid.ParseRune)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	g.RotateClockwise()
	fmt.Print(g.Text(grid.RenderRune))
	fmt.Println("--")
	g.Flip(grid.Vertical)
	fmt.Print(g.Text(grid.RenderRune))

	// Output:
	// ##
	// #.
	// ..
	// --
	// ##
	// .#
	// ..
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents sizes the basins of a height map, where
// basins are separated by walls of 9.
func ExampleGrid_ConnectedComponents() {
	g, _ := grid.Parse("2199943210\n3987894921\n9856789892\n8767896789\n9899965678\n", grid.ParseDigit)

	comps := g.ConnectedComponents(grid.Conn4, func(d grid.Digit) bool { return d != 9 })
	for _, comp := range comps {
		fmt.Printf("basin at %v: %d cells\n", comp[0], len(comp))
	}

	// Output:
	// basin at (0,0): 3 cells
	// basin at (5,0): 9 cells
	// basin at (2,1): 14 cells
	// basin at (7,2): 9 cells
}

////////////////////////////////////////////////////////////////////////////////
// Example: ShortestPath
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ShortestPath prices each step by the risk of the entered cell.
func ExampleGrid_ShortestPath() {
	g, _ := grid.Parse("1163\n1381\n2136\n", grid.ParseDigitNonZero)
	dst := coord.Coord{X: g.Width() - 1, Y: g.Height() - 1}

	risk, err := g.ShortestPath(coord.Origin(), dst, grid.Conn4, func(_, to coord.Coord) (int64, bool) {
		v, _ := g.Get(to)
		return int64(v), true
	})
	fmt.Println(risk, err)

	// Output:
	// 13 <nil>
}
