package coord_test

import (
	"fmt"

	"github.com/katalvlaran/aoc/coord"
)

// ExampleDirection_Turn walks a square by turning right after every leg.
func ExampleDirection_Turn() {
	pos, dir := coord.Origin(), coord.Up
	for i := 0; i < 4; i++ {
		pos = pos.Add(dir.Delta().Scale(2))
		fmt.Print(pos, " ")
		dir = dir.Turn(coord.TurnRight)
	}
	fmt.Println()
	// Output:
	// (0,-2) (2,-2) (2,0) (0,0)
}
