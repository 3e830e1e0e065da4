package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc/coord"
	"github.com/katalvlaran/aoc/grid"
)

// tiles is how many times the cave repeats along each axis in part 2.
const tiles = 5

// SolveDay15 finds the lowest total risk from the top-left to the
// bottom-right corner, first on the given map and then on the map tiled
// five times in each direction.
func SolveDay15(in string) (Answer, error) {
	cave, err := grid.Parse(in, grid.ParseDigitNonZero)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrInput, err)
	}

	small, err := lowestRisk(cave)
	if err != nil {
		return Answer{}, err
	}
	large, err := lowestRisk(tileCave(cave))
	if err != nil {
		return Answer{}, err
	}

	return answer(small, large), nil
}

// lowestRisk prices each step by the risk of the cell entered.
func lowestRisk(cave *grid.Grid[grid.Digit]) (int64, error) {
	dst := coord.Coord{X: cave.Width() - 1, Y: cave.Height() - 1}
	return cave.ShortestPath(coord.Origin(), dst, grid.Conn4, func(_, to coord.Coord) (int64, bool) {
		risk, ok := cave.Get(to)
		return int64(risk), ok
	})
}

// tileCave repeats cave tiles×tiles times, adding one risk per tile step
// right or down and wrapping 9 back to 1.
func tileCave(cave *grid.Grid[grid.Digit]) *grid.Grid[grid.Digit] {
	w, h := cave.Width(), cave.Height()
	out := grid.New[grid.Digit](w*tiles, h*tiles)
	for c, p := range out.Cells() {
		base, _ := cave.Get(coord.Coord{X: c.X % w, Y: c.Y % h})
		bump := grid.Digit(c.X/w + c.Y/h)
		*p = (base-1+bump)%9 + 1
	}
	return out
}
