package puzzles

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc/coord"
	"github.com/katalvlaran/aoc/grid"
)

// SolveDay9 finds the low points of a height map (part 1: total risk) and the
// basins that drain into them (part 2: product of the three largest sizes).
func SolveDay9(in string) (Answer, error) {
	hm, err := grid.Parse(in, grid.ParseDigit)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrInput, err)
	}

	lows := lowPoints(hm)
	risk := 0
	for _, c := range lows {
		h, _ := hm.Get(c)
		risk += int(h) + 1
	}

	// a basin is everything a low point reaches without crossing a 9
	sizes := make([]int, 0, len(lows))
	for _, c := range lows {
		basin := hm.Flood(c, grid.Conn4, func(_, to coord.Coord) bool {
			h, _ := hm.Get(to)
			return h != 9
		})
		sizes = append(sizes, len(basin))
	}
	if len(sizes) < 3 {
		return Answer{}, fmt.Errorf("%w: %d basins, need 3", ErrInput, len(sizes))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)

	return answer(risk, sizes[0]*sizes[1]*sizes[2]), nil
}

// lowPoints returns cells lower than every orthogonal neighbor, row-major.
func lowPoints(hm *grid.Grid[grid.Digit]) []coord.Coord {
	var lows []coord.Coord
	for c, h := range hm.All() {
		low := true
		for _, n := range hm.Neighbors(c, grid.Conn4) {
			if n <= h {
				low = false
				break
			}
		}
		if low {
			lows = append(lows, c)
		}
	}
	return lows
}
