package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc/coord"
	"github.com/katalvlaran/aoc/grid"
)

// flashLevel is the energy above which an octopus flashes.
const flashLevel = 9

// SolveDay11 simulates the dumbo octopus grid: part 1 counts flashes over
// 100 steps, part 2 is the first step on which every octopus flashes.
func SolveDay11(in string) (Answer, error) {
	energy, err := grid.Parse(in, grid.ParseDigit)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrInput, err)
	}

	total, first := 0, 0
	for step := 1; step <= 100 || first == 0; step++ {
		if step > maxSteps {
			return Answer{}, fmt.Errorf("%w: octopuses never flash together within %d steps", ErrInput, maxSteps)
		}
		n := octopusStep(energy)
		if step <= 100 {
			total += n
		}
		if n == energy.Len() && first == 0 {
			first = step
		}
	}

	return answer(total, first), nil
}

// octopusStep advances the grid by one step and returns the number of flashes.
func octopusStep(energy *grid.Grid[grid.Digit]) int {
	var queue []coord.Coord
	for c, e := range energy.Cells() {
		*e++
		if *e > flashLevel {
			queue = append(queue, c)
		}
	}

	// every cell enters the queue exactly once, when it first crosses the level
	for qi := 0; qi < len(queue); qi++ {
		for _, d := range coord.Directions8 {
			e := energy.Ptr(queue[qi].Add(d.Delta()))
			if e == nil {
				continue
			}
			*e++
			if *e == flashLevel+1 {
				queue = append(queue, queue[qi].Add(d.Delta()))
			}
		}
	}

	for _, c := range queue {
		energy.Set(c, 0)
	}
	return len(queue)
}
