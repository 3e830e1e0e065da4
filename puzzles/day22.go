package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc/cuboid"
	"github.com/katalvlaran/aoc/interval"
)

// initRegion is the initialization procedure area, [-50,50] on every axis.
var initRegion = cuboid.Cube(interval.New(-50, 50))

// SolveDay22 reboots the reactor: part 1 counts lit cubes after the steps
// inside the initialization region, part 2 after every step.
func SolveDay22(in string) (Answer, error) {
	steps, err := cuboid.ParseSteps(in)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrInput, err)
	}

	n := cuboid.InitializationPrefix(steps, initRegion)
	r := cuboid.NewReactor()
	r.ApplyAll(steps[:n])
	part1 := r.TotalOn()
	r.ApplyAll(steps[n:])

	return answer(part1, r.TotalOn()), nil
}
