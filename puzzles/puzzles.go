// Package puzzles holds the Advent of Code 2021 solvers built on the grid,
// cuboid and packet packages.
//
// Each solver takes the raw puzzle input and returns both answers as text.
// Solvers are pure: they neither read files nor log.
package puzzles

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Year is the event year every registered solver belongs to.
const Year = 2021

// ErrInput indicates puzzle input that does not have the expected shape.
var ErrInput = errors.New("puzzles: malformed input")

// maxSteps bounds the simulations that run until a state is reached.
const maxSteps = 10_000

// Answer holds the two answers of a day. A day without a second part leaves
// Part2 empty.
type Answer struct {
	Part1 string
	Part2 string
}

// Solver computes both answers for one day's input.
type Solver func(input string) (Answer, error)

var solvers = map[int]Solver{
	9:  SolveDay9,
	11: SolveDay11,
	13: SolveDay13,
	15: SolveDay15,
	16: SolveDay16,
	22: SolveDay22,
	25: SolveDay25,
}

// Lookup returns the solver registered for day.
func Lookup(day int) (Solver, bool) {
	s, ok := solvers[day]
	return s, ok
}

// Days returns the registered days in ascending order.
func Days() []int {
	days := make([]int, 0, len(solvers))
	for d := range solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// answer formats two integer answers.
func answer[T constraints.Integer](part1, part2 T) Answer {
	return Answer{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}
