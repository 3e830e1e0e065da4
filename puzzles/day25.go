package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc/coord"
	"github.com/katalvlaran/aoc/grid"
)

// herd is the content of one sea floor cell.
type herd uint8

const (
	emptyFloor herd = iota
	eastHerd
	southHerd
)

func parseHerd(r rune) (herd, error) {
	switch r {
	case '.':
		return emptyFloor, nil
	case '>':
		return eastHerd, nil
	case 'v':
		return southHerd, nil
	}
	return 0, fmt.Errorf("unknown sea floor cell %q", r)
}

// SolveDay25 counts the steps until no sea cucumber can move. The day has no
// second part.
func SolveDay25(in string) (Answer, error) {
	floor, err := grid.Parse(in, parseHerd)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrInput, err)
	}

	steps := 1
	for {
		east := moveHerd(floor, eastHerd, coord.Right)
		south := moveHerd(floor, southHerd, coord.Down)
		if !east && !south {
			break
		}
		steps++
		if steps > maxSteps {
			return Answer{}, fmt.Errorf("%w: sea cucumbers still moving after %d steps", ErrInput, maxSteps)
		}
	}

	return Answer{Part1: fmt.Sprint(steps)}, nil
}

// moveHerd moves every member of h that faces an empty cell one step in dir,
// wrapping at the edges. All moves of a herd are decided before any happens.
func moveHerd(floor *grid.Grid[herd], h herd, dir coord.Direction) bool {
	w, ht := floor.Width(), floor.Height()
	wrap := func(c coord.Coord) coord.Coord {
		c = c.Step(dir)
		return coord.Coord{X: (c.X + w) % w, Y: (c.Y + ht) % ht}
	}

	var movers []coord.Coord
	for c, v := range floor.All() {
		if v != h {
			continue
		}
		if next, _ := floor.Get(wrap(c)); next == emptyFloor {
			movers = append(movers, c)
		}
	}
	for _, c := range movers {
		floor.Set(c, emptyFloor)
		floor.Set(wrap(c), h)
	}
	return len(movers) > 0
}
