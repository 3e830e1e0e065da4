package puzzles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/coord"
	"github.com/katalvlaran/aoc/grid"
)

// fold is one "fold along <axis>=<line>" instruction.
type fold struct {
	alongX bool
	line   int
}

// SolveDay13 folds the transparent paper: part 1 counts dots after the first
// fold, part 2 renders the code left after every fold.
func SolveDay13(in string) (Answer, error) {
	dots, folds, err := parseManual(in)
	if err != nil {
		return Answer{}, err
	}
	if len(folds) == 0 {
		return Answer{}, fmt.Errorf("%w: no fold instructions", ErrInput)
	}

	var ans Answer
	for i, f := range folds {
		dots = foldDots(dots, f)
		if i == 0 {
			ans.Part1 = fmt.Sprint(len(dots))
		}
	}

	// the last folds along each axis bound the paper
	width, height := 0, 0
	for _, f := range folds {
		if f.alongX {
			width = f.line
		} else {
			height = f.line
		}
	}
	for c := range dots {
		width = max(width, c.X+1)
		height = max(height, c.Y+1)
	}

	paper := grid.New[bool](width, height)
	for c := range dots {
		paper.Set(c, true)
	}
	ans.Part2 = paper.Text(func(dot bool) rune {
		if dot {
			return '#'
		}
		return '.'
	})

	return ans, nil
}

// foldDots mirrors every dot beyond the fold line onto the near half.
func foldDots(dots map[coord.Coord]struct{}, f fold) map[coord.Coord]struct{} {
	out := make(map[coord.Coord]struct{}, len(dots))
	for c := range dots {
		if f.alongX && c.X > f.line {
			c.X = 2*f.line - c.X
		} else if !f.alongX && c.Y > f.line {
			c.Y = 2*f.line - c.Y
		}
		out[c] = struct{}{}
	}
	return out
}

// parseManual splits the input into the dot list and the fold list.
func parseManual(in string) (map[coord.Coord]struct{}, []fold, error) {
	dotText, foldText, ok := strings.Cut(strings.ReplaceAll(in, "\r\n", "\n"), "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing blank line before folds", ErrInput)
	}

	dots := map[coord.Coord]struct{}{}
	for _, line := range strings.Fields(dotText) {
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, nil, fmt.Errorf("%w: dot %q", ErrInput, line)
		}
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if errX != nil || errY != nil || x < 0 || y < 0 {
			return nil, nil, fmt.Errorf("%w: dot %q", ErrInput, line)
		}
		dots[coord.Coord{X: x, Y: y}] = struct{}{}
	}

	var folds []fold
	for _, line := range strings.Split(strings.TrimSpace(foldText), "\n") {
		rest, ok := strings.CutPrefix(line, "fold along ")
		if !ok {
			return nil, nil, fmt.Errorf("%w: fold %q", ErrInput, line)
		}
		axis, num, ok := strings.Cut(rest, "=")
		n, err := strconv.Atoi(num)
		if !ok || err != nil || (axis != "x" && axis != "y") {
			return nil, nil, fmt.Errorf("%w: fold %q", ErrInput, line)
		}
		folds = append(folds, fold{alongX: axis == "x", line: n})
	}

	return dots, folds, nil
}
