package cuboid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/interval"
)

// Sentinel errors for step parsing.
var (
	// ErrSyntax indicates a step line that does not match the step format.
	ErrSyntax = errors.New("cuboid: malformed step")
	// ErrInvalidBounds indicates an axis range whose min exceeds its max.
	ErrInvalidBounds = errors.New("cuboid: axis min exceeds max")
)

var axisPrefixes = [Dims]string{"x=", "y=", "z="}

// ParseStep parses one line of the form
// "<on|off> x=<min>..<max>,y=<min>..<max>,z=<min>..<max>".
func ParseStep(line string) (Step, error) {
	state, ranges, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Step{}, fmt.Errorf("%w: missing ranges in %q", ErrSyntax, line)
	}

	var s Step
	switch state {
	case "on":
		s.On = true
	case "off":
	default:
		return Step{}, fmt.Errorf("%w: state %q is neither on nor off", ErrSyntax, state)
	}

	parts := strings.Split(ranges, ",")
	if len(parts) != Dims {
		return Step{}, fmt.Errorf("%w: want %d ranges, got %d in %q", ErrSyntax, Dims, len(parts), line)
	}
	for i, part := range parts {
		iv, err := parseAxis(part, axisPrefixes[i])
		if err != nil {
			return Step{}, err
		}
		s.Cuboid.Bounds[i] = iv
	}

	return s, nil
}

// parseAxis parses "<prefix><min>..<max>".
func parseAxis(s, prefix string) (interval.Closed, error) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return interval.Closed{}, fmt.Errorf("%w: range %q must start with %q", ErrSyntax, s, prefix)
	}
	loStr, hiStr, ok := strings.Cut(rest, "..")
	if !ok {
		return interval.Closed{}, fmt.Errorf("%w: range %q has no \"..\"", ErrSyntax, s)
	}
	lo, err := strconv.Atoi(loStr)
	if err != nil {
		return interval.Closed{}, fmt.Errorf("%w: range %q: %w", ErrSyntax, s, err)
	}
	hi, err := strconv.Atoi(hiStr)
	if err != nil {
		return interval.Closed{}, fmt.Errorf("%w: range %q: %w", ErrSyntax, s, err)
	}
	if lo > hi {
		return interval.Closed{}, fmt.Errorf("%w: %q", ErrInvalidBounds, s)
	}

	return interval.New(lo, hi), nil
}

// ParseSteps parses one step per line. A single trailing newline ends the last
// line; any other empty line is a syntax error. Empty text yields no steps.
func ParseSteps(text string) ([]Step, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	steps := make([]Step, 0, len(lines))
	for i, line := range lines {
		s, err := ParseStep(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		steps = append(steps, s)
	}

	return steps, nil
}
