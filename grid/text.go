package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// errNotDigit is returned by the digit cell parsers.
var errNotDigit = errors.New("not a decimal digit")

// Parse builds a grid from line-oriented text, one character per cell.
// Each line becomes a row; the width is taken from the first line. A single
// trailing newline terminates the last row and "\r\n" line endings are accepted.
//
// Returns ErrEmptyGrid for empty input, ErrEmptyLine for an empty row,
// ErrNonUniformWidth for ragged rows and ErrInvalidCell (wrapping the parser's
// error) for a rejected character.
// Complexity: O(len(s)).
func Parse[T any](s string, parse func(rune) (T, error)) (*Grid[T], error) {
	if s == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")

	width := -1
	cells := make([]T, 0, len(s))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			return nil, fmt.Errorf("%w: line %d", ErrEmptyLine, y+1)
		}
		n := 0
		for _, r := range line {
			v, err := parse(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d column %d: %w", ErrInvalidCell, r, y+1, n+1, err)
			}
			cells = append(cells, v)
			n++
		}
		if width < 0 {
			width = n
		} else if n != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonUniformWidth, y+1, n, width)
		}
	}

	return &Grid[T]{cells: cells, width: width}, nil
}

// Text renders g in the format accepted by Parse: rows in order, each
// terminated by '\n'.
func (g *Grid[T]) Text(render func(T) rune) string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.Height())
	for i, v := range g.cells {
		sb.WriteRune(render(v))
		if (i+1)%g.width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseRune is the identity cell parser for Grid[rune].
func ParseRune(r rune) (rune, error) {
	if r == utf8.RuneError {
		return 0, errors.New("invalid UTF-8")
	}
	return r, nil
}

// RenderRune is the identity renderer for Grid[rune].
func RenderRune(r rune) rune { return r }

// Digit is a single decimal digit cell, 0 through 9.
type Digit uint8

// ParseDigit accepts '0'..'9'.
func ParseDigit(r rune) (Digit, error) {
	if r < '0' || r > '9' {
		return 0, errNotDigit
	}
	return Digit(r - '0'), nil
}

// ParseDigitNonZero accepts '1'..'9'.
func ParseDigitNonZero(r rune) (Digit, error) {
	if r < '1' || r > '9' {
		return 0, errNotDigit
	}
	return Digit(r - '0'), nil
}

// Rune renders d as its decimal character.
func (d Digit) Rune() rune { return '0' + rune(d%10) }
