package puzzles

import (
	"fmt"

	"github.com/katalvlaran/aoc/packet"
)

// SolveDay16 decodes the BITS transmission: part 1 is the version sum, part 2
// the value of the outermost packet.
func SolveDay16(in string) (Answer, error) {
	p, err := packet.DecodeHex(in)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrInput, err)
	}
	v, err := packet.Eval(p)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrInput, err)
	}
	return answer(packet.VersionSum(p), v), nil
}
