package coord

import "golang.org/x/exp/constraints"

// Origin returns (0,0).
func Origin() Coord {
	return Coord{}
}

// Add moves c by d.
func (c Coord) Add(d Delta) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Sub returns the displacement that moves o onto c.
func (c Coord) Sub(o Coord) Delta {
	return Delta{DX: c.X - o.X, DY: c.Y - o.Y}
}

// Step moves c one cell towards dir.
func (c Coord) Step(dir Direction) Coord {
	return c.Add(dir.Delta())
}

// Add composes two displacements.
func (d Delta) Add(o Delta) Delta {
	return Delta{DX: d.DX + o.DX, DY: d.DY + o.DY}
}

// Scale multiplies both components by k.
func (d Delta) Scale(k int) Delta {
	return Delta{DX: k * d.DX, DY: k * d.DY}
}

// Neg reverses d.
func (d Delta) Neg() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

// Turn rotates d by t. With y growing downwards, TurnRight maps Up onto Right.
func (d Delta) Turn(t Turn) Delta {
	switch t % 4 {
	case TurnRight:
		return Delta{DX: -d.DY, DY: d.DX}
	case TurnBack:
		return Delta{DX: -d.DX, DY: -d.DY}
	case TurnLeft:
		return Delta{DX: d.DY, DY: -d.DX}
	default:
		return d
	}
}

// Then composes t followed by o.
func (t Turn) Then(o Turn) Turn {
	return (t + o) % 4
}

// Times repeats t n times; n may be negative.
func (t Turn) Times(n int) Turn {
	k := n % 4
	if k < 0 {
		k += 4
	}
	return Turn((k * int(t%4)) % 4)
}

// Turn returns the heading reached by applying t to d.
func (d Direction) Turn(t Turn) Direction {
	return Direction((uint8(d) + uint8(t)) % 4)
}

// Delta returns the unit displacement for d.
func (d Direction) Delta() Delta {
	return directionDeltas[d%4]
}

// Delta returns the unit displacement for d; diagonals move on both axes.
func (d Direction8) Delta() Delta {
	return direction8Deltas[d%8]
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coord) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
