package coord

import "fmt"

// Coord identifies a cell in the unbounded 2-D integer lattice.
type Coord struct {
	X, Y int
}

// Delta is a displacement between two Coords.
type Delta struct {
	DX, DY int
}

// Turn is a rotation by a multiple of 90°, clockwise.
type Turn uint8

const (
	// TurnFront keeps the current heading.
	TurnFront Turn = iota
	// TurnRight turns 90° clockwise.
	TurnRight
	// TurnBack turns around.
	TurnBack
	// TurnLeft turns 90° counter-clockwise.
	TurnLeft
)

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	// Up moves towards smaller y.
	Up Direction = iota
	// Right moves towards larger x.
	Right
	// Down moves towards larger y.
	Down
	// Left moves towards smaller x.
	Left
)

// Directions lists the orthogonal headings in canonical (clockwise) order.
var Directions = [...]Direction{Up, Right, Down, Left}

// Direction8 is one of the eight compass headings.
type Direction8 uint8

const (
	// North steps by (0,-1).
	North Direction8 = iota
	// NorthEast steps by (1,-1).
	NorthEast
	// East steps by (1,0).
	East
	// SouthEast steps by (1,1).
	SouthEast
	// South steps by (0,1).
	South
	// SouthWest steps by (-1,1).
	SouthWest
	// West steps by (-1,0).
	West
	// NorthWest steps by (-1,-1).
	NorthWest
)

// Directions8 lists the compass headings in canonical (clockwise) order.
var Directions8 = [...]Direction8{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionDeltas = [...]Delta{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

var direction8Deltas = [...]Delta{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var turnNames = [...]string{"Front", "Right", "Back", "Left"}

var directionNames = [...]string{"Up", "Right", "Down", "Left"}

var direction8Names = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String implements fmt.Stringer.
func (t Turn) String() string {
	if int(t) < len(turnNames) {
		return turnNames[t]
	}
	return fmt.Sprintf("Turn(%d)", uint8(t))
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// String implements fmt.Stringer.
func (d Direction8) String() string {
	if int(d) < len(direction8Names) {
		return direction8Names[d]
	}
	return fmt.Sprintf("Direction8(%d)", uint8(d))
}

// String renders c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// String renders d as "<dx,dy>".
func (d Delta) String() string {
	return fmt.Sprintf("<%d,%d>", d.DX, d.DY)
}
