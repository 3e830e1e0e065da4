package cuboid

import (
	"fmt"

	"github.com/katalvlaran/aoc/interval"
)

// Dims is the number of axes of a Cuboid.
const Dims = 3

// Cuboid is an axis-aligned box. Bounds[0], [1], [2] are the x, y, z extents.
type Cuboid struct {
	Bounds [Dims]interval.Closed
}

// New returns the box spanned by x, y and z.
func New(x, y, z interval.Closed) Cuboid {
	return Cuboid{Bounds: [Dims]interval.Closed{x, y, z}}
}

// Cube returns the box with extent iv on every axis.
func Cube(iv interval.Closed) Cuboid {
	return New(iv, iv, iv)
}

// IsEmpty reports whether c contains no cells.
func (c Cuboid) IsEmpty() bool {
	for _, b := range c.Bounds {
		if b.IsEmpty() {
			return true
		}
	}
	return false
}

// Volume returns the number of unit cells in c.
func (c Cuboid) Volume() int {
	v := 1
	for _, b := range c.Bounds {
		v *= b.Len()
	}
	return v
}

// Contains reports whether o lies entirely inside c on every axis.
func (c Cuboid) Contains(o Cuboid) bool {
	for i, b := range c.Bounds {
		if !b.Contains(o.Bounds[i]) {
			return false
		}
	}
	return true
}

// Intersect returns c ∩ o, which may be empty.
func (c Cuboid) Intersect(o Cuboid) Cuboid {
	var out Cuboid
	for i, b := range c.Bounds {
		out.Bounds[i] = b.Intersect(o.Bounds[i])
	}
	return out
}

// Difference returns c \ o as disjoint boxes, none of which meets o.
// An empty c yields no boxes; a c that misses o is returned as the only box.
func (c Cuboid) Difference(o Cuboid) []Cuboid {
	if c.IsEmpty() {
		return nil
	}
	res := make([]Cuboid, 0, 2*Dims)

	cur := c
	for i, b := range c.Bounds {
		diff := b.Difference(o.Bounds[i])
		if diff.Intersection.IsEmpty() {
			return []Cuboid{c}
		}
		for _, piece := range [...]interval.Closed{diff.Below, diff.Above} {
			if piece.IsEmpty() {
				continue
			}
			cur.Bounds[i] = piece
			res = append(res, cur)
		}
		cur.Bounds[i] = diff.Intersection
	}

	return res
}

// String renders c in the step format, e.g. "x=0..2,y=0..2,z=0..2".
func (c Cuboid) String() string {
	return fmt.Sprintf("x=%s,y=%s,z=%s", axisString(c.Bounds[0]), axisString(c.Bounds[1]), axisString(c.Bounds[2]))
}

func axisString(iv interval.Closed) string {
	lo, hi, ok := iv.Bounds()
	if !ok {
		return "∅"
	}
	return fmt.Sprintf("%d..%d", lo, hi)
}
