// Package interval provides closed integer intervals with an explicit empty
// value and an exact three-way difference.
//
// Closed is either empty or [min, max] with min ≤ max. The zero value is the
// empty interval; New normalizes min > max to empty, so an invalid pair can
// never be observed.
//
// Difference splits an interval A against another interval B into the part of
// A strictly below B, the part strictly above B, and A ∩ B. The three pieces
// are pairwise disjoint and their union is A.
package interval

import "fmt"

// Closed is an inclusive integer range or the empty set.
type Closed struct {
	min, max int
	ok       bool
}

// Difference is the result of Closed.Difference.
type Difference struct {
	// Below is the part of the receiver strictly below the other interval.
	// When the other interval is empty, Below carries the whole receiver.
	Below Closed
	// Above is the part of the receiver strictly above the other interval.
	Above Closed
	// Intersection is the overlap of both intervals.
	Intersection Closed
}

// New returns [min, max], or the empty interval when min > max.
func New(min, max int) Closed {
	if min > max {
		return Closed{}
	}
	return Closed{min: min, max: max, ok: true}
}

// Empty returns the empty interval.
func Empty() Closed { return Closed{} }

// IsEmpty reports whether c contains no integers.
func (c Closed) IsEmpty() bool { return !c.ok }

// Bounds returns the inclusive bounds of c; ok is false for the empty interval.
func (c Closed) Bounds() (min, max int, ok bool) {
	return c.min, c.max, c.ok
}

// Len returns the number of integers in c.
func (c Closed) Len() int {
	if !c.ok {
		return 0
	}
	return c.max - c.min + 1
}

// Contains reports whether every integer of o lies in c.
// The empty interval is contained in every interval.
func (c Closed) Contains(o Closed) bool {
	switch {
	case !o.ok:
		return true
	case !c.ok:
		return false
	default:
		return c.min <= o.min && o.max <= c.max
	}
}

// Intersect returns c ∩ o.
func (c Closed) Intersect(o Closed) Closed {
	if !c.ok || !o.ok {
		return Closed{}
	}
	return New(max(c.min, o.min), min(c.max, o.max))
}

// Difference splits c against o. See the Difference type for the meaning of
// each piece.
func (c Closed) Difference(o Closed) Difference {
	switch {
	case !c.ok:
		return Difference{}
	case !o.ok:
		return Difference{Below: c}
	}
	// o.min-1 and o.max+1 are only formed when they cannot wrap
	d := Difference{Intersection: c.Intersect(o)}
	if c.min < o.min {
		d.Below = New(c.min, min(o.min-1, c.max))
	}
	if o.max < c.max {
		d.Above = New(max(c.min, o.max+1), c.max)
	}
	return d
}

// String renders c as "[min..max]" or "∅".
func (c Closed) String() string {
	if !c.ok {
		return "∅"
	}
	return fmt.Sprintf("[%d..%d]", c.min, c.max)
}
