package cuboid

// Step switches every cell of Cuboid on or off.
type Step struct {
	Cuboid Cuboid
	On     bool
}

// Reactor tracks the lit cells as a list of pairwise-disjoint boxes.
// The zero value is an empty reactor ready for use.
type Reactor struct {
	on []Cuboid
}

// NewReactor returns a reactor with every cell off.
func NewReactor() *Reactor {
	return &Reactor{}
}

// Apply carves the step box out of every lit box and, for an "on" step,
// adds the step box back as a single box. The survivors cannot overlap the
// step box, so disjointness is preserved.
func (r *Reactor) Apply(s Step) {
	next := make([]Cuboid, 0, len(r.on)+1)
	for _, c := range r.on {
		next = append(next, c.Difference(s.Cuboid)...)
	}
	if s.On && !s.Cuboid.IsEmpty() {
		next = append(next, s.Cuboid)
	}
	r.on = next
}

// ApplyAll applies steps in order.
func (r *Reactor) ApplyAll(steps []Step) {
	for _, s := range steps {
		r.Apply(s)
	}
}

// TotalOn returns the number of lit cells.
func (r *Reactor) TotalOn() int {
	total := 0
	for _, c := range r.on {
		total += c.Volume()
	}
	return total
}

// Boxes returns a copy of the disjoint lit boxes.
func (r *Reactor) Boxes() []Cuboid {
	out := make([]Cuboid, len(r.on))
	copy(out, r.on)
	return out
}

// InitializationPrefix returns the length of the longest prefix of steps
// whose boxes lie inside region.
func InitializationPrefix(steps []Step, region Cuboid) int {
	for i, s := range steps {
		if !region.Contains(s.Cuboid) {
			return i
		}
	}
	return len(steps)
}
