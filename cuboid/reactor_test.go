package cuboid_test

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/cuboid"
)

// loadSteps parses a fixture from testdata.
func loadSteps(t *testing.T, name string) []cuboid.Step {
	t.Helper()
	raw, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	steps, err := cuboid.ParseSteps(string(raw))
	require.NoError(t, err)
	return steps
}

// assertDisjoint fails if any two lit boxes share a cell.
func assertDisjoint(t *testing.T, r *cuboid.Reactor) {
	t.Helper()
	boxes := r.Boxes()
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			assert.True(t, boxes[i].Intersect(boxes[j]).IsEmpty(), "boxes %v and %v overlap", boxes[i], boxes[j])
		}
	}
}

// TestReactor_SmallExample follows the four-step example cell by cell.
func TestReactor_SmallExample(t *testing.T) {
	steps := loadSteps(t, "example_small.txt")
	require.Len(t, steps, 4)

	want := []int{27, 46, 38, 39}
	r := cuboid.NewReactor()
	for i, s := range steps {
		r.Apply(s)
		assert.Equal(t, want[i], r.TotalOn(), "after step %d", i+1)
		assertDisjoint(t, r)
	}
}

// TestReactor_InitializationRegion processes only the prefix inside [-50,50]^3.
func TestReactor_InitializationRegion(t *testing.T) {
	steps := loadSteps(t, "example_large.txt")
	region := cuboid.Cube(iv(-50, 50))

	n := cuboid.InitializationPrefix(steps, region)
	require.Equal(t, 20, n)

	var r cuboid.Reactor
	r.ApplyAll(steps[:n])
	assert.Equal(t, 590784, r.TotalOn())
	assertDisjoint(t, &r)

	r.ApplyAll(steps[n:])
	assert.Greater(t, r.TotalOn(), 590784)
	assertDisjoint(t, &r)
}

// TestReactor_OffThenOn verifies that switching an unlit region off is a no-op
// and that re-lighting a lit region does not double count.
func TestReactor_OffThenOn(t *testing.T) {
	r := cuboid.NewReactor()
	box := cuboid.Cube(iv(0, 9))

	r.Apply(cuboid.Step{Cuboid: box, On: false})
	assert.Zero(t, r.TotalOn())
	assert.Empty(t, r.Boxes())

	r.Apply(cuboid.Step{Cuboid: box, On: true})
	r.Apply(cuboid.Step{Cuboid: box, On: true})
	assert.Equal(t, 1000, r.TotalOn())

	r.Apply(cuboid.Step{Cuboid: cuboid.Cube(iv(-5, 20)), On: false})
	assert.Zero(t, r.TotalOn())
}

// TestReactor_MatchesBruteForce replays random steps against a cell set.
func TestReactor_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2021))
	r := cuboid.NewReactor()
	lit := map[cell]bool{}

	for n := 0; n < 60; n++ {
		s := cuboid.Step{Cuboid: randomCuboid(rng), On: rng.Intn(3) > 0}
		r.Apply(s)
		for _, c := range cells(s.Cuboid) {
			if s.On {
				lit[c] = true
			} else {
				delete(lit, c)
			}
		}
		require.Equal(t, len(lit), r.TotalOn(), "after step %d (%v)", n, s.Cuboid)
	}
	assertDisjoint(t, r)
}

// TestParseStep covers the accepted format and its failure modes.
func TestParseStep(t *testing.T) {
	s, err := cuboid.ParseStep("off x=-48..-32,y=26..41,z=-47..-37")
	require.NoError(t, err)
	assert.False(t, s.On)
	assert.Equal(t, cuboid.New(iv(-48, -32), iv(26, 41), iv(-47, -37)), s.Cuboid)

	cases := []struct {
		name string
		line string
		err  error
	}{
		{"BadState", "toggle x=1..2,y=1..2,z=1..2", cuboid.ErrSyntax},
		{"NoRanges", "on", cuboid.ErrSyntax},
		{"TwoAxes", "on x=1..2,y=1..2", cuboid.ErrSyntax},
		{"WrongOrder", "on y=1..2,x=1..2,z=1..2", cuboid.ErrSyntax},
		{"NoDots", "on x=1-2,y=1..2,z=1..2", cuboid.ErrSyntax},
		{"NotNumber", "on x=a..2,y=1..2,z=1..2", cuboid.ErrSyntax},
		{"Inverted", "on x=3..2,y=1..2,z=1..2", cuboid.ErrInvalidBounds},
		{"Empty", "", cuboid.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cuboid.ParseStep(tc.line)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParseSteps_LineNumbers reports the failing line.
func TestParseSteps_LineNumbers(t *testing.T) {
	_, err := cuboid.ParseSteps("on x=1..2,y=1..2,z=1..2\n\non x=1..2,y=1..2,z=1..2\n")
	require.ErrorIs(t, err, cuboid.ErrSyntax)
	assert.Contains(t, err.Error(), "line 2")

	_, err = cuboid.ParseSteps("on x=1..2,y=1..2,z=1..2\n\n\n")
	require.ErrorIs(t, err, cuboid.ErrSyntax, "only one trailing newline is allowed")
	assert.Contains(t, err.Error(), "line 2")

	steps, err := cuboid.ParseSteps("on x=1..2,y=1..2,z=1..2\r\noff x=1..1,y=1..1,z=1..1\r\n")
	require.NoError(t, err)
	assert.Len(t, steps, 2)

	steps, err = cuboid.ParseSteps("")
	assert.NoError(t, err)
	assert.Empty(t, steps)
}

// TestReactor_ExtremeBounds switches off a box reaching math.MinInt.
func TestReactor_ExtremeBounds(t *testing.T) {
	steps, err := cuboid.ParseSteps(fmt.Sprintf(
		"on x=0..3,y=0..0,z=0..0\noff x=%d..1,y=0..0,z=0..0\non x=%d..%d,y=5..5,z=5..5\noff x=3..%d,y=5..5,z=5..5\n",
		math.MinInt, math.MaxInt-2, math.MaxInt, math.MaxInt))
	require.NoError(t, err)

	r := cuboid.NewReactor()
	r.ApplyAll(steps[:2])
	assert.Equal(t, 2, r.TotalOn())
	assert.Equal(t, []cuboid.Cuboid{cuboid.New(iv(2, 3), iv(0, 0), iv(0, 0))}, r.Boxes())

	r.ApplyAll(steps[2:])
	assert.Equal(t, 2, r.TotalOn())
	assertDisjoint(t, r)
}
