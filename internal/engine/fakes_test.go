package engine

import (
	"fmt"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advanceDays(n int) { c.now = c.now.AddDate(0, 0, n) }

type seqIDs struct{ n int }

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// scriptedRand replays fixed values so rival outcomes are exact.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	i := r.ints[0]
	r.ints = r.ints[1:]
	if i >= n {
		panic(fmt.Sprintf("scripted index %d out of range %d", i, n))
	}
	return i
}

var testStart = time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)

func testDeps() (Deps, *fakeClock) {
	clock := &fakeClock{now: testStart}
	return Deps{Clock: clock, IDs: &seqIDs{}, Rand: &scriptedRand{}}, clock
}
