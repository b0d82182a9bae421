package engine

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time to keep transitions deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator creates identifiers for tasks and notes.
type IDGenerator interface {
	New() string
}

// UUIDGenerator issues random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string {
	return uuid.New().String()
}

// Rand is the random source consumed by the rival simulator.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand uses the auto-seeded math/rand/v2 top-level source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Deps are the impure inputs every transition may read.
type Deps struct {
	Clock Clock
	IDs   IDGenerator
	Rand  Rand

	// PrefersDark is the host color-scheme preference, nil when unknown.
	PrefersDark *bool
}

// DefaultDeps returns production dependencies.
func DefaultDeps() Deps {
	return Deps{
		Clock: SystemClock{},
		IDs:   UUIDGenerator{},
		Rand:  globalRand{},
	}
}

func (d Deps) withDefaults() Deps {
	def := DefaultDeps()
	if d.Clock == nil {
		d.Clock = def.Clock
	}
	if d.IDs == nil {
		d.IDs = def.IDs
	}
	if d.Rand == nil {
		d.Rand = def.Rand
	}
	return d
}
