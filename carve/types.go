// Package carve defines configuration options, the carve result, and
// sentinel errors for maze generation.
package carve

import (
	"errors"
	"math/rand"
)

// ErrNilGrid is returned if a nil grid pointer is passed to Carve.
var ErrNilGrid = errors.New("carve: grid is nil")

// Option configures maze generation via functional arguments.
type Option func(*Options)

// Options holds the randomness configuration for a single Carve call.
type Options struct {
	// Seed drives the default deterministic source. Seed==0 selects a fixed
	// default seed, so the zero Options value is still fully reproducible.
	Seed int64

	// Rand, when non-nil, is used verbatim and Seed is ignored.
	// A *rand.Rand is not goroutine-safe; do not share it across carves
	// running concurrently.
	Rand *rand.Rand
}

// DefaultOptions returns Options with the fixed default seed and no
// caller-supplied source.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed sets the seed for the internal deterministic source.
// Seed 0 keeps the fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies a caller-owned random source. A nil source is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// Result reports what a Carve call did to the grid.
type Result struct {
	// WallsRemoved is the number of passages opened.
	WallsRemoved int

	// Complete is true when WallsRemoved == rows·cols−1, i.e. the passage
	// graph is a spanning tree. False means the maze is under-connected and
	// some cells are unreachable; callers should treat it as a warning.
	Complete bool
}
