package maze

import (
	"math/rand"
	"time"
)

// Source is the randomness a Builder draws candidates with.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

// Option configures a Builder via functional arguments.
type Option func(*Options)

// Options holds the knobs of a build.
type Options struct {
	// Rand drives candidate draws. Nil means "seed from the wall clock".
	Rand Source

	// OnResolve is called after every processed candidate, in processing order.
	OnResolve func(Resolution)
}

// DefaultOptions returns Options with a clock-seeded RNG and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Rand:      nil,
		OnResolve: func(Resolution) {},
	}
}

// WithRand provides an explicit randomness source.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r Source) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithOnResolve registers a callback run after each candidate is resolved.
// A nil fn is ignored.
func WithOnResolve(fn func(Resolution)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResolve = fn
		}
	}
}

// resolveOptions applies opts over the defaults and fills in the clock RNG.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
