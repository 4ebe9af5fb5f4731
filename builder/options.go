// SPDX-License-Identifier: MIT
// Package: graphden/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuildOption func(*buildConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves MUST NOT panic.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand,
//     never through a hidden global source.

package builder

import "math/rand"

// BuildOption customizes a generator by mutating a buildConfig before
// sampling begins. Applying N options costs O(N).
type BuildOption func(*buildConfig)

// buildConfig aggregates all knobs used by the generators. It is passed by
// value to the sampling loops (immutable to callers).
type buildConfig struct {
	// RNG for pair and weight draws; nil rejected by the generators.
	rng *rand.Rand
}

// newBuildConfig resolves options in order; later options override earlier.
func newBuildConfig(opts ...BuildOption) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for the sampling draws.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuildOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Identical seed and
// arguments reproduce the exact edge set and insertion order — use this to
// lock fixtures in tests and benchmarks.
func WithSeed(seed int64) BuildOption {
	return func(c *buildConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
