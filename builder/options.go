// SPDX-License-Identifier: MIT
// Package: volcanium/builder
//
// options.go — BuilderOption constructors.
//
// Contract:
//   • Nil arguments are programmer errors and panic at option construction.
//   • Randomness is opt-in: stochastic constructors fail with ErrNeedRandSource
//     unless WithRand or WithSeed was supplied.

package builder

import "math/rand"

// BuilderOption adjusts builderConfig before any Constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme replaces ValveID as the index → ID mapping. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand shares r with RandomSparse and RandomRewards. Panics on nil.
// The caller must not use r concurrently with a running build.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))); equal seeds give equal fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
