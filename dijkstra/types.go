// Package dijkstra defines the step, option and error types used by the engine.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilSuccessors indicates that no successor function was supplied.
	ErrNilSuccessors = errors.New("dijkstra: successor function is nil")

	// ErrNilGoal indicates that ShortestPath received a nil goal predicate.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNegativeCost indicates that a successor step reported a negative cost.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Step is one outgoing edge reported by a successor function.
type Step[T comparable] struct {
	To   T     // destination node
	Cost int64 // non-negative edge cost
}

// Successors enumerates the outgoing steps of a node.
type Successors[T comparable] func(T) []Step[T]

// UnitSteps wraps a neighbor function so that every neighbor costs exactly 1.
func UnitSteps[T comparable](neighbors func(T) []T) Successors[T] {
	if neighbors == nil {
		return nil
	}

	return func(u T) []Step[T] {
		nbs := neighbors(u)
		out := make([]Step[T], len(nbs))
		for i, v := range nbs {
			out[i] = Step[T]{To: v, Cost: 1}
		}

		return out
	}
}

// Options configures the search.
//
// MaxDistance – nodes whose distance would exceed this value are not explored.
// Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxDistance caps exploration at the given distance.
// Panics on negative values.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}
