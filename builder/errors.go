// SPDX-License-Identifier: MIT
// Package: volcanium/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w and the method tag.
//   • Constructors never panic; validation panics are confined to With* options.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG (use WithSeed).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not satisfy its contract,
// e.g. more weights than nodes or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
