// SPDX-License-Identifier: MIT
// Package: volcanium/builder
//
// impl_weights.go — release-rate assignment.

package builder

import "fmt"

const (
	methodWeights       = "Weights"
	methodRandomRewards = "RandomRewards"
)

// Weights assigns ws[i] to the i-th node added so far.
// Errors: ErrConstructFailed when len(ws) exceeds the number of nodes.
func Weights(ws ...uint64) Constructor {
	return func(ns *NodeSet, _ builderConfig) error {
		if len(ws) > ns.Len() {
			return fmt.Errorf("%s: %d weights for %d nodes: %w", methodWeights, len(ws), ns.Len(), ErrConstructFailed)
		}
		for i, w := range ws {
			ns.setWeight(i, w)
		}

		return nil
	}
}

// RandomRewards picks k distinct nodes other than node 0 (the start) and gives
// each a release rate uniform in [1, maxRate].
//
// Errors: ErrTooFewNodes (k < 0 or maxRate < 1), ErrConstructFailed (k > nodes-1),
// ErrNeedRandSource (no RNG).
func RandomRewards(k int, maxRate uint64) Constructor {
	return func(ns *NodeSet, cfg builderConfig) error {
		if k < 0 || maxRate < 1 {
			return fmt.Errorf("%s: k=%d maxRate=%d: %w", methodRandomRewards, k, maxRate, ErrTooFewNodes)
		}
		if k > ns.Len()-1 {
			return fmt.Errorf("%s: k=%d > %d candidates: %w", methodRandomRewards, k, ns.Len()-1, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRewards, ErrNeedRandSource)
		}
		// Partial Fisher–Yates over positions 1..n-1.
		pos := make([]int, ns.Len()-1)
		for i := range pos {
			pos[i] = i + 1
		}
		for i := 0; i < k; i++ {
			j := i + cfg.rng.Intn(len(pos)-i)
			pos[i], pos[j] = pos[j], pos[i]
			ns.setWeight(pos[i], 1+uint64(cfg.rng.Int63n(int64(maxRate))))
		}

		return nil
	}
}
