// SPDX-License-Identifier: MIT
// Package: volcanium/builder
//
// impl_topology.go — Path, Star, Complete and RandomSparse tunnel layouts.
//
// Contract:
//   • Nodes are added via cfg.idFn in ascending index order (0..n-1).
//   • Tunnels are emitted in a stable order (i asc, j asc).
//   • Weights are left at zero; use Weights / RandomRewards afterwards.

package builder

import "fmt"

const (
	methodPath         = "Path"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	minPathNodes       = 1
	minStarNodes       = 2
	minCompleteNodes   = 1
)

// Path returns a Constructor that lays out n nodes in a line: 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(ns *NodeSet, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		ns.ensure(cfg.idFn(0))
		for i := 1; i < n; i++ {
			ns.tunnel(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}

// Star returns a Constructor with hub 0 and leaves 1..n-1.
func Star(n int) Constructor {
	return func(ns *NodeSet, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			ns.tunnel(hub, cfg.idFn(i))
		}

		return nil
	}
}

// Complete returns a Constructor linking every pair of the n nodes.
func Complete(n int) Constructor {
	return func(ns *NodeSet, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		ns.ensure(cfg.idFn(0))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ns.tunnel(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that includes each tunnel {i,j}, i<j,
// independently with probability p. When connected is true, a spanning chain
// 0—1—…—(n-1) is laid first so every node is reachable from node 0.
//
// Errors: ErrTooFewNodes (n < 1), ErrInvalidProbability, ErrNeedRandSource (0<p<1 without RNG).
func RandomSparse(n int, p float64, connected bool) Constructor {
	return func(ns *NodeSet, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minPathNodes, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			ns.ensure(cfg.idFn(i))
		}
		if connected {
			for i := 1; i < n; i++ {
				ns.tunnel(cfg.idFn(i-1), cfg.idFn(i))
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (cfg.rng != nil && cfg.rng.Float64() < p) {
					ns.tunnel(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
