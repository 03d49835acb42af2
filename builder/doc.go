// SPDX-License-Identifier: MIT
// Package builder assembles deterministic valve-graph fixtures.
//
// Constructors append nodes and tunnels to a shared NodeSet in call order, so the same
// options, seed and constructor list always yield the same []core.Node:
//
//	nodes, err := builder.BuildNodes(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Path(6),
//	    builder.RandomRewards(3, 25),
//	)
//
// Tunnels are always recorded on both endpoints, the way scan reports list them.
// Node IDs come from the configured ID scheme; the default ValveID yields "AA", "AB", …
// so the first node is the conventional start valve.
//
// Sample() reproduces the ten-valve reference report used throughout the test suites
// (single agent, 30 minutes: 1651; two agents, 26 minutes: 1707).
package builder
