// SPDX-License-Identifier: MIT
// Package: volcanium/builder
//
// impl_sample.go — the ten-valve reference report.

package builder

import "github.com/katalvlaran/volcanium/core"

// Reference answers for Sample() with the default budgets.
const (
	SampleSingle uint64 = 1651 // one agent, 30 minutes
	SamplePair   uint64 = 1707 // two agents, 26 minutes each
)

// SampleReport is the scan report text that Sample() encodes.
const SampleReport = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// Sample returns a fresh copy of the reference nodes, in report order.
func Sample() []core.Node {
	return []core.Node{
		{ID: "AA", Weight: 0, Neighbors: []string{"DD", "II", "BB"}},
		{ID: "BB", Weight: 13, Neighbors: []string{"CC", "AA"}},
		{ID: "CC", Weight: 2, Neighbors: []string{"DD", "BB"}},
		{ID: "DD", Weight: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{ID: "EE", Weight: 3, Neighbors: []string{"FF", "DD"}},
		{ID: "FF", Weight: 0, Neighbors: []string{"EE", "GG"}},
		{ID: "GG", Weight: 0, Neighbors: []string{"FF", "HH"}},
		{ID: "HH", Weight: 22, Neighbors: []string{"GG"}},
		{ID: "II", Weight: 0, Neighbors: []string{"AA", "JJ"}},
		{ID: "JJ", Weight: 21, Neighbors: []string{"II"}},
	}
}

// SampleConstructor appends the reference nodes to a NodeSet in report order; it
// is meant to be used alone, since its IDs do not come from cfg.idFn. Neighbor
// order may differ from Sample(), the tunnel sets do not.
func SampleConstructor() Constructor {
	return func(ns *NodeSet, _ builderConfig) error {
		nodes := Sample()
		for _, n := range nodes {
			ns.setWeight(ns.ensure(n.ID), n.Weight)
		}
		for _, n := range nodes {
			for _, nb := range n.Neighbors {
				ns.tunnel(n.ID, nb)
			}
		}

		return nil
	}
}
