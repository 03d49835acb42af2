// SPDX-License-Identifier: MIT
// Package: volcanium/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildNodes(bopts, cons...). Resolves cfg, runs cons in order.
//   • BuildGraph wraps BuildNodes and hands the result to core.NewGraph.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical nodes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/volcanium/core"
)

// Constructor applies a deterministic mutation to the NodeSet using the resolved
// builderConfig. Constructors validate parameters early and return sentinel errors.
type Constructor func(ns *NodeSet, cfg builderConfig) error

// NodeSet is the ordered node list under construction.
// Node order is insertion order; tunnels are stored on both endpoints.
type NodeSet struct {
	nodes []core.Node
	index map[string]int
	links map[[2]int]struct{}
}

func newNodeSet() *NodeSet {
	return &NodeSet{
		index: make(map[string]int),
		links: make(map[[2]int]struct{}),
	}
}

// Len returns the number of nodes added so far.
func (ns *NodeSet) Len() int { return len(ns.nodes) }

// ensure adds id if missing and returns its position.
func (ns *NodeSet) ensure(id string) int {
	if i, ok := ns.index[id]; ok {
		return i
	}
	ns.index[id] = len(ns.nodes)
	ns.nodes = append(ns.nodes, core.Node{ID: id})

	return len(ns.nodes) - 1
}

// tunnel records u—v on both endpoints once; self-tunnels are ignored.
func (ns *NodeSet) tunnel(u, v string) {
	i, j := ns.ensure(u), ns.ensure(v)
	if i == j {
		return
	}
	key := [2]int{min(i, j), max(i, j)}
	if _, ok := ns.links[key]; ok {
		return
	}
	ns.links[key] = struct{}{}
	ns.nodes[i].Neighbors = append(ns.nodes[i].Neighbors, v)
	ns.nodes[j].Neighbors = append(ns.nodes[j].Neighbors, u)
}

// setWeight assigns the release rate of the node at position i.
func (ns *NodeSet) setWeight(i int, w uint64) { ns.nodes[i].Weight = w }

// BuildNodes resolves the builder configuration and applies all constructors in order.
// Any constructor error is wrapped with "BuildNodes: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor.
func BuildNodes(bopts []BuilderOption, cons ...Constructor) ([]core.Node, error) {
	cfg := newBuilderConfig(bopts...)
	ns := newNodeSet()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNodes: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(ns, cfg); err != nil {
			return nil, fmt.Errorf("BuildNodes: %w", err)
		}
	}

	return ns.nodes, nil
}

// BuildGraph is BuildNodes followed by core.NewGraph(nodes, gopts...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	nodes, err := BuildNodes(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(nodes, gopts...)
}
