// File: types.go
// Role: Node, Graph, GraphOption and sentinel errors.
// Determinism:
//   - Node indices follow input order; RewardBearing() preserves that order.
// Concurrency:
//   - Graph is immutable after NewGraph returns; all methods are safe for concurrent use.

package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrNoNodes indicates that NewGraph was called without any node.
	ErrNoNodes = errors.New("core: graph has no nodes")

	// ErrEmptyNodeID indicates that a node or neighbor ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that two nodes share the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDanglingNeighbor indicates a neighbor ID that does not name any node.
	ErrDanglingNeighbor = errors.New("core: neighbor references unknown node")

	// ErrNodeNotFound indicates a lookup of an ID that is not part of the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node is the parsed description of a single valve.
//
// ID is an opaque identifier (two upper-case letters in scan reports).
// Weight is the release rate; nodes with Weight > 0 are reward-bearing.
// Neighbors lists the IDs reachable from this node in one unit of time.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string

	// Weight is the non-negative release rate of the node.
	Weight uint64

	// Neighbors are the IDs of adjacent nodes, in input order.
	Neighbors []string
}

// GraphOption configures a Graph before its adjacency is resolved.
type GraphOption func(g *Graph)

// WithDirected selects whether neighbor lists are one-way (true, the default)
// or mirrored so that every edge is traversable in both directions (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the immutable arena built from a list of Nodes.
//
// ids, weights and adjacency are parallel slices indexed by the dense node index.
// index maps an external ID back to its dense index.
// rewarding caches the indices of reward-bearing nodes in input order.
type Graph struct {
	// Configuration flags
	directed bool // neighbor lists are one-way

	// Storage
	ids       []string       // index → ID
	weights   []uint64       // index → weight
	adjacency [][]int        // index → neighbor indices (deduplicated, first-seen order)
	index     map[string]int // ID → index
	rewarding []int          // indices with weight > 0
}
