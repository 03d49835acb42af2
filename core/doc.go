// Package core defines the immutable valve graph consumed by every search stage.
//
// A Graph G = (V, E) is built once from parsed nodes and never mutated afterwards:
//
//   - Each node carries an opaque string ID, a non-negative weight (its release rate)
//     and the IDs of the nodes it leads to.
//   - NewGraph resolves every ID to a dense integer index in input order (arena + index),
//     so all downstream tables are plain slices indexed by that integer.
//   - Edges have unit cost. By default each node's neighbor list is taken as its own set
//     of outgoing edges (directed); WithDirected(false) mirrors every edge.
//
// Layout:
//
//   - Distance rows and path enumeration read only []int and []uint64.
//   - The ID→index map is consulted for external lookups, never during search.
//   - A *Graph holds no locks and may be shared between goroutines.
//
// Errors:
//
//	ErrNoNodes          - NewGraph received an empty node list.
//	ErrEmptyNodeID      - a node or neighbor ID is the empty string.
//	ErrDuplicateNode    - two nodes share the same ID.
//	ErrDanglingNeighbor - a neighbor ID does not name any node.
//	ErrNodeNotFound     - a lookup referenced an unknown ID.
//
// Malformed input is always reported with the offending identifier wrapped around the
// sentinel, so callers can both print it and test it with errors.Is.
package core
