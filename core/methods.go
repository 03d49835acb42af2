// File: methods.go
// Role: Graph construction and read-only queries.
// Determinism:
//   - Indices are assigned in input order; Neighbors(i) keeps first-seen order.
// Concurrency:
//   - No locks: every method reads immutable state.

package core

import "fmt"

// NewGraph validates nodes and resolves them into an immutable index arena.
//
// Implementation:
//   - Stage 1: Apply options (default: directed neighbor lists).
//   - Stage 2: Register every node ID, rejecting empty and duplicate IDs.
//   - Stage 3: Resolve neighbor IDs to indices, rejecting dangling references;
//     mirror each edge when the graph is undirected.
//   - Stage 4: Cache the reward-bearing node indices.
//
// Behavior highlights:
//   - The input slice and its Neighbors slices are copied; later mutation by the
//     caller does not affect the Graph.
//   - Repeated neighbor IDs collapse into a single unit edge.
//
// Errors:
//   - ErrNoNodes: len(nodes) == 0.
//   - ErrEmptyNodeID: a node or neighbor ID is "".
//   - ErrDuplicateNode: an ID occurs twice (wrapped with the ID).
//   - ErrDanglingNeighbor: a neighbor ID is unknown (wrapped with both IDs).
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func NewGraph(nodes []Node, opts ...GraphOption) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	g := &Graph{directed: true}
	for _, opt := range opts {
		opt(g)
	}

	// Stage 2: register IDs.
	n := len(nodes)
	g.ids = make([]string, n)
	g.weights = make([]uint64, n)
	g.index = make(map[string]int, n)
	for i, node := range nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("%w: node #%d", ErrEmptyNodeID, i)
		}
		if _, dup := g.index[node.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, node.ID)
		}
		g.index[node.ID] = i
		g.ids[i] = node.ID
		g.weights[i] = node.Weight
	}

	// Stage 3: resolve adjacency. seen[i] tracks neighbors already linked from i.
	g.adjacency = make([][]int, n)
	seen := make([]map[int]struct{}, n)
	link := func(from, to int) {
		if seen[from] == nil {
			seen[from] = make(map[int]struct{})
		}
		if _, ok := seen[from][to]; ok {
			return
		}
		seen[from][to] = struct{}{}
		g.adjacency[from] = append(g.adjacency[from], to)
	}
	for i, node := range nodes {
		for _, nb := range node.Neighbors {
			if nb == "" {
				return nil, fmt.Errorf("%w: neighbor of %q", ErrEmptyNodeID, node.ID)
			}
			j, ok := g.index[nb]
			if !ok {
				return nil, fmt.Errorf("%w: %q → %q", ErrDanglingNeighbor, node.ID, nb)
			}
			link(i, j)
			if !g.directed {
				link(j, i)
			}
		}
	}

	// Stage 4: reward-bearing cache.
	for i, w := range g.weights {
		if w > 0 {
			g.rewarding = append(g.rewarding, i)
		}
	}

	return g, nil
}

// Directed reports whether neighbor lists were taken as one-way edges.
func (g *Graph) Directed() bool { return g.directed }

// Len returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.ids) }

// Index returns the dense index of id and whether it exists.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Lookup is like Index but reports a missing ID as ErrNodeNotFound.
func (g *Graph) Lookup(id string) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return i, nil
}

// ID returns the external identifier of node i. It panics if i is out of range,
// like a slice access.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Weight returns the release rate of node i. It panics if i is out of range.
func (g *Graph) Weight(i int) uint64 { return g.weights[i] }

// Neighbors returns the indices adjacent to node i in first-seen order.
// The returned slice is a copy; callers may modify it.
//
// Complexity: O(deg(i)).
func (g *Graph) Neighbors(i int) []int {
	out := make([]int, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out
}

// Degree returns the number of distinct neighbors of node i without copying.
func (g *Graph) Degree(i int) int { return len(g.adjacency[i]) }

// RewardBearing returns the indices of nodes with Weight > 0 in input order.
// The returned slice is a copy.
//
// Complexity: O(R) where R is the number of reward-bearing nodes.
func (g *Graph) RewardBearing() []int {
	out := make([]int, len(g.rewarding))
	copy(out, g.rewarding)

	return out
}

// IDs returns all node IDs in index order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Node reconstructs the Node description of id, with neighbors resolved from the
// arena (mirrored edges included for undirected graphs).
//
// Errors:
//   - ErrNodeNotFound: id is not part of the graph.
func (g *Graph) Node(id string) (Node, error) {
	i, err := g.Lookup(id)
	if err != nil {
		return Node{}, err
	}
	nbs := make([]string, len(g.adjacency[i]))
	for k, j := range g.adjacency[i] {
		nbs[k] = g.ids[j]
	}

	return Node{ID: id, Weight: g.weights[i], Neighbors: nbs}, nil
}
