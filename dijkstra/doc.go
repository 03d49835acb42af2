// Package dijkstra provides a generic single-source shortest-path engine over
// non-negative edge costs.
//
// Overview:
//
//   - The graph is never materialized: callers pass a successor function
//     (node → []Step{To, Cost}) and the engine explores lazily from the start node.
//   - Nodes can be any comparable type (dense int indices, string IDs, grid points).
//   - UnitSteps adapts a plain neighbor function to unit-cost steps, which is how
//     valve tunnels are traversed; weighted searches supply their own costs.
//
// Call shapes:
//
//   - Distances(start, succ):             every reachable node with its distance.
//   - ShortestPath(start, isGoal, succ):  distance to the first node satisfying isGoal.
//
// Unreachable nodes are simply absent from Distances, and ShortestPath reports
// (0, false, nil) when no goal is reachable; no sentinel distance is ever returned.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with a container/heap min-heap.
//   - Space: O(V + E) under the “lazy decrease-key” strategy: improved distances are
//     pushed as new heap entries and stale entries are skipped when popped.
//   - Ties are broken arbitrarily; all tied paths have equal length.
//
// Error handling (sentinel errors):
//
//   - ErrNilSuccessors:  successor function is nil.
//   - ErrNilGoal:        goal predicate is nil (ShortestPath only).
//   - ErrNegativeCost:   a step reported a negative cost (wrapped with the step).
//   - ErrBadMaxDistance: WithMaxDistance received a negative value (panics).
//
// Thread safety:
//
//   - Each call owns its state; concurrent calls are safe as long as the successor
//     function is.
package dijkstra
