// Package dijkstra implements the lazy decrease-key search loop.
//
// Notes on implementation choices:
//
//   - Negative step costs are detected during relaxation and abort the search,
//     since the successor function is opaque and cannot be pre-scanned.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - A goal predicate, when present, is tested when a node is finalized, so the
//     reported distance is always the true shortest one.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Distances computes the shortest distance from start to every node reachable
// through succ. The start node is always present with distance 0.
//
// Returns:
//
//   - dist: map from node to its minimal distance; unreachable nodes are absent.
//   - err:  ErrNilSuccessors or ErrNegativeCost.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances[T comparable](start T, succ Successors[T], opts ...Option) (map[T]int64, error) {
	if succ == nil {
		return nil, ErrNilSuccessors
	}

	r := newRunner(start, succ, nil, opts)
	if _, _, err := r.process(); err != nil {
		return nil, err
	}

	return r.final, nil
}

// ShortestPath returns the distance from start to the nearest node satisfying
// isGoal. found is false when no goal node is reachable (within MaxDistance);
// in that case the distance is 0 and carries no meaning.
//
// The start node itself is tested first, so isGoal(start) yields (0, true, nil).
func ShortestPath[T comparable](start T, isGoal func(T) bool, succ Successors[T], opts ...Option) (int64, bool, error) {
	if succ == nil {
		return 0, false, ErrNilSuccessors
	}
	if isGoal == nil {
		return 0, false, ErrNilGoal
	}

	r := newRunner(start, succ, isGoal, opts)
	d, found, err := r.process()
	if err != nil {
		return 0, false, err
	}

	return d, found, nil
}

// runner holds the mutable state for a single search.
type runner[T comparable] struct {
	options Options
	succ    Successors[T]
	isGoal  func(T) bool
	dist    map[T]int64 // best-known tentative distances
	final   map[T]int64 // finalized distances
	pq      nodePQ[T]
}

func newRunner[T comparable](start T, succ Successors[T], isGoal func(T) bool, opts []Option) *runner[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[T]{
		options: cfg,
		succ:    succ,
		isGoal:  isGoal,
		dist:    map[T]int64{start: 0},
		final:   make(map[T]int64),
		pq:      make(nodePQ[T], 0, 16),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[T]{id: start, dist: 0})

	return r
}

// process pops the closest node until the heap drains, the distance cap is
// exceeded, or a goal node is finalized.
func (r *runner[T]) process() (int64, bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u, d := item.id, item.dist

		// Stale heap entry.
		if _, done := r.final[u]; done {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.final[u] = d

		if r.isGoal != nil && r.isGoal(u) {
			return d, true, nil
		}

		if err := r.relax(u, d); err != nil {
			return 0, false, err
		}
	}

	return 0, false, nil
}

// relax pushes every strictly improved neighbor of u.
func (r *runner[T]) relax(u T, du int64) error {
	for _, s := range r.succ(u) {
		if s.Cost < 0 {
			return fmt.Errorf("%w: step %v→%v cost=%d", ErrNegativeCost, u, s.To, s.Cost)
		}
		if _, done := r.final[s.To]; done {
			continue
		}
		nd := du + s.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.dist[s.To]; seen && nd >= cur {
			continue
		}
		r.dist[s.To] = nd
		heap.Push(&r.pq, &nodeItem[T]{id: s.To, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem[T comparable] struct {
	id   T
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ[T comparable] []*nodeItem[T]

func (pq nodePQ[T]) Len() int            { return len(pq) }
func (pq nodePQ[T]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[T]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[T]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[T])) }

func (pq *nodePQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
