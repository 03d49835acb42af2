// Package combine pairs two disjoint opened-valve sets from one BestTable to
// assemble the best plan for two agents working the same budget side by side.
//
// For a table T, the answer is max over (a, b) ∈ keys(T)², a&b == 0, of T[a]+T[b].
// The empty mask is a legal partner (one agent may open nothing), and a == b is only
// possible for the empty mask.
//
// Three interchangeable scans are provided; all return the same Pair, including
// the tie-break (higher reward, then smaller A, then smaller B):
//
//   - Naive:    the reference O(n²) scan.
//   - Sorted:   the same answer with entries ordered by reward, stopping each inner
//     scan at the first disjoint partner and the outer scan once no partner can help.
//   - Parallel: the reference scan with the outer loop split across an errgroup.
//     Workers share the entry slice read-only and each writes only its own slot.
package combine

import (
	"github.com/katalvlaran/volcanium/bitmask"
)

// Pair is the chosen pair of disjoint opened sets and their combined reward.
type Pair struct {
	A, B   bitmask.Mask
	Reward uint64
}

// better reports whether p beats q under the package tie-break.
func better(p, q Pair) bool {
	if p.Reward != q.Reward {
		return p.Reward > q.Reward
	}
	if p.A != q.A {
		return p.A < q.A
	}

	return p.B < q.B
}
