// Package search enumerates every profitable order of opening valves from a start
// valve within a time budget, and records the best release achieved for each
// distinct set of opened valves.
//
// State machine (explicit stack, no recursion):
//
//   - Initial state: (start, budget, ∅, 0).
//   - Transition: for each reward-bearing valve m in the start row of the distance
//     table that is not yet open and satisfies dist+1 ≤ remaining, push
//     (m, remaining−dist−1, opened|bit(m), reward + (remaining−dist−1)·rate(m)).
//     The release is credited with the time left after opening, never before.
//   - Every popped state, terminal or not, updates best[opened] = max(best[opened], reward).
//     A short path that stops early may still be half of the best two-agent plan.
//
// Options:
//
//   - WithBoundPruning()  skip expanding a state whose reward plus an admissible
//     bound (each unopened reachable valve opened as early as possible) cannot beat
//     the best reward seen so far. Only BestTable.Max is preserved under pruning;
//     per-mask entries may be missing, so pruned tables must not feed a combiner.
//   - WithOnState(fn)     hook invoked for every popped state, in pop order.
//
// Errors:
//
//   - ErrNilInput          graph, table or index is nil.
//   - ErrTableMismatch     table rows do not match the graph.
//   - ErrStartOutOfRange   start is not a valid node index.
//   - ErrNegativeBudget    budget < 0.
//
// Complexity: exponential in the number of reward-bearing valves reachable within
// the budget; memory is O(depth · R) for the stack plus one entry per distinct mask.
package search
