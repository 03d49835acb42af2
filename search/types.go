package search

import (
	"errors"
	"sort"

	"github.com/katalvlaran/volcanium/bitmask"
)

var (
	// ErrNilInput is returned when the graph, distance table or bit index is nil.
	ErrNilInput = errors.New("search: graph, distance table and index are required")

	// ErrTableMismatch is returned when the distance table was built for another graph.
	ErrTableMismatch = errors.New("search: distance table does not match graph")

	// ErrStartOutOfRange is returned when the start index is not a node of the graph.
	ErrStartOutOfRange = errors.New("search: start node out of range")

	// ErrNegativeBudget is returned when the time budget is below zero.
	ErrNegativeBudget = errors.New("search: budget must be non-negative")
)

// State is one point of the enumeration.
type State struct {
	Node      int          // current node index
	Remaining int          // time left, ≥ 0
	Opened    bitmask.Mask // valves opened so far
	Reward    uint64       // release accumulated by the opened valves
}

// Option configures Enumerate.
type Option func(*Options)

// Options holds the enumeration knobs.
type Options struct {
	// BoundPruning enables the admissible upper-bound prune.
	BoundPruning bool

	// OnState, if non-nil, is called for every popped state.
	OnState func(State)
}

// DefaultOptions returns Options with pruning disabled and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithBoundPruning enables the upper-bound prune. See the package doc for the
// guarantee it keeps.
func WithBoundPruning() Option {
	return func(o *Options) { o.BoundPruning = true }
}

// WithOnState registers a hook run for every popped state.
func WithOnState(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnState = fn
		}
	}
}

// Stats counts the work done by one enumeration.
type Stats struct {
	Pushed int // states pushed, including the initial one
	Popped int // states popped and recorded
	Pruned int // popped states whose expansion was skipped by the bound
}

// Entry is one row of a BestTable.
type Entry struct {
	Mask   bitmask.Mask
	Reward uint64
}

// BestTable holds the best reward observed for each exact set of opened valves.
// Entries only ever increase while it is being built; afterwards it is read-only.
type BestTable struct {
	best   map[bitmask.Mask]uint64
	max    uint64
	pruned bool
	stats  Stats
}

func newBestTable() *BestTable {
	return &BestTable{best: make(map[bitmask.Mask]uint64)}
}

func (t *BestTable) record(m bitmask.Mask, reward uint64) {
	if cur, ok := t.best[m]; !ok || reward > cur {
		t.best[m] = reward
	}
	if reward > t.max {
		t.max = reward
	}
}

// Get returns the best reward recorded for exactly m.
func (t *BestTable) Get(m bitmask.Mask) (uint64, bool) {
	r, ok := t.best[m]

	return r, ok
}

// Len returns the number of distinct masks recorded.
func (t *BestTable) Len() int { return len(t.best) }

// Max returns the best reward over all masks.
func (t *BestTable) Max() uint64 { return t.max }

// Pruned reports whether the table was built with bound pruning, in which case
// only Max is exact.
func (t *BestTable) Pruned() bool { return t.pruned }

// Stats returns the enumeration counters.
func (t *BestTable) Stats() Stats { return t.stats }

// Entries returns a snapshot of the table sorted by mask ascending.
func (t *BestTable) Entries() []Entry {
	out := make([]Entry, 0, len(t.best))
	for m, r := range t.best {
		out = append(out, Entry{Mask: m, Reward: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mask < out[j].Mask })

	return out
}

// ArgMax returns the mask holding Max, preferring the smallest mask on ties.
func (t *BestTable) ArgMax() bitmask.Mask {
	var (
		best  bitmask.Mask
		found bool
	)
	for m, r := range t.best {
		if r != t.max {
			continue
		}
		if !found || m < best {
			best, found = m, true
		}
	}

	return best
}
