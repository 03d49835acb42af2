package search

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/volcanium/bitmask"
	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/distance"
)

// Enumerate explores all valve-opening orders from start within budget and
// returns the best reward per opened set.
//
// Preconditions and validation (in order):
//  1. g, dt and idx must be non-nil (ErrNilInput).
//  2. dt must have one row per node of g (ErrTableMismatch).
//  3. start must be a node index of g (ErrStartOutOfRange).
//  4. budget must be ≥ 0 (ErrNegativeBudget).
//
// The returned table always contains the empty mask with reward 0.
func Enumerate(g *core.Graph, dt *distance.Table, idx *bitmask.Index, start, budget int, opts ...Option) (*BestTable, error) {
	if g == nil || dt == nil || idx == nil {
		return nil, ErrNilInput
	}
	if dt.Len() != g.Len() {
		return nil, ErrTableMismatch
	}
	if start < 0 || start >= g.Len() {
		return nil, ErrStartOutOfRange
	}
	if budget < 0 {
		return nil, ErrNegativeBudget
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &walker{g: g, dt: dt, idx: idx, opts: cfg, table: newBestTable()}
	w.table.pruned = cfg.BoundPruning
	w.run(State{Node: start, Remaining: budget})

	return w.table, nil
}

// walker holds the state of one enumeration.
type walker struct {
	g     *core.Graph
	dt    *distance.Table
	idx   *bitmask.Index
	opts  Options
	table *BestTable
}

func (w *walker) run(initial State) {
	stack := arraystack.New()
	stack.Push(initial)
	w.table.stats.Pushed++

	for {
		v, ok := stack.Pop()
		if !ok {
			break
		}
		s := v.(State)
		w.table.stats.Popped++
		if w.opts.OnState != nil {
			w.opts.OnState(s)
		}
		w.table.record(s.Opened, s.Reward)

		if w.opts.BoundPruning {
			if bound := w.bound(s); bound > 0 && s.Reward+bound <= w.table.max {
				w.table.stats.Pruned++
				continue
			}
		}

		for _, e := range w.dt.Row(s.Node) {
			bit := w.idx.Bit(e.To)
			if e.Dist+1 > s.Remaining || s.Opened.Has(bit) {
				continue
			}
			rem := s.Remaining - e.Dist - 1
			stack.Push(State{
				Node:      e.To,
				Remaining: rem,
				Opened:    s.Opened | bit,
				Reward:    s.Reward + uint64(rem)*w.g.Weight(e.To),
			})
			w.table.stats.Pushed++
		}
	}
}

// bound is the release obtainable if every unopened, affordable valve could be
// opened straight from the current node. No path can do better, since each valve
// opens at most once and never earlier than dist+1.
func (w *walker) bound(s State) uint64 {
	var total uint64
	for _, e := range w.dt.Row(s.Node) {
		if e.Dist+1 > s.Remaining || s.Opened.Has(w.idx.Bit(e.To)) {
			continue
		}
		total += uint64(s.Remaining-e.Dist-1) * w.g.Weight(e.To)
	}

	return total
}
