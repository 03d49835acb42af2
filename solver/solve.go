package solver

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/volcanium/bitmask"
	"github.com/katalvlaran/volcanium/combine"
	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/search"
)

// Solve computes the single-agent and two-agent maxima for g starting at start.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Both budgets must be ≥ 0 (ErrNegativeBudget).
//  3. start must name a node (core.ErrNodeNotFound).
//  4. The reward-bearing valves must fit the mask width (bitmask.ErrCapacityExceeded,
//     bitmask.ErrBadWidth).
//
// Valves that cannot be reached from a node are simply absent from its distance row.
func Solve(g *core.Graph, start string, b Budgets, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if b.Single < 0 || b.Pair < 0 {
		return Result{}, fmt.Errorf("%w: single=%d pair=%d", ErrNegativeBudget, b.Single, b.Pair)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger.WithField("start", start)

	from, err := g.Lookup(start)
	if err != nil {
		return Result{}, fmt.Errorf("solver: start: %w", err)
	}

	// Capacity first: no search work before the index is known to fit.
	var idxOpts []bitmask.Option
	if cfg.Width != 0 {
		idxOpts = append(idxOpts, bitmask.WithWidth(cfg.Width))
	}
	idx, err := bitmask.NewIndex(g, idxOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("solver: %w", err)
	}

	began := time.Now()
	dt, err := distance.Build(g)
	if err != nil {
		return Result{}, fmt.Errorf("solver: %w", err)
	}
	log.WithFields(logrus.Fields{
		"stage":     "distance",
		"nodes":     g.Len(),
		"rewarding": idx.Len(),
		"elapsed":   time.Since(began),
	}).Debug("distance table built")

	var res Result

	// Single agent.
	began = time.Now()
	var singleOpts []search.Option
	if cfg.Pruning {
		singleOpts = append(singleOpts, search.WithBoundPruning())
	}
	single, err := search.Enumerate(g, dt, idx, from, b.Single, singleOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("solver: single: %w", err)
	}
	res.Single = single.Max()
	res.SingleOpened = decode(g, idx, single.ArgMax())
	res.SingleStats = single.Stats()
	log.WithFields(logrus.Fields{
		"stage":   "single",
		"budget":  b.Single,
		"masks":   single.Len(),
		"popped":  res.SingleStats.Popped,
		"pruned":  res.SingleStats.Pruned,
		"elapsed": time.Since(began),
	}).Debug("single-agent search done")

	// Two agents: unpruned, every mask's best is needed.
	began = time.Now()
	pair, err := search.Enumerate(g, dt, idx, from, b.Pair)
	if err != nil {
		return Result{}, fmt.Errorf("solver: pair: %w", err)
	}
	res.PairStats = pair.Stats()
	res.PairTableSize = pair.Len()

	best, err := combine.Parallel(cfg.Context, pair.Entries(), cfg.Workers)
	if err != nil {
		return Result{}, fmt.Errorf("solver: combine: %w", err)
	}
	res.Pair = best.Reward
	res.PairOpened = [2][]string{decode(g, idx, best.A), decode(g, idx, best.B)}
	log.WithFields(logrus.Fields{
		"stage":   "pair",
		"budget":  b.Pair,
		"masks":   res.PairTableSize,
		"popped":  res.PairStats.Popped,
		"workers": cfg.Workers,
		"elapsed": time.Since(began),
	}).Debug("two-agent search done")

	return res, nil
}

// decode turns a mask into valve IDs in bit order.
func decode(g *core.Graph, idx *bitmask.Index, m bitmask.Mask) []string {
	nodes := idx.Nodes(m)
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = g.ID(n)
	}

	return ids
}
