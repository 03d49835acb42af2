// Package solver wires the distance table, bit index, path enumerator and
// combiner into the single entry point Solve.
//
// Control flow:
//
//	graph → bit index (capacity check) → distance table → enumerate(single budget) → max
//	                                                    → enumerate(pair budget)  → combine
//
// The bit index is built first so that a graph with too many reward-bearing valves is
// rejected before any search work starts.
package solver

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/volcanium/search"
)

// Default budgets, in minutes.
const (
	DefaultSingleBudget = 30
	DefaultPairBudget   = 26
)

var (
	// ErrNilGraph indicates that Solve received a nil graph.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrNegativeBudget indicates a budget below zero.
	ErrNegativeBudget = errors.New("solver: budgets must be non-negative")
)

// Budgets holds the time available in each mode.
type Budgets struct {
	Single int // one agent
	Pair   int // each of two agents
}

// DefaultBudgets returns {30, 26}.
func DefaultBudgets() Budgets {
	return Budgets{Single: DefaultSingleBudget, Pair: DefaultPairBudget}
}

// Result is the outcome of Solve.
type Result struct {
	// Single is the best release for one agent.
	Single uint64
	// Pair is the best combined release for two agents on disjoint valve sets.
	Pair uint64

	// SingleOpened lists the valves opened by the best single-agent plan, in index order.
	SingleOpened []string
	// PairOpened lists the valves opened by each agent of the best two-agent plan.
	PairOpened [2][]string

	// SingleStats and PairStats report the enumeration work per mode.
	SingleStats search.Stats
	PairStats   search.Stats
	// PairTableSize is the number of distinct opened sets fed to the combiner.
	PairTableSize int
}

// Option configures Solve.
type Option func(*Options)

// Options holds the Solve knobs.
type Options struct {
	Context context.Context    // cancels the combiner only
	Workers int                // combiner goroutines; ≤ 0 means GOMAXPROCS
	Width   int                // bit-mask width; 0 means bitmask.MaxWidth
	Pruning bool               // bound pruning for the single-agent search
	Logger  logrus.FieldLogger // stage diagnostics at Debug level
}

// DefaultOptions returns background context, GOMAXPROCS workers, full width,
// no pruning and the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		Context: context.Background(),
		Workers: 0,
		Width:   0,
		Pruning: false,
		Logger:  logrus.StandardLogger(),
	}
}

// WithContext sets the context used by the parallel combiner.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithWorkers sets the number of combiner goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithWidth narrows the bit-mask width; invalid widths surface as bitmask.ErrBadWidth.
func WithWidth(bits int) Option {
	return func(o *Options) { o.Width = bits }
}

// WithPruning toggles bound pruning for the single-agent search.
func WithPruning(on bool) Option {
	return func(o *Options) { o.Pruning = on }
}

// WithLogger replaces the diagnostics logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
