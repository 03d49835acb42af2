// Package bitmask assigns each reward-bearing valve one bit of a machine word so
// that a set of opened valves fits in a single integer.
//
// Capacity:
//
//   - Mask is a uint64, so at most MaxWidth reward-bearing valves can be indexed.
//   - WithWidth narrows the usable width (the reference reports fit in 16 bits).
//   - Exceeding the width is a configuration error reported before any search runs;
//     the index never truncates or wraps.
package bitmask

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/volcanium/core"
)

// MaxWidth is the number of bits available in a Mask.
const MaxWidth = 64

// Sentinel errors for index construction.
var (
	// ErrCapacityExceeded indicates more reward-bearing nodes than usable bits.
	ErrCapacityExceeded = errors.New("bitmask: too many reward-bearing nodes for mask width")

	// ErrBadWidth indicates a width outside [1, MaxWidth].
	ErrBadWidth = errors.New("bitmask: width must be in [1,64]")

	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("bitmask: graph is nil")
)

// Mask is a set of opened reward-bearing nodes, one bit per node.
type Mask uint64

// Has reports whether m shares at least one bit with bit; for a single-node
// bit this is plain membership.
func (m Mask) Has(bit Mask) bool { return m&bit != 0 }

// Disjoint reports whether m and other share no bit.
func (m Mask) Disjoint(other Mask) bool { return m&other == 0 }

// Count returns the number of opened nodes in m.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Option configures an Index.
type Option func(*options)

type options struct {
	width int
	err   error
}

// WithWidth limits the number of usable bits. Invalid widths are recorded and
// surfaced as ErrBadWidth by NewIndex.
func WithWidth(width int) Option {
	return func(o *options) {
		if width < 1 || width > MaxWidth {
			o.err = fmt.Errorf("%w: got %d", ErrBadWidth, width)
			return
		}
		o.width = width
	}
}

// Index maps node indices to their bit. Non-reward-bearing nodes map to 0.
type Index struct {
	bits  []Mask // node index → bit (0 for zero-rate nodes)
	nodes []int  // bit position → node index
	width int
}

// NewIndex assigns bits to the reward-bearing nodes of g in input order.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrBadWidth: WithWidth received a value outside [1,64].
//   - ErrCapacityExceeded: g has more reward-bearing nodes than the width allows.
func NewIndex(g *core.Graph, opts ...Option) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := options{width: MaxWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	rewarding := g.RewardBearing()
	if len(rewarding) > cfg.width {
		return nil, fmt.Errorf("%w: %d nodes, width %d", ErrCapacityExceeded, len(rewarding), cfg.width)
	}

	idx := &Index{
		bits:  make([]Mask, g.Len()),
		nodes: rewarding,
		width: cfg.width,
	}
	for pos, node := range rewarding {
		idx.bits[node] = Mask(1) << uint(pos)
	}

	return idx, nil
}

// Bit returns the mask bit of node i, or 0 if the node is not reward-bearing.
func (x *Index) Bit(i int) Mask { return x.bits[i] }

// Len returns the number of indexed (reward-bearing) nodes.
func (x *Index) Len() int { return len(x.nodes) }

// Width returns the configured mask width.
func (x *Index) Width() int { return x.width }

// Full returns the mask with every indexed node set.
func (x *Index) Full() Mask {
	if len(x.nodes) == MaxWidth {
		return ^Mask(0)
	}

	return Mask(1)<<uint(len(x.nodes)) - 1
}

// Nodes decodes m into node indices in ascending bit order.
// Bits beyond Len() are ignored.
func (x *Index) Nodes(m Mask) []int {
	m &= x.Full()
	out := make([]int, 0, m.Count())
	for m != 0 {
		pos := bits.TrailingZeros64(uint64(m))
		out = append(out, x.nodes[pos])
		m &= m - 1
	}

	return out
}
