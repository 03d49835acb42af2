package bitmask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/bitmask"
	"github.com/katalvlaran/volcanium/builder"
	"github.com/katalvlaran/volcanium/core"
)

// rewarding builds a path of n+1 nodes where every node but the first carries a rate.
func rewarding(t *testing.T, n int) *core.Graph {
	t.Helper()
	ws := make([]uint64, n+1)
	for i := 1; i <= n; i++ {
		ws[i] = uint64(i)
	}
	g, err := builder.BuildGraph(nil, nil, builder.Path(n+1), builder.Weights(ws...))
	require.NoError(t, err)

	return g
}

func TestNewIndex_Capacity(t *testing.T) {
	cases := []struct {
		name  string
		nodes int
		width int
		fail  bool
	}{
		{"16 of 16", 16, 16, false},
		{"17 of 16", 17, 16, true},
		{"64 of 64", 64, 64, false},
		{"65 of 64", 65, 64, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := bitmask.NewIndex(rewarding(t, tc.nodes), bitmask.WithWidth(tc.width))
			if tc.fail {
				assert.ErrorIs(t, err, bitmask.ErrCapacityExceeded)
				assert.Nil(t, idx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, idx.Len())
			assert.Equal(t, tc.width, idx.Width())
			assert.Equal(t, tc.nodes, idx.Full().Count())
		})
	}
}

func TestNewIndex_Errors(t *testing.T) {
	_, err := bitmask.NewIndex(nil)
	assert.ErrorIs(t, err, bitmask.ErrNilGraph)

	g := rewarding(t, 3)
	for _, w := range []int{0, -1, 65} {
		_, err = bitmask.NewIndex(g, bitmask.WithWidth(w))
		assert.ErrorIs(t, err, bitmask.ErrBadWidth, "width=%d", w)
	}
}

func TestIndex_BitsAndDecode(t *testing.T) {
	g, err := core.NewGraph(builder.Sample())
	require.NoError(t, err)
	idx, err := bitmask.NewIndex(g)
	require.NoError(t, err)

	assert.Equal(t, 6, idx.Len())
	assert.Equal(t, bitmask.Mask(0b111111), idx.Full())

	aa, _ := g.Index("AA")
	bb, _ := g.Index("BB")
	jj, _ := g.Index("JJ")
	assert.Zero(t, idx.Bit(aa), "zero-rate valves have no bit")
	assert.Equal(t, bitmask.Mask(1), idx.Bit(bb))
	assert.Equal(t, bitmask.Mask(1<<5), idx.Bit(jj))

	m := idx.Bit(jj) | idx.Bit(bb)
	assert.Equal(t, []int{bb, jj}, idx.Nodes(m))
	assert.Equal(t, []int{bb}, idx.Nodes(idx.Bit(bb)|1<<40), "bits beyond Len are ignored")
	assert.Empty(t, idx.Nodes(0))
}

func TestMask(t *testing.T) {
	m := bitmask.Mask(0b1010)
	assert.True(t, m.Has(0b10))
	assert.False(t, m.Has(0b1))
	assert.True(t, m.Disjoint(0b0101))
	assert.False(t, m.Disjoint(0b0010))
	assert.True(t, bitmask.Mask(0).Disjoint(0))
	assert.Equal(t, 2, m.Count())
}
