package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/core"
)

func triangle() []core.Node {
	return []core.Node{
		{ID: "A", Weight: 0, Neighbors: []string{"B"}},
		{ID: "B", Weight: 5, Neighbors: []string{"C", "C"}},
		{ID: "C", Weight: 7},
	}
}

// TestNewGraph_Errors covers each construction failure.
func TestNewGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		nodes []core.Node
		want  error
	}{
		{"empty", nil, core.ErrNoNodes},
		{"empty id", []core.Node{{ID: ""}}, core.ErrEmptyNodeID},
		{"empty neighbor", []core.Node{{ID: "A", Neighbors: []string{""}}}, core.ErrEmptyNodeID},
		{"duplicate", []core.Node{{ID: "A"}, {ID: "A"}}, core.ErrDuplicateNode},
		{"dangling", []core.Node{{ID: "A", Neighbors: []string{"Z"}}}, core.ErrDanglingNeighbor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.nodes)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

// TestNewGraph_Directed keeps neighbor lists one-way and collapses repeats.
func TestNewGraph_Directed(t *testing.T) {
	g, err := core.NewGraph(triangle())
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{2}, g.Neighbors(1), "duplicate neighbor must collapse")
	assert.Empty(t, g.Neighbors(2))
	assert.Equal(t, []int{1, 2}, g.RewardBearing())
}

// TestNewGraph_Undirected mirrors every edge.
func TestNewGraph_Undirected(t *testing.T) {
	g, err := core.NewGraph(triangle(), core.WithDirected(false))
	require.NoError(t, err)

	assert.False(t, g.Directed())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, []int{1}, g.Neighbors(2))
	assert.Equal(t, 2, g.Degree(1))
}

// TestGraph_Lookup checks the ID ↔ index mapping.
func TestGraph_Lookup(t *testing.T) {
	g, err := core.NewGraph(triangle())
	require.NoError(t, err)

	i, ok := g.Index("C")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, "C", g.ID(i))
	assert.Equal(t, uint64(7), g.Weight(i))

	_, ok = g.Index("Q")
	assert.False(t, ok)
	_, err = g.Lookup("Q")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	n, err := g.Node("B")
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: "B", Weight: 5, Neighbors: []string{"C"}}, n)
	assert.Equal(t, []string{"A", "B", "C"}, g.IDs())
}

// TestGraph_Isolation ensures neither the input nor returned slices alias the arena.
func TestGraph_Isolation(t *testing.T) {
	nodes := triangle()
	g, err := core.NewGraph(nodes)
	require.NoError(t, err)

	nodes[0].Neighbors[0] = "C"
	nodes[1].Weight = 99
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, uint64(5), g.Weight(1))

	nb := g.Neighbors(0)
	nb[0] = 2
	assert.Equal(t, []int{1}, g.Neighbors(0))

	rb := g.RewardBearing()
	rb[0] = 0
	assert.Equal(t, []int{1, 2}, g.RewardBearing())
}
