package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/volcanium/dijkstra"
)

// weighted is a small directed graph keyed by string:
//
//	A→B(4) A→C(1) C→B(2) B→D(1) E→A(1)
var weighted = map[string][]dijkstra.Step[string]{
	"A": {{To: "B", Cost: 4}, {To: "C", Cost: 1}},
	"B": {{To: "D", Cost: 1}},
	"C": {{To: "B", Cost: 2}},
	"E": {{To: "A", Cost: 1}},
}

func weightedSucc(u string) []dijkstra.Step[string] { return weighted[u] }

// DijkstraSuite exercises both call shapes of the engine.
type DijkstraSuite struct {
	suite.Suite
}

// TestDistances verifies relaxation through a cheaper detour.
func (s *DijkstraSuite) TestDistances() {
	dist, err := dijkstra.Distances("A", weightedSucc)
	require.NoError(s.T(), err)
	require.Equal(s.T(), map[string]int64{"A": 0, "C": 1, "B": 3, "D": 4}, dist)
}

// TestUnreachableAbsent checks that E, which only points into the graph, is not reported.
func (s *DijkstraSuite) TestUnreachableAbsent() {
	dist, err := dijkstra.Distances("A", weightedSucc)
	require.NoError(s.T(), err)
	_, ok := dist["E"]
	require.False(s.T(), ok)
}

// TestShortestPath finds the nearest goal.
func (s *DijkstraSuite) TestShortestPath() {
	d, found, err := dijkstra.ShortestPath("A", func(v string) bool { return v == "D" }, weightedSucc)
	require.NoError(s.T(), err)
	require.True(s.T(), found)
	require.Equal(s.T(), int64(4), d)

	d, found, err = dijkstra.ShortestPath("A", func(v string) bool { return v == "A" }, weightedSucc)
	require.NoError(s.T(), err)
	require.True(s.T(), found)
	require.Zero(s.T(), d)
}

// TestShortestPathUnreachable reports an absent result, not an error.
func (s *DijkstraSuite) TestShortestPathUnreachable() {
	d, found, err := dijkstra.ShortestPath("A", func(v string) bool { return v == "E" }, weightedSucc)
	require.NoError(s.T(), err)
	require.False(s.T(), found)
	require.Zero(s.T(), d)
}

// TestMaxDistance caps exploration.
func (s *DijkstraSuite) TestMaxDistance() {
	dist, err := dijkstra.Distances("A", weightedSucc, dijkstra.WithMaxDistance(3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), map[string]int64{"A": 0, "C": 1, "B": 3}, dist)

	_, found, err := dijkstra.ShortestPath("A", func(v string) bool { return v == "D" }, weightedSucc, dijkstra.WithMaxDistance(3))
	require.NoError(s.T(), err)
	require.False(s.T(), found)

	require.Panics(s.T(), func() { dijkstra.WithMaxDistance(-1) })
}

// TestNegativeCost aborts on the first negative step.
func (s *DijkstraSuite) TestNegativeCost() {
	succ := func(u int) []dijkstra.Step[int] {
		if u == 0 {
			return []dijkstra.Step[int]{{To: 1, Cost: -2}}
		}
		return nil
	}
	_, err := dijkstra.Distances(0, succ)
	require.ErrorIs(s.T(), err, dijkstra.ErrNegativeCost)
}

// TestNilArguments rejects missing callbacks.
func (s *DijkstraSuite) TestNilArguments() {
	_, err := dijkstra.Distances[int](0, nil)
	require.ErrorIs(s.T(), err, dijkstra.ErrNilSuccessors)

	_, _, err = dijkstra.ShortestPath(0, nil, dijkstra.UnitSteps(func(int) []int { return nil }))
	require.ErrorIs(s.T(), err, dijkstra.ErrNilGoal)
}

// TestUnitStepsOnGrid runs the engine over a struct-keyed implicit grid.
func (s *DijkstraSuite) TestUnitStepsOnGrid() {
	type cell struct{ r, c int }
	const size = 5
	succ := dijkstra.UnitSteps(func(p cell) []cell {
		var out []cell
		for _, d := range []cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			q := cell{p.r + d.r, p.c + d.c}
			if q.r >= 0 && q.r < size && q.c >= 0 && q.c < size {
				out = append(out, q)
			}
		}
		return out
	})
	dist, err := dijkstra.Distances(cell{0, 0}, succ)
	require.NoError(s.T(), err)
	require.Len(s.T(), dist, size*size)
	require.Equal(s.T(), int64(2*(size-1)), dist[cell{size - 1, size - 1}])
}

func TestDijkstraSuite(t *testing.T) {
	suite.Run(t, new(DijkstraSuite))
}
