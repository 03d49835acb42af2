// Package distance precomputes hop distances from every valve to every
// reward-bearing valve.
//
// The table is the only view of the graph the path enumerator needs: zero-rate
// valves are pure corridors, so their distances are folded into the rows and the
// valves themselves disappear from the search.
package distance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/volcanium/core"
	"github.com/katalvlaran/volcanium/dijkstra"
)

// ErrNilGraph is returned when Build receives a nil graph.
var ErrNilGraph = errors.New("distance: graph is nil")

// Entry is one destination in a row: a reward-bearing node index and its hop distance.
type Entry struct {
	To   int
	Dist int
}

// Table maps each source node index to its reachable reward-bearing destinations.
// It is immutable after Build and safe for concurrent reads.
type Table struct {
	rows [][]Entry
}

// Build runs one unit-cost search per node and keeps, for each source, the
// distances to all other reward-bearing nodes. Unreachable destinations and the
// source itself are omitted.
//
// Rows are sorted by destination index.
//
// Complexity: O(V · (V + E) log V).
func Build(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	targets := g.RewardBearing()
	succ := dijkstra.UnitSteps(g.Neighbors)
	rows := make([][]Entry, g.Len())
	for src := 0; src < g.Len(); src++ {
		dist, err := dijkstra.Distances(src, succ)
		if err != nil {
			return nil, fmt.Errorf("distance: row %q: %w", g.ID(src), err)
		}
		row := make([]Entry, 0, len(targets))
		for _, m := range targets {
			if m == src {
				continue
			}
			if d, ok := dist[m]; ok {
				row = append(row, Entry{To: m, Dist: int(d)})
			}
		}
		rows[src] = row
	}

	return &Table{rows: rows}, nil
}

// Len returns the number of source rows (equal to the graph's node count).
func (t *Table) Len() int { return len(t.rows) }

// Row returns the destinations reachable from node i. The slice is shared and
// must be treated as read-only.
func (t *Table) Row(i int) []Entry { return t.rows[i] }

// Dist returns the hop distance from one node to a reward-bearing node and
// whether it is reachable.
func (t *Table) Dist(from, to int) (int, bool) {
	row := t.rows[from]
	k := sort.Search(len(row), func(i int) bool { return row[i].To >= to })
	if k < len(row) && row[k].To == to {
		return row[k].Dist, true
	}

	return 0, false
}

// Rows returns a deep copy of every row, for inspection and comparison.
func (t *Table) Rows() [][]Entry {
	out := make([][]Entry, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]Entry(nil), row...)
	}

	return out
}
