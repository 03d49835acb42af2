package combine

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/volcanium/search"
)

// chunksPerWorker splits the outer loop finer than the worker count so that
// uneven rows still balance.
const chunksPerWorker = 4

// Naive scans every ordered pair of entries.
// An empty input yields the zero Pair.
func Naive(entries []search.Entry) Pair {
	best, found := scan(entries, 0, len(entries))
	if !found {
		return Pair{}
	}

	return best
}

// scan evaluates outer indices [lo, hi) against every entry.
func scan(entries []search.Entry, lo, hi int) (Pair, bool) {
	var (
		best  Pair
		found bool
	)
	for i := lo; i < hi; i++ {
		a := entries[i]
		for _, b := range entries {
			if !a.Mask.Disjoint(b.Mask) {
				continue
			}
			p := Pair{A: a.Mask, B: b.Mask, Reward: a.Reward + b.Reward}
			if !found || better(p, best) {
				best, found = p, true
			}
		}
	}

	return best, found
}

// Sorted returns the same Pair as Naive using reward-ordered early exits.
func Sorted(entries []search.Entry) Pair {
	if len(entries) == 0 {
		return Pair{}
	}
	ord := make([]search.Entry, len(entries))
	copy(ord, entries)
	sort.Slice(ord, func(i, j int) bool {
		if ord[i].Reward != ord[j].Reward {
			return ord[i].Reward > ord[j].Reward
		}
		return ord[i].Mask < ord[j].Mask
	})

	var (
		best  Pair
		found bool
	)
	top := ord[0].Reward
	for _, a := range ord {
		// Strict: equal totals may still win the tie-break on A.
		if found && a.Reward+top < best.Reward {
			break
		}
		for _, b := range ord {
			if found && a.Reward+b.Reward < best.Reward {
				break
			}
			if !a.Mask.Disjoint(b.Mask) {
				continue
			}
			p := Pair{A: a.Mask, B: b.Mask, Reward: a.Reward + b.Reward}
			if !found || better(p, best) {
				best, found = p, true
			}
			// Later partners have lower reward, or equal reward and larger mask.
			break
		}
	}

	return best
}

// Parallel runs the reference scan with the outer loop partitioned across at
// most workers goroutines (GOMAXPROCS when workers ≤ 0). entries is read-only.
//
// Errors: ctx cancellation, reported as ctx.Err().
func Parallel(ctx context.Context, entries []search.Entry, workers int) (Pair, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(entries)
	if n == 0 {
		return Pair{}, ctx.Err()
	}

	chunks := workers * chunksPerWorker
	if chunks > n {
		chunks = n
	}
	size := (n + chunks - 1) / chunks

	type slot struct {
		pair  Pair
		found bool
	}
	results := make([]slot, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		lo, hi := c*size, min((c+1)*size, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, ok := scan(entries, lo, hi)
			results[c] = slot{pair: p, found: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Pair{}, err
	}

	var (
		best  Pair
		found bool
	)
	for _, r := range results {
		if r.found && (!found || better(r.pair, best)) {
			best, found = r.pair, true
		}
	}

	return best, nil
}
