package combine_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/volcanium/combine"
)

func BenchmarkNaive(b *testing.B) {
	entries := randomEntries(rand.New(rand.NewSource(3)), 2000, 15, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = combine.Naive(entries)
	}
}

func BenchmarkSorted(b *testing.B) {
	entries := randomEntries(rand.New(rand.NewSource(3)), 2000, 15, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = combine.Sorted(entries)
	}
}

func BenchmarkParallel(b *testing.B) {
	entries := randomEntries(rand.New(rand.NewSource(3)), 2000, 15, 1000)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = combine.Parallel(ctx, entries, 0)
	}
}
