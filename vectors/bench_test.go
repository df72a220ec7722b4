package vectors_test

import (
	"testing"

	"github.com/lenskit/lenskit-sub015/testutil"
	"github.com/lenskit/lenskit-sub015/vectors"
)

// Run with: go test -bench=. -benchmem ./vectors/

func BenchmarkDot_MergeWalk(b *testing.B) {
	rng := testutil.NewRNG(4711)
	x := rng.SparseVector(100000, 0.01)
	y := rng.SparseVector(100000, 0.01)
	// different key arrays, so Dot walks both vectors
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Dot(y)
	}
}

func BenchmarkDot_SharedDomain(b *testing.B) {
	rng := testutil.NewRNG(4711)
	vs := rng.Siblings(2, 100000, 0.01)
	b.ReportAllocs()
	for b.Loop() {
		_ = vs[0].Dot(vs[1])
	}
}

func BenchmarkDot_Dense(b *testing.B) {
	rng := testutil.NewRNG(4711)
	x := rng.SparseVector(10000, 1)
	y := vectors.WrapDomain(x.Domain(), x.Values())
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Dot(y)
	}
}

func BenchmarkFastEntries(b *testing.B) {
	rng := testutil.NewRNG(4711)
	x := rng.SparseVector(100000, 0.1)
	b.ReportAllocs()
	for b.Loop() {
		var sum float64
		for e := range x.FastEntries() {
			sum += e.Value()
		}
		_ = sum
	}
}

func BenchmarkEntries(b *testing.B) {
	rng := testutil.NewRNG(4711)
	x := rng.SparseVector(100000, 0.1)
	b.ReportAllocs()
	for b.Loop() {
		var sum float64
		for e := range x.Entries() {
			sum += e.Value
		}
		_ = sum
	}
}
