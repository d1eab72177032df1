package nbest_test

import (
	"testing"

	"github.com/tropalab/tropa/builder"
	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/nbest"
	"github.com/tropalab/tropa/tropical"
)

// BenchmarkNBest_Chain measures extraction of the single path of a
// linear acceptor with N arcs.
func BenchmarkNBest_Chain(b *testing.B) {
	const N = 4096
	arcs := make([]fsa.Arc, 0, N)
	for i := 0; i < N; i++ {
		arcs = append(arcs, arc(fsa.State(i), fsa.State(i+1), fsa.Label(i%32+1), tropical.Weight(i%7)*0.125))
	}
	a, _ := builder.Build(N+1, []fsa.State{N}, arcs)

	b.ReportAllocs()
	b.SetBytes(int64(N + 1 + N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		out, _ := nbest.NBest(a, 1)
		_, _ = fsa.Materialize(out)
	}
}

// BenchmarkNBest_Lattice extracts the 10 cheapest paths of a layered
// lattice: L layers of W states each, dense arcs between neighbouring
// layers, a single source and sink.
func BenchmarkNBest_Lattice(b *testing.B) {
	const (
		L = 256
		W = 4
		K = 10
	)
	sink := fsa.State(L*W + 1)
	var arcs []fsa.Arc
	for w := 0; w < W; w++ {
		arcs = append(arcs, arc(0, fsa.State(1+w), fsa.Label(w+1), tropical.Weight(w)*0.25))
	}
	for l := 0; l+1 < L; l++ {
		for u := 0; u < W; u++ {
			for v := 0; v < W; v++ {
				from := fsa.State(1 + l*W + u)
				to := fsa.State(1 + (l+1)*W + v)
				arcs = append(arcs, arc(from, to, fsa.Label(v+1), tropical.Weight((u+v)%5)*0.125))
			}
		}
	}
	for w := 0; w < W; w++ {
		arcs = append(arcs, arc(fsa.State(1+(L-1)*W+w), sink, 1, 0))
	}
	a, _ := builder.Build(int32(sink)+1, []fsa.State{sink}, arcs)

	b.ReportAllocs()
	b.SetBytes(int64(int(sink) + 1 + len(arcs)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		out, _ := nbest.NBest(a, K)
		_, _ = fsa.Materialize(out)
	}
}

// BenchmarkNBest_Cycle ranks 32 paths of a ring whose language is
// infinite; the per-state pop budget dominates the cost here.
func BenchmarkNBest_Cycle(b *testing.B) {
	const R = 64
	arcs := make([]fsa.Arc, 0, R)
	for i := 0; i < R; i++ {
		arcs = append(arcs, arc(fsa.State(i), fsa.State((i+1)%R), 1, 0.25))
	}
	a, _ := builder.Build(R, []fsa.State{0}, arcs)

	b.ReportAllocs()
	b.SetBytes(int64(R + R))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		out, _ := nbest.NBest(a, 32)
		_, _ = fsa.Materialize(out)
	}
}
