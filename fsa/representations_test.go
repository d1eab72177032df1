package fsa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/tropical"
)

// buildDiamond constructs the shared fixture:
//
//	0 --a(0.5)--> 1 --c(0.25)--> 3(final)
//	0 --b(1.0)--> 2 --c(0)-----> 3
//
// Arcs are inserted out of label order to exercise SortArcs.
func buildDiamond(t *testing.T) *fsa.Materialized {
	t.Helper()
	m := fsa.NewMaterialized(4)
	m.AddArc(fsa.Arc{From: 0, To: 2, Label: 2, Weight: 1.0}) // b before a
	m.AddArc(fsa.Arc{From: 0, To: 1, Label: 1, Weight: 0.5})
	m.AddArc(fsa.Arc{From: 1, To: 3, Label: 3, Weight: 0.25})
	m.AddArc(fsa.Arc{From: 2, To: 3, Label: 3, Weight: 0})
	m.SetFinal(3, tropical.One())
	m.SortArcs()

	return m
}

// requireSameGraph asserts that two automata are structurally identical
// state for state (same ids, arcs, finality).
func requireSameGraph(t *testing.T, want, got fsa.Automaton) {
	t.Helper()
	require.Equal(t, want.Start(), got.Start())
	require.Equal(t, want.NumStates(), got.NumStates())
	for s := fsa.State(0); s < fsa.State(want.NumStates()); s++ {
		require.Equal(t, want.Final(s), got.Final(s), "final weight of state %d", s)
		require.Equal(t, append([]fsa.Arc{}, want.Arcs(s)...), append([]fsa.Arc{}, got.Arcs(s)...), "arcs of state %d", s)
	}
}

func TestMaterializedContract(t *testing.T) {
	m := buildDiamond(t)

	require.Equal(t, fsa.KindMaterialized, m.Kind())
	require.Equal(t, fsa.State(0), m.Start())
	require.Equal(t, 4, m.NumStates())
	require.Equal(t, []fsa.State{3}, fsa.FinalStates(m))
	require.Equal(t, 4, fsa.CountArcs(m))

	// SortArcs must have put label 1 before label 2 at state 0.
	arcs := m.Arcs(0)
	require.Len(t, arcs, 2)
	require.Equal(t, fsa.Label(1), arcs[0].Label)
	require.Equal(t, fsa.Label(2), arcs[1].Label)
}

func TestSortArcsIsStable(t *testing.T) {
	m := fsa.NewMaterialized(3)
	// Two arcs share label 5; insertion order must survive sorting.
	m.AddArc(fsa.Arc{From: 0, To: 1, Label: 5, Weight: 0.1})
	m.AddArc(fsa.Arc{From: 0, To: 2, Label: 5, Weight: 0.2})
	m.AddArc(fsa.Arc{From: 0, To: 1, Label: 2, Weight: 0.3})
	m.SortArcs()

	arcs := m.Arcs(0)
	require.Equal(t, fsa.Label(2), arcs[0].Label)
	require.Equal(t, fsa.State(1), arcs[1].To)
	require.Equal(t, fsa.State(2), arcs[2].To)
}

func TestCompactMatchesSource(t *testing.T) {
	m := buildDiamond(t)
	c, err := fsa.CompactOf(m)
	require.NoError(t, err)

	require.Equal(t, fsa.KindCompact, c.Kind())
	requireSameGraph(t, m, c)

	// Freezing a frozen automaton is the identity.
	again, err := fsa.CompactOf(c)
	require.NoError(t, err)
	require.Same(t, c, again)
}

func TestIndexedMatchesSource(t *testing.T) {
	m := buildDiamond(t)
	ix, err := fsa.IndexedOf(m)
	require.NoError(t, err)

	require.Equal(t, fsa.KindIndexed, ix.Kind())
	requireSameGraph(t, m, ix)

	again, err := fsa.IndexedOf(ix)
	require.NoError(t, err)
	require.Same(t, ix, again)
}

func TestEmptyAutomaton(t *testing.T) {
	m := fsa.NewMaterialized(0)

	require.True(t, fsa.IsEmpty(m))
	require.Equal(t, fsa.NoState, m.Start())
	require.Equal(t, 0, m.NumStates())
	require.Empty(t, fsa.FinalStates(m))

	c, err := fsa.CompactOf(m)
	require.NoError(t, err)
	require.True(t, fsa.IsEmpty(c))
}

func TestOutOfRangeQueries(t *testing.T) {
	m := buildDiamond(t)
	c, err := fsa.CompactOf(m)
	require.NoError(t, err)

	for _, a := range []fsa.Automaton{m, c} {
		require.Nil(t, a.Arcs(-1))
		require.Nil(t, a.Arcs(99))
		require.True(t, tropical.IsZero(a.Final(-1)))
		require.True(t, tropical.IsZero(a.Final(99)))
	}
}

func TestMaterializeIdempotent(t *testing.T) {
	m := buildDiamond(t)

	// Concrete kinds pass through untouched.
	same, err := fsa.Materialize(m)
	require.NoError(t, err)
	require.Same(t, fsa.Automaton(m), same)

	// Lazy kinds come back as Indexed.
	view := fsa.RmEpsilon(m)
	mat, err := fsa.Materialize(view)
	require.NoError(t, err)
	require.Equal(t, fsa.KindIndexed, mat.Kind())
	requireSameGraph(t, view, mat)

	once, err := fsa.Materialize(mat)
	require.NoError(t, err)
	require.Same(t, mat, once)
}

func TestKindNames(t *testing.T) {
	require.Equal(t, "materialized", fsa.KindMaterialized.String())
	require.Equal(t, "rmEpsilon", fsa.KindRmEpsilon.String())
	require.Equal(t, "intersection", fsa.KindIntersection.String())
	require.Equal(t, "difference", fsa.KindDifference.String())
	require.Equal(t, "compact", fsa.KindCompact.String())
	require.Equal(t, "indexed", fsa.KindIndexed.String())
}
