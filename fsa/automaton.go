package fsa

import (
	"sort"

	"github.com/tropalab/tropa/tropical"
)

// Automaton is the read-only graph contract shared by every
// representation. All transforms consume and produce Automaton values
// and never mutate their inputs.
//
// Iteration rules:
//
//   - States are dense: every id in [0, NumStates) is a state.
//   - Arcs(s) returns s's outgoing arcs in non-decreasing Label order
//     (the builder establishes this invariant; every representation
//     preserves it). The returned slice is owned by the automaton:
//     callers must not modify it. Out-of-range ids yield nil.
//   - Final(s) is tropical.Zero() for non-final states; out-of-range ids
//     yield Zero as well.
//
// Lazy kinds (KindRmEpsilon, KindIntersection, KindDifference) expand
// reachable states on demand from Arcs calls; NumStates forces full
// expansion. First-access expansion is internally lock-guarded, so
// concurrent readers of the same value are safe.
type Automaton interface {
	// Kind reports which representation backs this automaton.
	Kind() Kind

	// Start returns the initial state, or NoState when the automaton is
	// empty (accepts nothing, not even the empty word).
	Start() State

	// NumStates returns the number of states. On lazy kinds this forces
	// full expansion of the reachable state space.
	NumStates() int

	// Final returns the final weight of s, tropical.Zero() if s is not
	// final.
	Final(s State) tropical.Weight

	// Arcs returns the outgoing arcs of s sorted by label. The slice is
	// owned by the automaton; callers must not modify it.
	Arcs(s State) []Arc
}

// faulted is satisfied by lazy views that can defer an expansion
// failure (a tripped resource bound) instead of returning partial
// results through the error-free Automaton contract.
type faulted interface {
	Err() error
}

// Err reports a deferred expansion failure recorded by a, or nil.
// Operations that walk an automaton to completion (materialization,
// encoding, path search, boundary marshaling) consult Err before
// trusting the walked graph.
func Err(a Automaton) error {
	if f, ok := a.(faulted); ok {
		return f.Err()
	}

	return nil
}

// IsEmpty reports whether a is the empty automaton (no start state,
// empty language).
func IsEmpty(a Automaton) bool { return a.Start() == NoState }

// FinalStates returns the final states of a in ascending order. On lazy
// kinds this forces full expansion.
func FinalStates(a Automaton) []State {
	n := a.NumStates()
	var finals []State
	for s := State(0); s < State(n); s++ {
		if !tropical.IsZero(a.Final(s)) {
			finals = append(finals, s)
		}
	}

	return finals
}

// ArcList flattens every arc of a, grouped by source state in state
// order and by label within a state. The result is freshly allocated.
// On lazy kinds this forces full expansion.
func ArcList(a Automaton) []Arc {
	n := a.NumStates()
	var out []Arc
	for s := State(0); s < State(n); s++ {
		out = append(out, a.Arcs(s)...)
	}

	return out
}

// CountArcs returns the total number of arcs. On lazy kinds this forces
// full expansion.
func CountArcs(a Automaton) int {
	n := a.NumStates()
	total := 0
	for s := State(0); s < State(n); s++ {
		total += len(a.Arcs(s))
	}

	return total
}

// sortArcs orders arcs in place by label, stably, preserving insertion
// order among equal labels. Shared by the mutable representations.
func sortArcs(arcs []Arc) {
	sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].Label < arcs[j].Label })
}
