// File: view.go
// Role: Non-mutating automaton transforms (copying the graph with altered weights).
// Determinism:
//   - Preserves state ids, arc order, and finality; only weights change.
// Concurrency:
//   - Input is read-only; result is a fresh instance.
// AI-HINT (file):
//   - UnweightedView does NOT mutate the input automaton.
//   - Every arc weight and final weight in the result is tropical.One().

package fsa

import "github.com/tropalab/tropa/tropical"

// UnweightedView returns a new materialized automaton with identical
// topology but every arc weight and final weight forced to
// tropical.One(). The input is not mutated. This is the weight-strip
// step of difference: the subtracted operand contributes only its
// language, never its weights.
//
// Lazy inputs are fully expanded; a deferred expansion failure is
// returned instead of a partial copy.
//
// Complexity: O(V + E).
func UnweightedView(a Automaton) (*Materialized, error) {
	// AI-HINT: Useful whenever only the accepted language matters.

	n := a.NumStates() // forces full expansion of lazy kinds
	if err := Err(a); err != nil {
		return nil, err
	}

	out := NewMaterialized(n)
	out.SetStart(a.Start())
	for s := State(0); s < State(n); s++ {
		if !tropical.IsZero(a.Final(s)) {
			// Force boolean acceptance regardless of the source weight.
			out.SetFinal(s, tropical.One())
		}
		for _, arc := range a.Arcs(s) {
			out.AddArc(Arc{From: s, To: arc.To, Label: arc.Label, Weight: tropical.One()})
		}
	}
	// Source arcs were label-sorted already; insertion preserved that.

	return out, nil
}
