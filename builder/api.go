// SPDX-License-Identifier: MIT
// Package: tropa/builder
//
// api.go - the single public entry-point for acceptor construction.
//
// Design contract (strict):
//   - One orchestrator: Build(numStates, finals, arcs, opts...). Validates,
//     materializes, sorts, optionally freezes; nothing else is exported.
//   - Functional options (Option) resolve into an Options value (no global
//     state).
//   - Determinism: same inputs and options ⇒ identical acceptors.
//   - Safety: never panic on caller input; return wrapped sentinel errors
//     with positional context.
//
// AI-Hints (practical):
//   - Branch on failures with errors.Is against the builder sentinels
//     (ErrBadCount, ErrStateRange, ErrBadWeight) or their taxonomy root
//     fsa.ErrInvalidArgument; never match error strings.
//   - WithFrozen() yields the compact representation; prefer it for
//     acceptors built once and queried many times.
//   - Arc weights are tropical (lower is better); convert probabilities
//     with tropical.FromProb before building.

package builder

import (
	"fmt"
	"math"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/tropical"
)

// Build constructs an acceptor from declared parts: numStates empty states
// (ids 0..numStates-1), the given final-state set and the given arcs. The
// start state is fixed to 0; callers that need a different start renumber
// their input first. Every final state receives weight tropical.One():
// acceptance is boolean at construction time, and graded finality only ever
// arises later from transforms such as epsilon removal.
//
// Rationale:
//   - A single entry-point keeps validation, the stable (from,label) sort
//     and the representation choice in one place.
//   - Sorting here is what lets downstream composition merge-join sorted
//     arc lists instead of nested-scanning per state pair.
//
// Complexity:
//   - Validation: O(len(finals) + len(arcs)) time, O(1) space.
//   - Materialization + stable sort: O(numStates + A log A) for A arcs.
//
// Errors:
//   - ErrBadCount for numStates < 0.
//   - ErrStateRange for a final id or arc endpoint outside [0, numStates).
//   - ErrBadWeight for a NaN, infinite or negative arc weight.
//     All carry the offending position and match fsa.ErrInvalidArgument
//     via errors.Is.
func Build(numStates int32, finals []fsa.State, arcs []fsa.Arc, opts ...Option) (fsa.Automaton, error) {
	// Resolve functional options into the effective configuration (O(len(opts))).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// The state count gates every other check; reject a negative one first.
	if numStates < 0 {
		return nil, fmt.Errorf("Build: %d states: %w", numStates, ErrBadCount)
	}

	// Final ids must name declared states.
	for i, s := range finals {
		if s < 0 || int32(s) >= numStates {
			return nil, fmt.Errorf("Build: final %d (state %d): %w", i, s, ErrStateRange)
		}
	}

	// Arc endpoints next, in input order; weights are checked only once all
	// ids are known good, so a broken arc always reports its worst defect.
	for i, a := range arcs {
		if a.From < 0 || int32(a.From) >= numStates || a.To < 0 || int32(a.To) >= numStates {
			return nil, fmt.Errorf("Build: arc %d (%d->%d): %w", i, a.From, a.To, ErrStateRange)
		}
	}
	for i, a := range arcs {
		w := float64(a.Weight)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("Build: arc %d (weight %v): %w", i, a.Weight, ErrBadWeight)
		}
	}

	// Materialize: empty states, boolean finals, arcs in input order.
	m := fsa.NewMaterialized(int(numStates))
	for _, s := range finals {
		m.SetFinal(s, tropical.One())
	}
	for _, a := range arcs {
		m.AddArc(a)
	}

	// Establish the per-state label order every consumer relies on. The sort
	// is stable, so arcs sharing (from,label) keep their input order.
	m.SortArcs()

	// Freeze on request; the compact form is immutable and dense.
	if cfg.Frozen {
		return fsa.CompactOf(m)
	}

	return m, nil
}
