package fsa

import "github.com/tropalab/tropa/tropical"

// Materialized is the explicit per-state arc storage: the construction
// representation. It is mutable through AddState/AddArc/SetFinal until
// handed off as an Automaton, after which the single-owner rule applies
// and no further mutation may happen.
type Materialized struct {
	start  State
	arcs   [][]Arc
	finals map[State]tropical.Weight
}

// NewMaterialized allocates a materialized automaton with numStates
// empty states. Following the fixed construction policy, the start
// state is 0; with numStates == 0 the automaton is empty (Start() ==
// NoState).
func NewMaterialized(numStates int) *Materialized {
	m := &Materialized{
		arcs:   make([][]Arc, numStates),
		finals: make(map[State]tropical.Weight),
	}
	if numStates == 0 {
		m.start = NoState
	}

	return m
}

// AddState appends a fresh state and returns its id. The first state
// ever added becomes the start state.
func (m *Materialized) AddState() State {
	s := State(len(m.arcs))
	m.arcs = append(m.arcs, nil)
	if s == 0 {
		m.start = 0
	}

	return s
}

// SetStart repoints the initial state. s must be a valid state or
// NoState.
func (m *Materialized) SetStart(s State) { m.start = s }

// SetFinal marks s final with weight w; tropical.Zero() clears
// finality. s must be a valid state.
func (m *Materialized) SetFinal(s State, w tropical.Weight) {
	if tropical.IsZero(w) {
		delete(m.finals, s)
		return
	}
	m.finals[s] = w
}

// AddArc appends a to its source state's outgoing list. Panics if
// a.From is out of range; callers validate ids first (the builder
// package does this for external input). Arc order is insertion order
// until SortArcs runs.
func (m *Materialized) AddArc(a Arc) {
	m.arcs[a.From] = append(m.arcs[a.From], a)
}

// SortArcs establishes the per-state label order every consumer relies
// on: stable, so arcs with equal labels keep insertion order. Idempotent.
func (m *Materialized) SortArcs() {
	for s := range m.arcs {
		sortArcs(m.arcs[s])
	}
}

// Kind reports KindMaterialized.
func (m *Materialized) Kind() Kind { return KindMaterialized }

// Start returns the initial state, NoState when empty.
func (m *Materialized) Start() State { return m.start }

// NumStates returns the state count.
func (m *Materialized) NumStates() int { return len(m.arcs) }

// Final returns the final weight of s, tropical.Zero() for non-final or
// out-of-range s.
func (m *Materialized) Final(s State) tropical.Weight {
	if w, ok := m.finals[s]; ok {
		return w
	}

	return tropical.Zero()
}

// Arcs returns s's outgoing arcs; the slice is owned by the automaton.
func (m *Materialized) Arcs(s State) []Arc {
	if s < 0 || int(s) >= len(m.arcs) {
		return nil
	}

	return m.arcs[s]
}
