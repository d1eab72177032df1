package fsa

import (
	"sort"

	"github.com/tropalab/tropa/tropical"
)

// span locates one state's arcs inside the shared arc array.
type span struct {
	off int32
	n   int32
}

// Indexed is the immutable flat representation: every arc (with its
// source) in one array, per-state spans for O(1) slicing. Arcs returns
// a subslice, no synthesis, which makes Indexed the right target when
// an automaton will be iterated repeatedly; it is what Materialize
// produces for lazy views.
type Indexed struct {
	start  State
	finals []State           // ascending
	finalW []tropical.Weight // parallel to finals
	spans  []span
	arcs   []Arc // grouped by From, label-sorted within a group
}

// IndexedOf flattens a into the indexed representation. State ids are
// preserved. Idempotent: an *Indexed input is returned unchanged. Lazy
// inputs are fully expanded first; a deferred expansion failure is
// returned instead of a partial copy.
func IndexedOf(a Automaton) (*Indexed, error) {
	if ix, ok := a.(*Indexed); ok {
		return ix, nil
	}

	n := a.NumStates() // forces full expansion of lazy kinds
	if err := Err(a); err != nil {
		return nil, err
	}

	ix := &Indexed{
		start: a.Start(),
		spans: make([]span, n),
	}
	for s := State(0); s < State(n); s++ {
		if w := a.Final(s); !tropical.IsZero(w) {
			ix.finals = append(ix.finals, s)
			ix.finalW = append(ix.finalW, w)
		}
		arcs := a.Arcs(s)
		ix.spans[s] = span{off: int32(len(ix.arcs)), n: int32(len(arcs))}
		ix.arcs = append(ix.arcs, arcs...)
	}

	return ix, nil
}

// Kind reports KindIndexed.
func (ix *Indexed) Kind() Kind { return KindIndexed }

// Start returns the initial state, NoState when empty.
func (ix *Indexed) Start() State { return ix.start }

// NumStates returns the state count.
func (ix *Indexed) NumStates() int { return len(ix.spans) }

// Final returns the final weight of s, tropical.Zero() for non-final or
// out-of-range s.
func (ix *Indexed) Final(s State) tropical.Weight {
	i := sort.Search(len(ix.finals), func(i int) bool { return ix.finals[i] >= s })
	if i < len(ix.finals) && ix.finals[i] == s {
		return ix.finalW[i]
	}

	return tropical.Zero()
}

// Arcs returns s's outgoing arcs as a subslice of the shared array;
// callers must not modify it.
func (ix *Indexed) Arcs(s State) []Arc {
	if s < 0 || int(s) >= len(ix.spans) {
		return nil
	}
	sp := ix.spans[s]
	if sp.n == 0 {
		return nil
	}

	return ix.arcs[sp.off : sp.off+sp.n]
}
