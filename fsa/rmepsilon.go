package fsa

import (
	"sort"
	"sync"

	"github.com/tropalab/tropa/tropical"
)

// closure is the memoized epsilon closure of one source state: every
// state reachable through epsilon arcs alone (itself included), with
// the minimal epsilon-path weight to each.
type closure struct {
	states []State // ascending
	dists  []tropical.Weight
}

// RmEpsilonView is the lazy epsilon-removed representation. Logical
// semantics: every epsilon arc is collapsed by extending its weight
// onto the following real arc, and an epsilon path into finality folds
// into the source state's final weight.
//
// The view renumbers: its states are the source states still reachable
// once epsilon arcs are gone, assigned dense ids in discovery order
// (view state 0 is the start). States that were reachable only through
// epsilon arcs never appear. The renumbering is recorded once in the
// view's registry, never re-derived.
//
// Discovery mutates internal caches, so every access is serialized by
// one mutex; concurrent readers are safe.
type RmEpsilonView struct {
	src Automaton

	mu       sync.Mutex
	ids      map[State]State // source id → view id
	order    []State         // view id → source id
	arcs     [][]Arc         // per view id; nil = not yet computed
	closures map[State]*closure
}

// RmEpsilon wraps src in a lazy epsilon-removed view. src is read-only
// to the view and must not be mutated afterwards.
func RmEpsilon(src Automaton) *RmEpsilonView {
	return &RmEpsilonView{
		src:      src,
		ids:      make(map[State]State),
		closures: make(map[State]*closure),
	}
}

// Kind reports KindRmEpsilon.
func (v *RmEpsilonView) Kind() Kind { return KindRmEpsilon }

// Err reports a deferred expansion failure from the underlying
// automaton; the view itself introduces no bounds.
func (v *RmEpsilonView) Err() error { return Err(v.src) }

// Start returns view state 0 mapped to the source start, NoState for an
// empty source.
func (v *RmEpsilonView) Start() State {
	if IsEmpty(v.src) {
		return NoState
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.register(v.src.Start())
}

// NumStates forces full expansion and returns the reachable state
// count.
func (v *RmEpsilonView) NumStates() int {
	if IsEmpty(v.src) {
		return 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.register(v.src.Start())
	// Discovery appends to order, so the loop chases its own tail until
	// no state is left unexpanded.
	for i := 0; i < len(v.order); i++ {
		v.arcsLocked(State(i))
	}

	return len(v.order)
}

// Final returns the epsilon-folded final weight of view state s.
func (v *RmEpsilonView) Final(s State) tropical.Weight {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s < 0 || int(s) >= len(v.order) {
		return tropical.Zero()
	}
	cl := v.closureLocked(v.order[s])
	w := tropical.Zero()
	for i, t := range cl.states {
		w = tropical.Combine(w, tropical.Extend(cl.dists[i], v.src.Final(t)))
	}

	return w
}

// Arcs returns the merged non-epsilon arcs of view state s, discovering
// target states on demand.
func (v *RmEpsilonView) Arcs(s State) []Arc {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s < 0 || int(s) >= len(v.order) {
		return nil
	}

	return v.arcsLocked(s)
}

// register maps a source state to its dense view id, assigning the next
// id on first sight. Caller holds v.mu.
func (v *RmEpsilonView) register(src State) State {
	if id, ok := v.ids[src]; ok {
		return id
	}
	id := State(len(v.order))
	v.ids[src] = id
	v.order = append(v.order, src)
	v.arcs = append(v.arcs, nil)

	return id
}

// arcsLocked computes (or recalls) the merged arcs of view state s.
// Caller holds v.mu.
func (v *RmEpsilonView) arcsLocked(s State) []Arc {
	if v.arcs[s] != nil {
		return v.arcs[s]
	}
	cl := v.closureLocked(v.order[s])
	merged := make([]Arc, 0, 4)
	for i, t := range cl.states {
		d := cl.dists[i]
		for _, arc := range v.src.Arcs(t) {
			if arc.Label == Epsilon {
				continue // collapsed into d already
			}
			merged = append(merged, Arc{
				From:   s,
				To:     v.register(arc.To),
				Label:  arc.Label,
				Weight: tropical.Extend(d, arc.Weight),
			})
		}
	}
	sortArcs(merged)
	if len(merged) == 0 {
		// Distinguish "computed, none" from "not yet computed".
		merged = []Arc{}
	}
	v.arcs[s] = merged

	return merged
}

// closureLocked computes (or recalls) the epsilon closure of source
// state src by worklist relaxation; non-negative weights guarantee the
// fixpoint. Caller holds v.mu.
func (v *RmEpsilonView) closureLocked(src State) *closure {
	if cl, ok := v.closures[src]; ok {
		return cl
	}
	dist := map[State]tropical.Weight{src: tropical.One()}
	work := []State{src}
	for len(work) > 0 {
		t := work[len(work)-1]
		work = work[:len(work)-1]
		for _, arc := range v.src.Arcs(t) {
			if arc.Label != Epsilon {
				continue
			}
			nd := tropical.Extend(dist[t], arc.Weight)
			cur, seen := dist[arc.To]
			if !seen || nd < cur {
				dist[arc.To] = nd
				work = append(work, arc.To)
			}
		}
	}

	cl := &closure{states: make([]State, 0, len(dist))}
	for t := range dist {
		cl.states = append(cl.states, t)
	}
	sort.Slice(cl.states, func(i, j int) bool { return cl.states[i] < cl.states[j] })
	cl.dists = make([]tropical.Weight, len(cl.states))
	for i, t := range cl.states {
		cl.dists[i] = dist[t]
	}
	v.closures[src] = cl

	return cl
}
