// File: difference.go
// Role: Weighted language difference (a minus b) via the implicit
//       complement of b's determinized image.
// Determinism:
//   - Determinization is bounded and eager; the product phase is a lazy
//     view numbering pairs in discovery order, like Intersect.
// AI-HINT (file):
//   - The sink id is one past the last determinized state: a pair whose
//     b-side is the sink can never again leave the accepted region of b,
//     so it accepts everything a accepts from there.

package compose

import (
	"fmt"
	"sync"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/tropical"
)

// Difference returns the language of a minus the language of b as a
// lazy view of kind fsa.KindDifference. Weights and finality come from
// a alone; b contributes membership only.
//
// Steps:
//  1. Validate operands and resolve options.
//  2. Strip b's weights (set difference is a language operation).
//  3. Determinize the stripped operand by bounded subset construction.
//  4. Return the lazy product of a against the implicit complement: a
//     label with no transition in the current subset state routes to an
//     always-accepting sink, totalizing the complement on the fly. A
//     pair is final iff its a-side is final and its b-side does not
//     accept (non-final subset, or the sink).
//
// Complexity:
//
//	Time:   determinization O(D · A_b log A_b); then O(d_a + d_det) per
//	        discovered pair.
//	Memory: O(D) determinized states + O(P) pairs.
//
// Errors: ErrNilOperand for a nil operand; ErrDeterminizeBound when
// subset construction exceeds MaxSubsetStates. ErrProductBound is
// deferred to fsa.Err on the returned view.
func Difference(a, b fsa.Automaton, opts ...Option) (fsa.Automaton, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Difference: %w", ErrNilOperand)
	}

	cfg := resolve(opts)

	// Strip b's weights; membership is all that subtraction reads.
	plain, err := fsa.UnweightedView(b)
	if err != nil {
		return nil, fmt.Errorf("Difference: %w", err)
	}

	det, err := determinize(plain, cfg)
	if err != nil {
		return nil, err
	}

	return &differenceView{
		a:    a,
		det:  det,
		sink: fsa.State(len(det.arcs)),
		max:  cfg.MaxProductStates,
		ids:  make(map[diffPair]fsa.State),
	}, nil
}

// diffPair identifies one product state: an a state paired with a
// determinized subset state (or the sink).
type diffPair struct {
	a   fsa.State
	det fsa.State
}

// differenceView is the lazy complement-product registry.
type differenceView struct {
	a    fsa.Automaton
	det  *detAutomaton
	sink fsa.State
	max  int

	mu    sync.Mutex
	ids   map[diffPair]fsa.State
	order []diffPair
	arcs  [][]fsa.Arc
	err   error
}

// Kind reports KindDifference.
func (v *differenceView) Kind() fsa.Kind { return fsa.KindDifference }

// Err reports a tripped product bound, or a deferred failure of the a
// operand (b was consumed eagerly by determinization).
func (v *differenceView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.err != nil {
		return v.err
	}

	return fsa.Err(v.a)
}

// Start returns view state 0 mapped to the start pair, NoState when a
// is empty. An empty b starts the b-side at the sink: subtracting
// nothing keeps all of a.
func (v *differenceView) Start() fsa.State {
	if fsa.IsEmpty(v.a) {
		return fsa.NoState
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	s, _ := v.registerLocked(v.startPair())

	return s
}

// NumStates forces full expansion and returns the discovered pair
// count.
func (v *differenceView) NumStates() int {
	if fsa.IsEmpty(v.a) {
		return 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.registerLocked(v.startPair())
	for i := 0; i < len(v.order); i++ {
		v.arcsLocked(fsa.State(i))
	}

	return len(v.order)
}

// Final returns the a-side final weight when the b-side rejects, zero
// otherwise.
func (v *differenceView) Final(s fsa.State) tropical.Weight {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s < 0 || int(s) >= len(v.order) {
		return tropical.Zero()
	}
	p := v.order[s]
	wa := v.a.Final(p.a)
	if tropical.IsZero(wa) {
		return tropical.Zero()
	}
	if p.det != v.sink && v.det.final[p.det] {
		return tropical.Zero() // b accepts here; subtracted away
	}

	return wa
}

// Arcs returns the arcs of pair state s: one per a arc, routed through
// the determinized image or into the sink.
func (v *differenceView) Arcs(s fsa.State) []fsa.Arc {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s < 0 || int(s) >= len(v.order) {
		return nil
	}

	return v.arcsLocked(s)
}

// startPair pairs a's start with the determinized start, or with the
// sink when b was empty.
func (v *differenceView) startPair() diffPair {
	bStart := v.det.start
	if bStart == fsa.NoState {
		bStart = v.sink
	}

	return diffPair{a: v.a.Start(), det: bStart}
}

// registerLocked maps a pair to its dense view id, assigning the next
// id on first sight. Registration past the bound fails, poisoning the
// view. Caller holds v.mu.
func (v *differenceView) registerLocked(p diffPair) (fsa.State, bool) {
	if id, ok := v.ids[p]; ok {
		return id, true
	}
	if len(v.order) >= v.max {
		if v.err == nil {
			v.err = fmt.Errorf("Difference: %d pair states: %w", len(v.order), ErrProductBound)
		}

		return fsa.NoState, false
	}
	id := fsa.State(len(v.order))
	v.ids[p] = id
	v.order = append(v.order, p)
	v.arcs = append(v.arcs, nil)

	return id, true
}

// arcsLocked computes (or recalls) the arcs of pair state s. Every a
// arc survives; only its b-side routing differs. Caller holds v.mu.
func (v *differenceView) arcsLocked(s fsa.State) []fsa.Arc {
	if v.arcs[s] != nil {
		return v.arcs[s]
	}
	p := v.order[s]
	arcsA := v.a.Arcs(p.a)
	var det []detArc
	if p.det != v.sink {
		det = v.det.arcs[p.det]
	}

	out := make([]fsa.Arc, 0, len(arcsA))
	j := 0
	for _, arc := range arcsA {
		// Advance to the label's deterministic transition, if any. The
		// pointer never consumes the run, so several a arcs sharing a
		// label all route to the same target.
		for j < len(det) && det[j].label < arc.Label {
			j++
		}
		target := v.sink
		if j < len(det) && det[j].label == arc.Label {
			target = det[j].to
		}
		to, ok := v.registerLocked(diffPair{a: arc.To, det: target})
		if !ok {
			continue // bound tripped; view already poisoned
		}
		out = append(out, fsa.Arc{From: s, To: to, Label: arc.Label, Weight: arc.Weight})
	}
	if len(out) == 0 {
		out = []fsa.Arc{}
	}
	v.arcs[s] = out

	return out
}
