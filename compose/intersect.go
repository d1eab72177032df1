// File: intersect.go
// Role: Lazy synchronized product (weighted intersection) of two acceptors.
// Determinism:
//   - Pair states number in discovery order; arcs inherit the operands'
//     label order, so equal inputs always yield the identical view.
// Concurrency:
//   - One mutex serializes discovery; concurrent readers are safe.
// AI-HINT (file):
//   - The constructor never fails on size. A tripped MaxProductStates
//     bound is recorded on the view and read back via fsa.Err.

package compose

import (
	"fmt"
	"sync"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/tropical"
)

// Intersect returns the weighted intersection of a and b as a lazy
// view of kind fsa.KindIntersection.
//
// States of the result are pairs (sa, sb) discovered from the two start
// states; an arc exists per label carried by both operands at the
// current pair, with weight extend(wa, wb), and a pair is final with
// extend of the two final weights. Pairs unreachable from the start
// pair never materialize.
//
// Steps:
//  1. Validate operands and resolve options (O(len(opts))).
//  2. Return the view; no state is discovered yet. An empty operand
//     yields an empty view.
//  3. On access, merge-join the pair's two label-sorted arc lists,
//     crossing equal-label runs and registering target pairs.
//
// Complexity:
//
//	Time:   O(d_a + d_b + m) per pair, m = matched label crossings.
//	Memory: O(P) for P discovered pairs (registry + memoized arcs).
//
// Errors: ErrNilOperand for a nil operand. ErrProductBound is deferred
// to fsa.Err on the returned view.
func Intersect(a, b fsa.Automaton, opts ...Option) (fsa.Automaton, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Intersect: %w", ErrNilOperand)
	}

	cfg := resolve(opts)

	return &intersectView{
		a:   a,
		b:   b,
		max: cfg.MaxProductStates,
		ids: make(map[pairKey]fsa.State),
	}, nil
}

// pairKey identifies one product state by its operand components.
type pairKey struct {
	a, b fsa.State
}

// intersectView is the lazy product registry. Discovery mutates the
// caches, so every access is serialized by mu.
type intersectView struct {
	a, b fsa.Automaton
	max  int

	mu    sync.Mutex
	ids   map[pairKey]fsa.State // pair → view id
	order []pairKey             // view id → pair
	arcs  [][]fsa.Arc           // per view id; nil = not yet computed
	err   error
}

// Kind reports KindIntersection.
func (v *intersectView) Kind() fsa.Kind { return fsa.KindIntersection }

// Err reports a tripped product bound, or a deferred failure of either
// operand.
func (v *intersectView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.err != nil {
		return v.err
	}
	if err := fsa.Err(v.a); err != nil {
		return err
	}

	return fsa.Err(v.b)
}

// Start returns view state 0 mapped to the start pair, NoState when
// either operand is empty.
func (v *intersectView) Start() fsa.State {
	if fsa.IsEmpty(v.a) || fsa.IsEmpty(v.b) {
		return fsa.NoState
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	s, _ := v.registerLocked(pairKey{a: v.a.Start(), b: v.b.Start()})

	return s
}

// NumStates forces full expansion and returns the discovered pair
// count.
func (v *intersectView) NumStates() int {
	if fsa.IsEmpty(v.a) || fsa.IsEmpty(v.b) {
		return 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.registerLocked(pairKey{a: v.a.Start(), b: v.b.Start()})
	// Discovery appends to order, so the loop chases its own tail until
	// no pair is left unexpanded.
	for i := 0; i < len(v.order); i++ {
		v.arcsLocked(fsa.State(i))
	}

	return len(v.order)
}

// Final returns extend of the two component final weights: zero unless
// both components are final.
func (v *intersectView) Final(s fsa.State) tropical.Weight {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s < 0 || int(s) >= len(v.order) {
		return tropical.Zero()
	}
	p := v.order[s]

	return tropical.Extend(v.a.Final(p.a), v.b.Final(p.b))
}

// Arcs returns the merge-joined arcs of pair state s, discovering
// target pairs on demand.
func (v *intersectView) Arcs(s fsa.State) []fsa.Arc {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s < 0 || int(s) >= len(v.order) {
		return nil
	}

	return v.arcsLocked(s)
}

// registerLocked maps a pair to its dense view id, assigning the next
// id on first sight. Registration past the bound fails, poisoning the
// view. Caller holds v.mu.
func (v *intersectView) registerLocked(p pairKey) (fsa.State, bool) {
	if id, ok := v.ids[p]; ok {
		return id, true
	}
	if len(v.order) >= v.max {
		if v.err == nil {
			v.err = fmt.Errorf("Intersect: %d pair states: %w", len(v.order), ErrProductBound)
		}

		return fsa.NoState, false
	}
	id := fsa.State(len(v.order))
	v.ids[p] = id
	v.order = append(v.order, p)
	v.arcs = append(v.arcs, nil)

	return id, true
}

// arcsLocked computes (or recalls) the arcs of pair state s by
// merge-joining the two sorted operand arc lists. Caller holds v.mu.
func (v *intersectView) arcsLocked(s fsa.State) []fsa.Arc {
	if v.arcs[s] != nil {
		return v.arcs[s]
	}
	p := v.order[s]
	arcsA, arcsB := v.a.Arcs(p.a), v.b.Arcs(p.b)

	out := make([]fsa.Arc, 0, 4)
	i, j := 0, 0
	for i < len(arcsA) && j < len(arcsB) {
		la, lb := arcsA[i].Label, arcsB[j].Label
		switch {
		case la < lb:
			i++
		case lb < la:
			j++
		default:
			// Equal label: cross the two runs sharing it. Runs are the
			// contiguous equal-label blocks of each sorted list.
			ie, je := i, j
			for ie < len(arcsA) && arcsA[ie].Label == la {
				ie++
			}
			for je < len(arcsB) && arcsB[je].Label == la {
				je++
			}
			for x := i; x < ie; x++ {
				for y := j; y < je; y++ {
					to, ok := v.registerLocked(pairKey{a: arcsA[x].To, b: arcsB[y].To})
					if !ok {
						continue // bound tripped; view already poisoned
					}
					out = append(out, fsa.Arc{
						From:   s,
						To:     to,
						Label:  la,
						Weight: tropical.Extend(arcsA[x].Weight, arcsB[y].Weight),
					})
				}
			}
			i, j = ie, je
		}
	}
	if len(out) == 0 {
		// Distinguish "computed, none" from "not yet computed".
		out = []fsa.Arc{}
	}
	v.arcs[s] = out

	return out
}
