package fsa

import (
	"sort"

	"github.com/tropalab/tropa/tropical"
)

// packedArc is an arc without its source state; the source is implied
// by the per-state offset table. This mirrors the codec's wire image,
// 12 bytes per arc.
type packedArc struct {
	label  Label
	to     State
	weight tropical.Weight
}

// Compact is the frozen dense representation: per-state arc spans over
// one packed arc array, finals as a sorted id list with parallel
// weights. It trades arc access cost (Arcs synthesizes a fresh slice
// per call) for minimal footprint, and is the representation of record
// at the boundary and in serialized form. Use IndexedOf when iterating
// the same automaton heavily.
//
// Final weights are carried even though construction always marks
// finality with tropical.One(): epsilon removal may push residual
// epsilon-path weight onto finality, and freezing must not drop it.
type Compact struct {
	start   State
	finals  []State           // ascending
	finalW  []tropical.Weight // parallel to finals
	offsets []int32           // len NumStates+1; arcs of s live in [offsets[s], offsets[s+1])
	arcs    []packedArc
}

// CompactOf freezes a into the compact representation. State ids are
// preserved as a presents them (lazy views present dense discovery
// ids). Idempotent: a *Compact input is returned unchanged. Lazy inputs
// are fully expanded; a deferred expansion failure is returned instead
// of a partial freeze.
func CompactOf(a Automaton) (*Compact, error) {
	if c, ok := a.(*Compact); ok {
		return c, nil
	}

	n := a.NumStates() // forces full expansion of lazy kinds
	if err := Err(a); err != nil {
		return nil, err
	}

	c := &Compact{
		start:   a.Start(),
		offsets: make([]int32, n+1),
	}
	for s := State(0); s < State(n); s++ {
		if w := a.Final(s); !tropical.IsZero(w) {
			c.finals = append(c.finals, s)
			c.finalW = append(c.finalW, w)
		}
		for _, arc := range a.Arcs(s) {
			c.arcs = append(c.arcs, packedArc{label: arc.Label, to: arc.To, weight: arc.Weight})
		}
		c.offsets[s+1] = int32(len(c.arcs))
	}

	return c, nil
}

// Kind reports KindCompact.
func (c *Compact) Kind() Kind { return KindCompact }

// Start returns the initial state, NoState when empty.
func (c *Compact) Start() State { return c.start }

// NumStates returns the state count.
func (c *Compact) NumStates() int { return len(c.offsets) - 1 }

// Final returns the final weight of s, tropical.Zero() for non-final or
// out-of-range s.
func (c *Compact) Final(s State) tropical.Weight {
	i := sort.Search(len(c.finals), func(i int) bool { return c.finals[i] >= s })
	if i < len(c.finals) && c.finals[i] == s {
		return c.finalW[i]
	}

	return tropical.Zero()
}

// Arcs synthesizes s's outgoing arcs from the packed span. The result
// is freshly allocated on every call.
func (c *Compact) Arcs(s State) []Arc {
	if s < 0 || int(s) >= c.NumStates() {
		return nil
	}
	lo, hi := c.offsets[s], c.offsets[s+1]
	if lo == hi {
		return nil
	}
	out := make([]Arc, 0, hi-lo)
	for _, p := range c.arcs[lo:hi] {
		out = append(out, Arc{From: s, To: p.to, Label: p.label, Weight: p.weight})
	}

	return out
}
