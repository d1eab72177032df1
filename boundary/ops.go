// ops.go — the cross-boundary operation surface: construction,
// inspection, transforms, and the codec entrypoints.
//
// Every operation resolves handles first, runs the engine outside the
// registry lock, and registers results only on success, so a failure
// leaves the caller nothing to free.

package boundary

import (
	"fmt"

	"github.com/tropalab/tropa/builder"
	"github.com/tropalab/tropa/codec"
	"github.com/tropalab/tropa/compose"
	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/nbest"
	"github.com/tropalab/tropa/tropical"
)

// FromArcList builds a frozen acceptor from flat caller data and
// returns a handle to it. Validation follows the construction contract:
// state ids must lie in [0, stateCount), weights must be finite and
// non-negative, the start state is 0, finals accept with weight one.
// The input slices are copied, never retained.
func (ad *Adapter) FromArcList(stateCount int32, finals []int32, arcs []ArcRecord) (Handle, error) {
	fs := make([]fsa.State, len(finals))
	for i, s := range finals {
		fs[i] = fsa.State(s)
	}
	as := make([]fsa.Arc, len(arcs))
	for i, r := range arcs {
		as[i] = fsa.Arc{
			From:   fsa.State(r.FromState),
			To:     fsa.State(r.ToState),
			Label:  fsa.Label(r.Label),
			Weight: tropical.Weight(r.Weight),
		}
	}

	a, err := builder.Build(stateCount, fs, as, builder.WithFrozen())
	if err != nil {
		return Handle{}, err
	}

	return ad.registerAutomaton(a), nil
}

// InitialState returns the start state behind h, or -1 when the
// automaton is empty.
func (ad *Adapter) InitialState(h Handle) (int32, error) {
	a, err := ad.lookup(h)
	if err != nil {
		return int32(fsa.NoState), fmt.Errorf("InitialState: %w", err)
	}

	return int32(a.Start()), nil
}

// FinalStates returns the accepting states behind h, ascending, as an
// int32 vector. On lazy kinds this forces full expansion; a deferred
// fault fails the call instead of returning a truncated list.
func (ad *Adapter) FinalStates(h Handle) (Vector, error) {
	a, err := ad.lookup(h)
	if err != nil {
		return Vector{}, fmt.Errorf("FinalStates: %w", err)
	}

	states := fsa.FinalStates(a)
	if err := fsa.Err(a); err != nil {
		return Vector{}, err
	}
	ints := make([]int32, len(states))
	for i, s := range states {
		ints[i] = int32(s)
	}

	return ad.registerVector(Vector{Tag: VecInts, Ints: ints}), nil
}

// ArcList returns every arc behind h as a flat record vector, grouped
// by source state and label-sorted within a state. On lazy kinds this
// forces full expansion; a deferred fault fails the call.
func (ad *Adapter) ArcList(h Handle) (Vector, error) {
	a, err := ad.lookup(h)
	if err != nil {
		return Vector{}, fmt.Errorf("ArcList: %w", err)
	}

	arcs := fsa.ArcList(a)
	if err := fsa.Err(a); err != nil {
		return Vector{}, err
	}
	recs := make([]ArcRecord, len(arcs))
	for i, arc := range arcs {
		recs[i] = ArcRecord{
			FromState: int32(arc.From),
			ToState:   int32(arc.To),
			Label:     int32(arc.Label),
			Weight:    float32(arc.Weight),
		}
	}

	return ad.registerVector(Vector{Tag: VecArcs, Arcs: recs}), nil
}

// NBest runs the n-cheapest-paths extraction on the automaton behind h
// and returns a handle to the result view.
func (ad *Adapter) NBest(h Handle, n int32) (Handle, error) {
	a, err := ad.lookup(h)
	if err != nil {
		return Handle{}, fmt.Errorf("NBest: %w", err)
	}

	out, err := nbest.NBest(a, int(n))
	if err != nil {
		return Handle{}, err
	}

	return ad.registerAutomaton(out), nil
}

// Intersect returns a handle to the lazy intersection of the automata
// behind ha and hb.
func (ad *Adapter) Intersect(ha, hb Handle) (Handle, error) {
	a, err := ad.lookup(ha)
	if err != nil {
		return Handle{}, fmt.Errorf("Intersect: left operand: %w", err)
	}
	b, err := ad.lookup(hb)
	if err != nil {
		return Handle{}, fmt.Errorf("Intersect: right operand: %w", err)
	}

	out, err := compose.Intersect(a, b)
	if err != nil {
		return Handle{}, err
	}

	return ad.registerAutomaton(out), nil
}

// Difference returns a handle to the difference of the automata behind
// ha and hb: paths of ha whose label sequence hb does not accept. The
// subtrahend is determinized eagerly, so a bound failure surfaces here.
func (ad *Adapter) Difference(ha, hb Handle) (Handle, error) {
	a, err := ad.lookup(ha)
	if err != nil {
		return Handle{}, fmt.Errorf("Difference: left operand: %w", err)
	}
	b, err := ad.lookup(hb)
	if err != nil {
		return Handle{}, fmt.Errorf("Difference: right operand: %w", err)
	}

	out, err := compose.Difference(a, b)
	if err != nil {
		return Handle{}, err
	}

	return ad.registerAutomaton(out), nil
}

// FromBytes decodes an encoded automaton and returns a handle to it.
// The decoded automaton shares no storage with buf; the caller may
// reuse the slice immediately.
func (ad *Adapter) FromBytes(buf []byte) (Handle, error) {
	a, err := codec.Decode(buf)
	if err != nil {
		return Handle{}, err
	}

	return ad.registerAutomaton(a), nil
}

// ToBytes encodes the automaton behind h and returns the blob as a byte
// vector.
func (ad *Adapter) ToBytes(h Handle) (Vector, error) {
	a, err := ad.lookup(h)
	if err != nil {
		return Vector{}, fmt.Errorf("ToBytes: %w", err)
	}

	buf, err := codec.Encode(a)
	if err != nil {
		return Vector{}, err
	}

	return ad.registerVector(Vector{Tag: VecBytes, Bytes: buf}), nil
}
