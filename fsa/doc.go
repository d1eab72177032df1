// Package fsa provides the in-memory representations of weighted
// finite-state acceptors over the tropical semiring, behind one
// read-only graph contract.
//
// An acceptor A = (Q, Σ, E, q0, F) carries a single label per arc
// (input and output coincide), weights from package tropical, and
// boolean start/final structure:
//
//   - States are dense int32 ids in [0, NumStates).
//   - Label 0 is reserved for epsilon.
//   - Arcs(s) of every representation come back sorted by label, the
//     invariant the composition merge-join relies on.
//   - A final state's weight is tropical.One() at construction time;
//     transforms may fold epsilon residue into graded final weights.
//
// Representations (Kind, a closed set):
//
//   - KindMaterialized — explicit per-state storage, the construction
//     form (mutable until handed off as an Automaton).
//   - KindCompact      — frozen dense arrays mirroring the codec's wire
//     image; smallest footprint, Arcs synthesizes per call.
//   - KindIndexed      — immutable flat arc array with per-state spans;
//     the materialization target, cheapest to iterate.
//   - KindRmEpsilon    — lazy epsilon-removed view (renumbers to the
//     states still reachable without epsilon arcs).
//   - KindIntersection, KindDifference — lazy product views built by
//     package compose.
//
// Every consumer iterates any representation through the same contract
// (Kind, Start, NumStates, Final, Arcs) and switches on Kind only where
// the concrete form matters (freezing, boundary free dispatch). Lazy views expand reachable states on demand under an
// internal mutex, so concurrent readers of one value are safe; a
// tripped expansion bound is deferred and surfaced through Err.
//
// Transforms in this package:
//
//	UnweightedView(a)  // copy with all weights forced to One   O(V+E)
//	RmEpsilon(a)       // lazy epsilon removal                  O(1), pay-as-you-go
//	Materialize(a)     // lazy → Indexed, concrete unchanged    O(V+E)
//	CompactOf(a)       // freeze to the dense wire image        O(V+E)
//	IndexedOf(a)       // flatten to the iteration-friendly form O(V+E)
//
// Inspection helpers:
//
//	IsEmpty(a)      // no start state, empty language
//	FinalStates(a)  // ascending final ids
//	ArcList(a)      // every arc, grouped by source
//	CountArcs(a)
//	Err(a)          // deferred lazy-expansion failure, if any
//
// Errors:
//
//	ErrInvalidArgument – out-of-domain caller value (taxonomy root)
//	ErrCorrupt         – malformed serialized input (taxonomy root)
//	ErrPrecondition    – structural precondition failed (taxonomy root)
//	ErrResourceLimit   – expansion bound exceeded (taxonomy root)
//
// Operation packages wrap these roots with their own sentinels, so
// errors.Is answers both "what failed" and "what class of failure".
package fsa
