// Package compose implements the binary language operations on weighted
// acceptors: intersection and difference. Both consume any fsa.Automaton
// representation and produce lazy views that discover product states on
// demand, so unreachable pairs are never materialized.
//
// The operations offered are:
//
//   - Intersect
//
//   - Method: synchronized product over pair states (sa, sb); the two
//     label-sorted arc lists of a pair are merge-joined, and equal-label
//     runs are crossed.
//
//   - Time:   O(P · (d_a + d_b)) for P discovered pairs with out-degrees
//     d_a, d_b (amortized; equal-label runs multiply).
//
//   - Memory: O(P) registry + memoized arcs.
//
//   - Difference
//
//   - Method: strip b's weights, determinize the result by bounded
//     subset construction, then run the synchronized product of a
//     against the implicit complement: a label with no outgoing arc in
//     the current subset state routes to an always-accepting sink, so
//     the complement is total without ever being built.
//
//   - Time:   determinization O(D · A_b log A_b) for D subsets, then
//     product as above.
//
//   - Memory: O(D) determinized states (bounded), O(P) pairs.
//
// # Laziness and Bounds
//
// Intersect and the product phase of Difference return views; state
// pairs register in a lock-guarded registry in discovery order, which
// fixes the result's state numbering once. NumStates forces full
// expansion. Exceeding MaxProductStates does not return an error from
// the constructor: the view records the failure and fsa.Err reports it,
// which is how every consumer that walks a view to completion
// (materialization, encoding, path search) rejects a truncated product.
//
// Determinization in Difference is eager and bounded: exceeding
// MaxSubsetStates fails the Difference call itself with
// ErrDeterminizeBound, since no useful view can be built from a partial
// subset automaton.
//
// # Epsilon
//
// Both operations treat the epsilon label as an ordinary symbol: it
// synchronizes only against itself. Set semantics over languages with
// epsilon arcs therefore require epsilon-free operands; run
// fsa.RmEpsilon first. Path-search results are epsilon-free already.
//
// # Weights
//
// Intersection extends weights pairwise (tropical addition). Difference
// weights come from a alone: b contributes membership, never weight,
// which is why its weights are stripped up front.
//
// # Errors
//
//	ErrNilOperand        - a nil operand automaton (fsa.ErrInvalidArgument).
//	ErrProductBound      - deferred, via fsa.Err: pair registry hit
//	                       MaxProductStates (fsa.ErrResourceLimit).
//	ErrDeterminizeBound  - Difference only, eager: subset construction hit
//	                       MaxSubsetStates (fsa.ErrPrecondition).
//
// Option constructors panic on non-positive bounds; runtime code never
// panics.
package compose
