// SPDX-License-Identifier: MIT
// Package: tropa/builder
//
// Package builder turns raw construction input (a state count, a final
// list, an arc list) into a well-formed acceptor.
//
// Guarantees established here, relied on by every downstream package:
//
//   - Every state id referenced by the input is validated against the
//     declared state count (ErrStateRange otherwise).
//   - Arc weights are finite and non-negative (ErrBadWeight otherwise).
//   - Final states always receive weight tropical.One(): acceptance is
//     boolean at construction, never graded.
//   - The start state is fixed to 0. This is a deliberate construction
//     policy, not a missing capability; renumber before building if a
//     different start is needed.
//   - Arcs come out stably sorted by (from, label), the invariant the
//     composition merge-join and the codec's deterministic output
//     depend on.
//
// Build returns the materialized representation by default; WithFrozen
// freezes the result into the compact representation in the same call,
// which is what the boundary's construction entrypoint uses.
package builder
