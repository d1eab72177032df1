// Package nbest extracts the n cheapest accepting paths of a weighted
// acceptor as a new acceptor.
//
// Overview:
//
//   - NBest runs a generalized Dijkstra search over (state, rank) nodes:
//     each state may be finalized up to n times, once per rank slot, so
//     the search enumerates distinct cheapest paths rather than a single
//     shortest one.
//   - Acceptance is modeled by an implicit super-final node reached from
//     every final state through an epsilon hop carrying the final
//     weight; the n-th pop of the super-final node ends the search.
//   - The popped nodes form a tree over the original labels and weights.
//     The result is that tree behind a lazy epsilon-removal view, which
//     collapses the super-final hops, so callers see an epsilon-free
//     acceptor of kind fsa.KindRmEpsilon whose language is exactly the
//     extracted paths.
//
// When to use:
//
//   - Ranked decoding: best hypothesis plus alternatives from a lattice.
//   - Enumerating a weighted language in cost order, step by step (see
//     the language package, which drives exactly this loop).
//
// Key properties:
//
//   - Deterministic: the queue breaks weight ties by insertion sequence,
//     so equal inputs always produce the identical result, and equal
//     weights come out in discovery order.
//   - Monotone: the language of NBest(a, n) is a subset of the language
//     of NBest(a, n+1); path weights are non-decreasing in rank.
//   - Fewer than n accepting paths is a result, not an error: the search
//     simply exhausts the frontier.
//   - An empty input yields an empty result and no error.
//
// Performance and complexity:
//
//   - Time:  O(n · (V + A) · log(n · V)) in the worst case: every state
//     can be popped n times, every pop relaxes its out-arcs, each heap
//     operation costs the log of the queue size.
//   - Space: O(n · V) popped nodes plus the heap under lazy
//     decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilAutomaton: a nil input automaton.
//   - ErrBadN: n < 1.
//   - ErrSearchBound: the pop count exceeded MaxExpansions (set the
//     option higher for pathological inputs, or treat the input as too
//     large).
//   - A deferred fault on a lazy input view (for example a tripped
//     product bound) is surfaced as that view's own error.
//
// Thread safety:
//
//   - NBest only reads its input; concurrent calls over the same
//     automaton are safe. The result view carries its own internal
//     lock, like every lazy representation.
package nbest
