// Package language enumerates the weighted language of an acceptor in
// best-first order, batch by batch.
//
// # Overview
//
// Enumerate(a, step) returns a Generator. Each Next call extracts the
// up-to-step cheapest remaining paths, folds them into scored words,
// and subtracts those words from the remainder, so successive batches
// never repeat a word and weights never decrease across batches. A word
// spelled by several paths surfaces once, at its cheapest path weight.
//
// # When to use
//
//   - Dumping the k most probable strings of a lattice page by page.
//   - Driving tooling that wants words, not automata (see Batch.Words).
//   - Infinite languages: a cyclic acceptor yields batches forever;
//     stop when you have enough.
//
// # Key properties
//
//   - Deterministic: equal-weight words keep the result automaton's
//     path order, the empty word first when the start state accepts.
//   - Exhaustion is not an error: a drained generator returns ok=false
//     with a nil Err.
//   - Failure is sticky: once Err is non-nil every later Next returns
//     ok=false.
//
// # Performance
//
// Each round runs one n-best search over the remainder and one
// difference against a trie of the batch's words. The remainder is a
// stack of lazy difference views, one per round, so round r pays
// O(r) view indirection on top of the search itself.
//
// # Error handling
//
//	ErrNilAutomaton - Enumerate was handed a nil automaton.
//	ErrBadStep      - the batch size is below one.
//
// Search and subtraction failures (expansion bounds, deferred input
// faults) surface through Err unchanged.
//
// # Thread safety
//
// A Generator is single-owner: call Next from one goroutine. The input
// automaton is never mutated.
package language
