// Package tropical implements the tropical (min-plus) semiring over
// float32 weights, the arithmetic every automaton operation in this
// module is defined in.
//
// Overview:
//
//   - Zero() is +Inf: the weight of an impossible path and the implicit
//     final weight of a non-final state.
//   - One() is 0: the neutral weight, carried by start states and by
//     boolean acceptance.
//   - Combine(a, b) is min(a, b): choosing the better of two alternative
//     paths.
//   - Extend(a, b) is a + b: concatenating two path segments.
//
// Lower is better throughout: a weight is a cost (commonly a negative
// log-probability), so the lightest accepting path is the most probable
// word.
//
// When to use:
//
//   - Directly, when scoring or comparing paths outside the automaton
//     packages (e.g. re-ranking n-best output).
//   - FromProb/Prob convert between probability mass and tropical cost
//     for callers that think in probabilities.
//
// All functions are pure and total over the valid domain: finite
// non-negative weights plus the +Inf zero. NaN and negative inputs are
// caller error; behavior on them is undefined downstream (the builder
// package rejects negative arc weights up front).
package tropical
