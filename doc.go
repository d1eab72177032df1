// Package tropa is your in-memory toolkit for weighted finite-state
// acceptors over the tropical semiring: build them, freeze them,
// intersect and subtract them, and rank what they accept.
//
// 🚀 What is tropa?
//
//	A small, deterministic acceptor engine that brings together:
//		• Weights: tropical float32 algebra (min, +), probabilities in via -ln(p)
//		• Core contract: one Automaton interface over every representation
//		• Construction: validated one-call Build, frozen compact form, sorted arcs
//		• Transforms: lazy epsilon removal, intersection, difference
//		• Search: generalized Dijkstra n-best, returned as an acceptor
//		• Enumeration: infinite languages paged out in weight order
//		• Exchange: single-blob binary codec, text notation, TSV symbol tables
//
// ✨ Why choose tropa?
//
//   - Deterministic – same input, same acceptor, bit for bit
//   - Fail-fast – wrapped sentinel errors under one small taxonomy
//   - Lazy where it pays – composition and epsilon removal are views, not copies
//   - Pure Go – no cgo, a handful of small, boring dependencies
//
// Under the hood, everything is organized under ten subpackages:
//
//	tropical/ — the (min,+) weight algebra: Zero, One, Combine, Extend, FromProb
//	fsa/      — the Automaton contract, materialized/compact/indexed forms, epsilon removal
//	builder/  — validated construction of acceptors from states, finals and arcs
//	codec/    — the binary blob encoding: Encode and Decode
//	compose/  — intersection and difference of acceptors
//	nbest/    — the n cheapest accepting paths, folded into a result tree
//	language/ — batch-by-batch enumeration of a language, cheapest words first
//	notation/ — the human-readable text form: Parse and Format
//	symbols/  — label/string interning with a TSV exchange form
//	boundary/ — a handle-based adapter for embedding hosts
//
// Quick ASCII example:
//
//	0 ──a/0.36──▶ 1 ──b/0.69──▶ ((2))
//
//	accepts the single word "a b" with weight 1.05 (0.36 + 0.69);
//	double circles mark final states.
//
// Next up: transducers, pluggable semirings, on-disk symbol tables and
// beyond. Dive into the per-package docs for contracts, complexity notes
// and worked examples.
//
//	go get github.com/tropalab/tropa
package tropa
