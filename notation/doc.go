// Package notation reads and writes the line-oriented text form of an
// acceptor, for debugging, fixtures, and interchange with scripts.
//
// The form is one initial line, one finals line, then one line per arc:
//
//	initial 0
//	final: 1, 3
//	0[a]	→ 1 # 0.105
//	1[b]	→ 3 # 0
//
// Format always writes the arrow as "→"; Parse accepts "->" as well.
// Labels print through a symbol table when one is supplied, numerically
// otherwise; epsilon always prints as <eps>. On the way back in, an
// all-digit symbol is read as a raw label id, <eps> is label 0, and any
// other spelling is interned into the supplied table (no table, no
// spelling: the parse fails). Every state id mentioned anywhere sizes
// the automaton: NumStates is one past the largest id seen.
//
// Parse returns a materialized automaton; finals accept with weight
// one, matching the construction contract. An initial of -1 denotes the
// empty automaton and round-trips.
//
// Errors:
//
//	ErrBadNotation - the text form is malformed: unparsable syntax, a
//	                 negative id, a non-finite or negative weight, or a
//	                 spelling with no table to intern it. Wraps the
//	                 corrupt-encoding taxonomy root.
package notation
