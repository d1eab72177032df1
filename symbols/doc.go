// Package symbols maps between human-readable symbol strings and the
// dense integer labels arcs carry.
//
// A Table interns symbols on first sight, assigning ids 1, 2, 3, … in
// interning order. Id 0 is reserved for epsilon and pre-bound to the
// spelling "<eps>". Tables serialize to a two-column TSV (symbol, id),
// one row per real symbol in id order; the epsilon row is implicit and
// never written. ReadTSV restores a table from that form, accepting
// rows in any order but rejecting duplicates, id 0, and gaps in the id
// range.
//
// A Table is not safe for concurrent mutation; interleave Intern calls
// from one goroutine, then share the table read-only.
//
// Errors:
//
//	ErrBadTSV - a serialized table is malformed (bad row shape,
//	            bad id, duplicate, gap). Wraps the corrupt-encoding
//	            taxonomy root.
package symbols
