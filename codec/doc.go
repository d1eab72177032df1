// Package codec serializes acceptors to a self-describing, versioned
// binary image and back.
//
// Wire format (all integers little-endian):
//
//	offset  size  field
//	0       4     magic "TFA1"
//	4       2     format version (currently 1; unknown versions fail closed)
//	6       2     flags (must be zero)
//	8       4     start state (int32, -1 when the acceptor is empty)
//	12      4     state count (uint32)
//	16      4     final count (uint32)
//	20      4     arc count (uint32)
//	24      ...   finals: (state int32, weight float32) pairs, strictly
//	              ascending by state
//	...     ...   per-state arc counts (uint32 each, in state order)
//	...     ...   arcs: (label int32, target int32, weight float32),
//	              grouped by source state, label-sorted within a state
//
// Final weights are part of the image because epsilon removal can fold
// path weight into finality; an acceptor that went through that
// transform round-trips exactly.
//
// Round-trip law: Decode(Encode(a)) is graph-isomorphic to a. Encode
// snapshots lazy views through fsa.Materialize, so a view's discovery
// order fixes the state renumbering once; repeated encodings of the
// same value yield identical bytes.
//
// Errors
//
// Decode validates every declared count against the remaining buffer
// before sizing any allocation from it, and rejects inconsistent
// framing outright. Failures wrap ErrBadMagic, ErrBadVersion,
// ErrTruncated or ErrMalformed, and all of them match fsa.ErrCorrupt
// via errors.Is.
package codec
