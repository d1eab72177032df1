// Package boundary adapts the engine for a foreign caller: automata
// travel as tagged opaque handles, bulk data travels as tagged vectors,
// and every produced value is released through an explicit free call.
//
// # Handles and vectors
//
// A Handle pairs a representation tag (fsa.Kind) with an opaque id; the
// caller never sees the automaton behind it. A Vector carries exactly
// one payload (bytes, int32s, or flat arc records) discriminated by its
// Tag, and never aliases engine-internal storage: inspection always
// copies out.
//
// ArcRecord is the flat cross-boundary arc layout, four fields in fixed
// order: FromState, ToState, Label (int32) and Weight (float32).
//
// # Ownership
//
// Ownership of a returned Handle or Vector transfers to the caller, who
// releases it exactly once via FreeAutomaton or FreeVector. Both frees
// are keyed by the stored tag and are safe no-ops on values already
// freed or never issued. A failed operation returns the zero Handle or
// Vector and registers nothing, so there is never a half-made value to
// clean up. Live reports the number of outstanding handles plus
// vectors; tests use it to assert leak-freedom.
//
// # Errors
//
//	ErrBadHandle - the handle is unknown to this adapter or was freed.
//
// Construction, transform, and codec failures surface the underlying
// package error unchanged (builder, nbest, compose, codec), so callers
// classify them with errors.Is against the fsa taxonomy roots exactly
// as they would inside the engine.
//
// # Concurrency
//
// An Adapter is safe for concurrent use; the registry is guarded by a
// single mutex. The automata behind handles are immutable, so operation
// bodies run outside the lock.
package boundary
