// types.go — handle and vector descriptors, the flat arc record, and
// the adapter's sentinel error.

package boundary

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tropalab/tropa/fsa"
)

// VecTag discriminates the payload of a Vector. Frees dispatch on it.
type VecTag uint8

const (
	// VecBytes tags a byte payload (encoded automata).
	VecBytes VecTag = iota

	// VecInts tags an int32 payload (state lists).
	VecInts

	// VecArcs tags a flat arc-record payload.
	VecArcs
)

// String returns the tag name used in diagnostics.
func (t VecTag) String() string {
	switch t {
	case VecBytes:
		return "bytes"
	case VecInts:
		return "ints"
	case VecArcs:
		return "arcs"
	default:
		return fmt.Sprintf("VecTag(%d)", uint8(t))
	}
}

// ArcRecord is the flat cross-boundary arc layout. Field order is part
// of the contract and mirrors the arc lists a foreign caller assembles.
type ArcRecord struct {
	FromState int32
	ToState   int32
	Label     int32
	Weight    float32
}

// Handle is an opaque reference to an automaton held by an Adapter. The
// Kind tag exposes the representation without exposing the value. The
// zero Handle refers to nothing; every operation rejects it with
// ErrBadHandle.
type Handle struct {
	Kind fsa.Kind

	id uuid.UUID
}

// Vector is a tagged, caller-owned bulk payload. Exactly one of Bytes,
// Ints, Arcs is set, matching Tag. Payloads are copies; mutating them
// never touches engine state.
type Vector struct {
	Tag VecTag

	Bytes []byte
	Ints  []int32
	Arcs  []ArcRecord

	id uuid.UUID
}

// ErrBadHandle reports an operation on a handle this adapter never
// issued or has already freed.
var ErrBadHandle = fmt.Errorf("boundary: unknown or freed handle: %w", fsa.ErrInvalidArgument)
