// Package fsa declares the primitive automaton vocabulary (State, Label,
// Arc, Kind), the read-only Automaton contract every representation
// satisfies, and the error-taxonomy roots shared by all operation
// packages.
//
// This file declares the value types, the representation tags, and the
// sentinel errors.
//
// Errors:
//
//	ErrInvalidArgument - caller passed an out-of-domain value.
//	ErrCorrupt         - serialized input is malformed or truncated.
//	ErrPrecondition    - an operation's structural precondition failed.
//	ErrResourceLimit   - a configured expansion bound was exceeded.
package fsa

import (
	"errors"

	"github.com/tropalab/tropa/tropical"
)

// Taxonomy roots. Operation packages wrap these with their own sentinels
// (fmt.Errorf("pkg: ...: %w", root)), so errors.Is matches both the
// specific failure and its class.
var (
	// ErrInvalidArgument classifies deterministic caller errors:
	// out-of-range state ids, n < 1, negative weights.
	ErrInvalidArgument = errors.New("fsa: invalid argument")

	// ErrCorrupt classifies malformed, truncated, or unknown-version
	// byte input to the codec.
	ErrCorrupt = errors.New("fsa: corrupt encoding")

	// ErrPrecondition classifies structural preconditions that failed,
	// e.g. a determinization that will not finish within its bounds.
	ErrPrecondition = errors.New("fsa: precondition violated")

	// ErrResourceLimit classifies expansions that would exceed a
	// configured memory bound, e.g. an enormous product automaton.
	ErrResourceLimit = errors.New("fsa: resource limit exceeded")
)

// State identifies an automaton state. States are dense in
// [0, NumStates); a State carries no payload beyond its identity.
type State int32

// NoState marks the absence of a state, e.g. the start of an empty
// automaton.
const NoState State = -1

// Label is an arc symbol. Label 0 is reserved for epsilon (consumes no
// input); real symbols conventionally start at 1.
type Label int32

// Epsilon is the reserved no-input label.
const Epsilon Label = 0

// Arc is a weighted, labeled transition. Acceptor restriction: a single
// Label stands for both input and output symbol.
type Arc struct {
	From   State
	To     State
	Label  Label
	Weight tropical.Weight
}

// Kind tags the representation behind an Automaton. The set is closed:
// consumers iterate every representation through the same Automaton
// contract and switch on Kind only at the few points that need the
// concrete form (freezing, boundary free dispatch).
type Kind uint8

const (
	// KindMaterialized: explicit per-state arc storage, mutable until
	// handed off.
	KindMaterialized Kind = iota

	// KindRmEpsilon: lazy epsilon-removed view over another automaton.
	KindRmEpsilon

	// KindIntersection: lazy synchronized-product view.
	KindIntersection

	// KindDifference: lazy product against an implicitly complemented,
	// determinized operand.
	KindDifference

	// KindCompact: dense frozen arrays mirroring the codec's wire image.
	KindCompact

	// KindIndexed: immutable flat arc storage with per-state spans, the
	// materialization target for lazy views.
	KindIndexed
)

// String returns the tag name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindMaterialized:
		return "materialized"
	case KindRmEpsilon:
		return "rmEpsilon"
	case KindIntersection:
		return "intersection"
	case KindDifference:
		return "difference"
	case KindCompact:
		return "compact"
	case KindIndexed:
		return "indexed"
	default:
		return "unknown"
	}
}
