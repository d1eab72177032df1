// types.go — configuration and sentinel errors shared by Intersect and
// Difference.

package compose

import (
	"fmt"

	"github.com/tropalab/tropa/fsa"
)

// Default expansion bounds. Both guard memory against pathological
// operand pairs; each is far above what ordinary acceptors reach.
const (
	// DefaultMaxProductStates caps discovered pair states per view.
	DefaultMaxProductStates = 1 << 20

	// DefaultMaxSubsetStates caps determinized states in Difference.
	DefaultMaxSubsetStates = 1 << 16
)

// Sentinel errors returned by the composition operations.
var (
	// ErrNilOperand indicates a nil operand automaton.
	ErrNilOperand = fmt.Errorf("compose: nil operand: %w", fsa.ErrInvalidArgument)

	// ErrProductBound indicates a lazy product view stopped expanding at
	// MaxProductStates. It is deferred: recorded on the view and
	// surfaced through fsa.Err, never returned by the constructor.
	ErrProductBound = fmt.Errorf("compose: product state bound exceeded: %w", fsa.ErrResourceLimit)

	// ErrDeterminizeBound indicates subset construction would exceed
	// MaxSubsetStates; Difference fails eagerly with it.
	ErrDeterminizeBound = fmt.Errorf("compose: determinization bound exceeded: %w", fsa.ErrPrecondition)

	// ErrBadBound signals a non-positive bound handed to an option
	// constructor; constructors panic with its message.
	ErrBadBound = fmt.Errorf("compose: bound must be positive: %w", fsa.ErrInvalidArgument)
)

// Options configures both composition operations.
//
// MaxProductStates – cap on discovered pair states in the lazy product
// (both operations). MaxSubsetStates – cap on determinized subset
// states (Difference only). Verbose – print subset-expansion progress
// via fmt.Printf.
type Options struct {
	MaxProductStates int
	MaxSubsetStates  int
	Verbose          bool
}

// Option is a functional option for Intersect and Difference.
type Option func(*Options)

// DefaultOptions returns the production defaults: generous bounds, quiet.
func DefaultOptions() Options {
	return Options{
		MaxProductStates: DefaultMaxProductStates,
		MaxSubsetStates:  DefaultMaxSubsetStates,
	}
}

// WithMaxProductStates caps how many pair states a lazy product view
// may discover before it faults with ErrProductBound.
// Must pass a positive value; zero or negative panics with ErrBadBound.
func WithMaxProductStates(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadBound.Error())
		}
		o.MaxProductStates = n
	}
}

// WithMaxSubsetStates caps the determinized state count in Difference.
// Must pass a positive value; zero or negative panics with ErrBadBound.
func WithMaxSubsetStates(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadBound.Error())
		}
		o.MaxSubsetStates = n
	}
}

// WithVerbose prints determinization progress, one line per processed
// subset state.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// resolve folds functional options over the defaults.
func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
