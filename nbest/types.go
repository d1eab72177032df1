// types.go — configuration and sentinel errors for the n-best search.

package nbest

import (
	"fmt"

	"github.com/tropalab/tropa/fsa"
)

// DefaultMaxExpansions caps total queue pops per search. The cap only
// exists as a memory guard; ordinary inputs stay far below it.
const DefaultMaxExpansions = 1 << 22

// Sentinel errors returned by NBest.
var (
	// ErrNilAutomaton indicates a nil input automaton.
	ErrNilAutomaton = fmt.Errorf("nbest: nil automaton: %w", fsa.ErrInvalidArgument)

	// ErrBadN indicates a path count below one.
	ErrBadN = fmt.Errorf("nbest: n must be at least 1: %w", fsa.ErrInvalidArgument)

	// ErrSearchBound indicates the search popped more queue entries than
	// MaxExpansions allows.
	ErrSearchBound = fmt.Errorf("nbest: expansion bound exceeded: %w", fsa.ErrResourceLimit)

	// ErrBadExpansions signals a non-positive cap handed to the option
	// constructor, which panics with its message.
	ErrBadExpansions = fmt.Errorf("nbest: MaxExpansions must be positive: %w", fsa.ErrInvalidArgument)
)

// Options configures the search.
//
// MaxExpansions – cap on total queue pops before the search fails with
// ErrSearchBound.
type Options struct {
	MaxExpansions int
}

// Option is a functional option for NBest.
type Option func(*Options)

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{MaxExpansions: DefaultMaxExpansions}
}

// WithMaxExpansions caps total queue pops.
// Must pass a positive value; zero or negative panics with
// ErrBadExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadExpansions.Error())
		}
		o.MaxExpansions = n
	}
}
