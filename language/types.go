// types.go — scored words, batches, configuration, and sentinel errors.

package language

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tropalab/tropa/compose"
	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/nbest"
	"github.com/tropalab/tropa/symbols"
	"github.com/tropalab/tropa/tropical"
)

// ScoredWord is one enumerated word: its label sequence and the weight
// of its cheapest accepting path.
type ScoredWord struct {
	Labels []fsa.Label
	Weight tropical.Weight
}

// Batch is one round of enumeration, cheapest word first.
type Batch []ScoredWord

// Words spells every word in the batch through a symbol table, labels
// joined by spaces; a nil table spells labels numerically. The empty
// word spells as the empty string.
func (b Batch) Words(t *symbols.Table) []string {
	out := make([]string, len(b))
	for i, sw := range b {
		parts := make([]string, len(sw.Labels))
		for j, l := range sw.Labels {
			parts[j] = spell(l, t)
		}
		out[i] = strings.Join(parts, " ")
	}

	return out
}

// spell renders one label: <eps> for epsilon, the table spelling when
// bound, the id otherwise.
func spell(l fsa.Label, t *symbols.Table) string {
	if l == fsa.Epsilon {
		return symbols.EpsilonSymbol
	}
	if t != nil {
		if sym, ok := t.Symbol(l); ok {
			return sym
		}
	}

	return strconv.Itoa(int(l))
}

// Sentinel errors reported through Generator.Err.
var (
	// ErrNilAutomaton indicates a nil input automaton.
	ErrNilAutomaton = fmt.Errorf("language: nil automaton: %w", fsa.ErrInvalidArgument)

	// ErrBadStep indicates a batch size below one.
	ErrBadStep = fmt.Errorf("language: step must be at least 1: %w", fsa.ErrInvalidArgument)
)

// Options configures a Generator.
//
// MaxExpansions    – pop cap forwarded to each round's n-best search.
// MaxSubsetStates  – determinization cap forwarded to each round's
// subtraction.
type Options struct {
	MaxExpansions   int
	MaxSubsetStates int
}

// Option is a functional option for Enumerate.
type Option func(*Options)

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		MaxExpansions:   nbest.DefaultMaxExpansions,
		MaxSubsetStates: compose.DefaultMaxSubsetStates,
	}
}

// WithMaxExpansions caps queue pops in each round's search. Must pass a
// positive value; zero or negative panics.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(nbest.ErrBadExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithMaxSubsetStates caps subset construction in each round's
// subtraction. Must pass a positive value; zero or negative panics.
func WithMaxSubsetStates(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(compose.ErrBadBound.Error())
		}
		o.MaxSubsetStates = n
	}
}
