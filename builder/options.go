// SPDX-License-Identifier: MIT
// Package: tropa/builder
//
// options.go — functional options for acceptor construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*Options)).
//   • No option constructor panics; there is nothing to validate here,
//     every knob is a plain switch.
//   • No hidden globals; everything flows through Options.

package builder

// Option customizes Build behavior via functional arguments.
type Option func(*Options)

// Options holds the resolved construction configuration.
type Options struct {
	// Frozen selects the compact (dense, frozen) result representation
	// instead of the default materialized one.
	Frozen bool
}

// DefaultOptions returns the construction defaults: a materialized
// result.
func DefaultOptions() Options {
	return Options{Frozen: false}
}

// WithFrozen freezes the built acceptor into the compact representation
// before returning it. The boundary's construction entrypoint builds
// frozen acceptors; library callers usually keep the default.
func WithFrozen() Option {
	return func(o *Options) { o.Frozen = true }
}
