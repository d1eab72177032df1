// SPDX-License-Identifier: MIT
// Package: tropa/builder
//
// errors.go — sentinel errors for acceptor construction.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every sentinel wraps its fsa taxonomy root at definition site, so
//     errors.Is also matches the class (fsa.ErrInvalidArgument).
//   • Build attaches positional context via %w wrapping; it never panics.

package builder

import (
	"fmt"

	"github.com/tropalab/tropa/fsa"
)

// ErrBadCount indicates a negative declared state count.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrBadCount) { /* fix numStates */ }.
var ErrBadCount = fmt.Errorf("builder: negative state count: %w", fsa.ErrInvalidArgument)

// ErrStateRange indicates a final-state id or arc endpoint outside
// [0, numStates).
// Classification: Validation error (ids).
// Usage: if errors.Is(err, ErrStateRange) { /* renumber input */ }.
var ErrStateRange = fmt.Errorf("builder: state id out of range: %w", fsa.ErrInvalidArgument)

// ErrBadWeight indicates an arc weight outside the valid domain:
// negative, NaN, or non-finite. Stored weights must be finite and
// non-negative; the semiring zero (+Inf) never appears on an arc.
// Classification: Validation error (weights).
// Usage: if errors.Is(err, ErrBadWeight) { /* sanitize weights */ }.
var ErrBadWeight = fmt.Errorf("builder: weight outside valid domain: %w", fsa.ErrInvalidArgument)

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      fmt.Errorf("Build: arc %d: %w", i, ErrStateRange)
//    preserves both the package sentinel and the taxonomy root for
//    errors.Is while pinpointing the offending input element.
//
// 2) Priority (when multiple validations could fail):
//    • ErrBadCount    — the state count first; nothing else is checkable
//      without it.
//    • ErrStateRange  — then ids (finals before arcs, arcs in order).
//    • ErrBadWeight   — then weights, in arc order.
//
// 3) Testing guidance:
//    Table tests assert errors.Is(err, ErrX); never match error strings.
