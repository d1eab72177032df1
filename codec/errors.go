// errors.go — sentinel errors for the codec package.
//
// Error policy:
//   • Callers branch with errors.Is; never match message text.
//   • Every decode sentinel wraps fsa.ErrCorrupt at definition site, so
//     errors.Is also matches the taxonomy class.
//   • Call sites attach positional context (byte offsets, element
//     indices) by wrapping the sentinel, never by redefining it.

package codec

import (
	"fmt"

	"github.com/tropalab/tropa/fsa"
)

// ErrNilInput indicates Encode was handed a nil automaton.
// Classification: Validation error (arguments).
var ErrNilInput = fmt.Errorf("codec: nil automaton: %w", fsa.ErrInvalidArgument)

// ErrBadMagic indicates the buffer does not start with the acceptor
// framing tag; the bytes are not an acceptor image at all.
var ErrBadMagic = fmt.Errorf("codec: unrecognized framing tag: %w", fsa.ErrCorrupt)

// ErrBadVersion indicates a framing version this package does not
// implement. Unknown versions fail closed rather than misparse.
var ErrBadVersion = fmt.Errorf("codec: unsupported format version: %w", fsa.ErrCorrupt)

// ErrTruncated indicates the buffer ends before the content its header
// declares.
var ErrTruncated = fmt.Errorf("codec: buffer shorter than declared content: %w", fsa.ErrCorrupt)

// ErrMalformed indicates internally inconsistent framing: nonzero
// flags, trailing bytes, count mismatches, out-of-range ids, unsorted
// records or non-finite weights.
var ErrMalformed = fmt.Errorf("codec: inconsistent framing: %w", fsa.ErrCorrupt)
