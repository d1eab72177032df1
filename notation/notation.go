// notation.go — the participle grammar and the reader.

package notation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/symbols"
	"github.com/tropalab/tropa/tropical"
)

// ErrBadNotation reports a malformed text form.
var ErrBadNotation = fmt.Errorf("notation: malformed text form: %w", fsa.ErrCorrupt)

// notationLexer tokenizes the line-oriented form. Newlines are
// structural; spaces and tabs are elided.
var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Arrow", Pattern: `→|->`},
	{Name: "Eps", Pattern: `<eps>`},
	{Name: "Number", Pattern: `[-+]?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[\[\]#:,]`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

// notationFile is the parse tree of a whole document.
type notationFile struct {
	Initial int32      `parser:"'initial' @Number"`
	Finals  []int32    `parser:"EOL 'final' ':' (@Number (',' @Number)*)?"`
	Arcs    []*arcLine `parser:"(EOL @@?)*"`
}

// arcLine is one arc row: source, bracketed symbol, arrow, target,
// weight.
type arcLine struct {
	From   int32   `parser:"@Number '['"`
	Symbol string  `parser:"@(Ident | Number | Eps) ']'"`
	To     int32   `parser:"Arrow @Number '#'"`
	Weight float32 `parser:"@Number"`
}

var notationParser = participle.MustBuild[notationFile](participle.Lexer(notationLexer))

// Parse reads the text form of an acceptor. A non-nil table resolves
// symbol spellings (interning unseen ones); with a nil table only
// numeric labels and <eps> are accepted.
func Parse(src string, t *symbols.Table) (fsa.Automaton, error) {
	file, err := notationParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrBadNotation)
	}

	// 1) Bound the state space: every mentioned id sizes the automaton.
	if file.Initial < -1 {
		return nil, fmt.Errorf("Parse: initial %d: %w", file.Initial, ErrBadNotation)
	}
	maxID := file.Initial
	for _, f := range file.Finals {
		if f < 0 {
			return nil, fmt.Errorf("Parse: final %d: %w", f, ErrBadNotation)
		}
		if f > maxID {
			maxID = f
		}
	}
	for _, line := range file.Arcs {
		if line.From < 0 || line.To < 0 {
			return nil, fmt.Errorf("Parse: arc %d->%d: %w", line.From, line.To, ErrBadNotation)
		}
		if line.From > maxID {
			maxID = line.From
		}
		if line.To > maxID {
			maxID = line.To
		}
	}

	// 2) Resolve labels and validate weights before touching storage.
	labels := make([]fsa.Label, len(file.Arcs))
	for i, line := range file.Arcs {
		l, err := resolveLabel(line.Symbol, t)
		if err != nil {
			return nil, err
		}
		labels[i] = l
		w := float64(line.Weight)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("Parse: arc %d->%d: weight %v: %w", line.From, line.To, line.Weight, ErrBadNotation)
		}
	}

	// 3) Replay into a materialized automaton.
	m := fsa.NewMaterialized(int(maxID) + 1)
	m.SetStart(fsa.State(file.Initial))
	for _, f := range file.Finals {
		m.SetFinal(fsa.State(f), tropical.One())
	}
	for i, line := range file.Arcs {
		m.AddArc(fsa.Arc{
			From:   fsa.State(line.From),
			To:     fsa.State(line.To),
			Label:  labels[i],
			Weight: tropical.Weight(line.Weight),
		})
	}
	m.SortArcs()

	return m, nil
}

// resolveLabel turns a bracketed spelling into a label: <eps> is 0,
// digits are a raw id, anything else interns through the table.
func resolveLabel(sym string, t *symbols.Table) (fsa.Label, error) {
	if sym == symbols.EpsilonSymbol {
		return fsa.Epsilon, nil
	}
	if n, err := strconv.ParseInt(sym, 10, 32); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("Parse: label %d: %w", n, ErrBadNotation)
		}

		return fsa.Label(n), nil
	}
	// Number-shaped but not an integer id, e.g. 1.5.
	if c := sym[0]; c == '-' || c == '+' || (c >= '0' && c <= '9') {
		return 0, fmt.Errorf("Parse: label %q: %w", sym, ErrBadNotation)
	}
	if t == nil {
		return 0, fmt.Errorf("Parse: symbol %q needs a table: %w", sym, ErrBadNotation)
	}

	return t.Intern(sym), nil
}
