// File: notation_test.go
// Package notation_test covers the text form: golden output, parse
// round-trips, arrow variants, symbol resolution, state sizing, and the
// rejection classes.
package notation_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tropalab/tropa/builder"
	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/notation"
	"github.com/tropalab/tropa/symbols"
	"github.com/tropalab/tropa/tropical"
)

// golden is the document every round-trip test pivots on.
const golden = "initial 0\nfinal: 1, 3\n0[a]\t→ 1 # 0.105\n1[b]\t→ 3 # 0\n"

// goldenAutomaton builds the acceptor golden describes, with "a" and
// "b" interned as labels 1 and 2.
func goldenAutomaton(t *testing.T) (fsa.Automaton, *symbols.Table) {
	t.Helper()

	tab := symbols.NewTable()
	a, err := builder.Build(4, []fsa.State{1, 3}, []fsa.Arc{
		{From: 0, To: 1, Label: tab.Intern("a"), Weight: 0.105},
		{From: 1, To: 3, Label: tab.Intern("b"), Weight: 0},
	})
	if err != nil {
		t.Fatalf("Build: unexpected error %v", err)
	}

	return a, tab
}

// TestFormat_Golden checks the exact bytes of the documented form.
func TestFormat_Golden(t *testing.T) {
	t.Parallel()

	a, tab := goldenAutomaton(t)
	var buf bytes.Buffer
	if err := notation.Format(&buf, a, tab); err != nil {
		t.Fatalf("Format: unexpected error %v", err)
	}
	if got := buf.String(); got != golden {
		t.Fatalf("Format: got %q, want %q", got, golden)
	}
}

// TestParse_RoundTrip parses the golden document and formats it back to
// the same bytes through the same table.
func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	tab := symbols.NewTable()
	a, err := notation.Parse(golden, tab)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if got := a.NumStates(); got != 4 {
		t.Fatalf("NumStates: got %d, want 4", got)
	}
	if got := a.Start(); got != 0 {
		t.Fatalf("Start: got %d, want 0", got)
	}

	var buf bytes.Buffer
	if err := notation.Format(&buf, a, tab); err != nil {
		t.Fatalf("Format: unexpected error %v", err)
	}
	if got := buf.String(); got != golden {
		t.Fatalf("round trip: got %q, want %q", got, golden)
	}
}

// TestParse_ASCIIArrow accepts -> as the arrow.
func TestParse_ASCIIArrow(t *testing.T) {
	t.Parallel()

	a, err := notation.Parse("initial 0\nfinal: 1\n0[7]\t-> 1 # 0.5\n", nil)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	arcs := a.Arcs(0)
	if len(arcs) != 1 || arcs[0].Label != 7 || arcs[0].To != 1 || arcs[0].Weight != 0.5 {
		t.Fatalf("Arcs(0): got %+v", arcs)
	}
}

// TestParse_NumericLabelsWithTable reads digit symbols as raw ids even
// when a table is present.
func TestParse_NumericLabelsWithTable(t *testing.T) {
	t.Parallel()

	tab := symbols.NewTable()
	a, err := notation.Parse("initial 0\nfinal: 1\n0[12]\t→ 1 # 0\n", tab)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if got := a.Arcs(0)[0].Label; got != 12 {
		t.Fatalf("Label: got %d, want the raw id 12", got)
	}
	if got := tab.Len(); got != 1 {
		t.Fatalf("table grew to %d entries on a numeric label", got)
	}
}

// TestParse_InternsNewSpellings grows the table in first-sight order.
func TestParse_InternsNewSpellings(t *testing.T) {
	t.Parallel()

	tab := symbols.NewTable()
	_, err := notation.Parse("initial 0\nfinal: 1\n0[walk]\t→ 1 # 0\n0[run]\t→ 1 # 0\n", tab)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if got := tab.Intern("walk"); got != 1 {
		t.Fatalf("Intern(walk): got %d, want 1", got)
	}
	if got := tab.Intern("run"); got != 2 {
		t.Fatalf("Intern(run): got %d, want 2", got)
	}
}

// TestParse_Epsilon maps <eps> to label 0 without a table, and Format
// prints it back.
func TestParse_Epsilon(t *testing.T) {
	t.Parallel()

	src := "initial 0\nfinal: 1\n0[<eps>]\t→ 1 # 0.25\n"
	a, err := notation.Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if got := a.Arcs(0)[0].Label; got != fsa.Epsilon {
		t.Fatalf("Label: got %d, want epsilon", got)
	}

	var buf bytes.Buffer
	if err := notation.Format(&buf, a, nil); err != nil {
		t.Fatalf("Format: unexpected error %v", err)
	}
	if got := buf.String(); got != src {
		t.Fatalf("round trip: got %q, want %q", got, src)
	}
}

// TestParse_SizesFromMaxID sizes the state space from the largest id
// mentioned anywhere.
func TestParse_SizesFromMaxID(t *testing.T) {
	t.Parallel()

	a, err := notation.Parse("initial 0\nfinal: 5\n", nil)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if got := a.NumStates(); got != 6 {
		t.Fatalf("NumStates: got %d, want 6", got)
	}
	if got := fsa.FinalStates(a); len(got) != 1 || got[0] != 5 {
		t.Fatalf("FinalStates: got %v, want [5]", got)
	}

	b, err := notation.Parse("initial 0\nfinal:\n0[1]\t→ 9 # 0\n", nil)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if got := b.NumStates(); got != 10 {
		t.Fatalf("NumStates: got %d, want 10", got)
	}
}

// TestParse_NonzeroInitial honors an explicit start other than 0.
func TestParse_NonzeroInitial(t *testing.T) {
	t.Parallel()

	a, err := notation.Parse("initial 2\nfinal: 0\n2[7]\t→ 0 # 0.25\n", nil)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if got := a.Start(); got != 2 {
		t.Fatalf("Start: got %d, want 2", got)
	}
}

// TestEmptyAutomatonRoundTrip pivots on "initial -1".
func TestEmptyAutomatonRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := notation.Format(&buf, fsa.NewMaterialized(0), nil); err != nil {
		t.Fatalf("Format: unexpected error %v", err)
	}
	want := "initial -1\nfinal:\n"
	if got := buf.String(); got != want {
		t.Fatalf("Format: got %q, want %q", got, want)
	}

	a, err := notation.Parse(want, nil)
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if !fsa.IsEmpty(a) || a.NumStates() != 0 {
		t.Fatalf("Parse: got start %d over %d states, want empty", a.Start(), a.NumStates())
	}
}

// TestFormat_UnboundLabelFallsBackToNumeric prints ids the table does
// not know.
func TestFormat_UnboundLabelFallsBackToNumeric(t *testing.T) {
	t.Parallel()

	tab := symbols.NewTable()
	a, err := builder.Build(2, []fsa.State{1}, []fsa.Arc{
		{From: 0, To: 1, Label: 42, Weight: tropical.One()},
	})
	if err != nil {
		t.Fatalf("Build: unexpected error %v", err)
	}

	var buf bytes.Buffer
	if err := notation.Format(&buf, a, tab); err != nil {
		t.Fatalf("Format: unexpected error %v", err)
	}
	if !strings.Contains(buf.String(), "0[42]") {
		t.Fatalf("Format: got %q, want a numeric 0[42] row", buf.String())
	}
}

// TestFormat_NilAutomaton rejects a nil input.
func TestFormat_NilAutomaton(t *testing.T) {
	t.Parallel()

	err := notation.Format(&bytes.Buffer{}, nil, nil)
	if !errors.Is(err, notation.ErrNilAutomaton) {
		t.Fatalf("Format: error %v, want %v", err, notation.ErrNilAutomaton)
	}
}

// TestParse_Rejects runs table-driven tests over malformed documents.
func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "Garbage", src: "hello\n"},
		{name: "MissingFinalsLine", src: "initial 0\n"},
		{name: "InitialTooNegative", src: "initial -5\nfinal:\n"},
		{name: "NegativeFinal", src: "initial 0\nfinal: -1\n"},
		{name: "NegativeTarget", src: "initial 0\nfinal:\n0[1]\t→ -3 # 0\n"},
		{name: "NegativeWeight", src: "initial 0\nfinal:\n0[1]\t→ 1 # -0.5\n"},
		{name: "NegativeLabel", src: "initial 0\nfinal:\n0[-2]\t→ 1 # 0\n"},
		{name: "FractionalLabel", src: "initial 0\nfinal:\n0[1.5]\t→ 1 # 0\n"},
		{name: "SpellingWithoutTable", src: "initial 0\nfinal:\n0[walk]\t→ 1 # 0\n"},
		{name: "MissingWeight", src: "initial 0\nfinal:\n0[1]\t→ 1\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a, err := notation.Parse(tc.src, nil)
			if a != nil {
				t.Fatal("Parse: got an automaton, want nil on error")
			}
			if !errors.Is(err, notation.ErrBadNotation) {
				t.Fatalf("Parse: error %v, want %v", err, notation.ErrBadNotation)
			}
			if !errors.Is(err, fsa.ErrCorrupt) {
				t.Fatalf("Parse: error %v does not classify as corrupt", err)
			}
		})
	}
}
