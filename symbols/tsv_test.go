// File: tsv_test.go
// Package symbols_test covers the TSV serialization: golden output,
// round-trip, row-order independence, and every rejection class.
package symbols_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/symbols"
)

// TestTSV_GoldenAndRoundTrip serializes a small table, checks the exact
// bytes, restores it, and interns past the restored range.
func TestTSV_GoldenAndRoundTrip(t *testing.T) {
	t.Parallel()

	tab := symbols.NewTable()
	tab.Intern("a")
	tab.Intern("b")
	tab.Intern("c")

	var buf bytes.Buffer
	if err := tab.WriteTSV(&buf); err != nil {
		t.Fatalf("WriteTSV: unexpected error %v", err)
	}
	want := "a\t1\nb\t2\nc\t3\n"
	if got := buf.String(); got != want {
		t.Fatalf("WriteTSV: got %q, want %q", got, want)
	}

	back, err := symbols.ReadTSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadTSV: unexpected error %v", err)
	}
	if got := back.Len(); got != tab.Len() {
		t.Fatalf("Len after round trip: got %d, want %d", got, tab.Len())
	}
	if got := back.Intern("b"); got != 2 {
		t.Fatalf("Intern(b) on restored table: got %d, want 2", got)
	}
	if got := back.Intern("d"); got != 4 {
		t.Fatalf("Intern(d) on restored table: got %d, want the next free id 4", got)
	}

	var again bytes.Buffer
	if err := back.WriteTSV(&again); err != nil {
		t.Fatalf("WriteTSV: unexpected error %v", err)
	}
	if got := again.String(); got != want+"d\t4\n" {
		t.Fatalf("WriteTSV after restore: got %q", got)
	}
}

// TestTSV_EmptyTable serializes and restores a table with no real
// bindings.
func TestTSV_EmptyTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := symbols.NewTable().WriteTSV(&buf); err != nil {
		t.Fatalf("WriteTSV: unexpected error %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("WriteTSV: got %q, want no output", buf.String())
	}

	tab, err := symbols.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("ReadTSV: unexpected error %v", err)
	}
	if got := tab.Len(); got != 1 {
		t.Fatalf("Len: got %d, want just the epsilon binding", got)
	}
}

// TestTSV_RowOrderIrrelevant feeds rows out of id order.
func TestTSV_RowOrderIrrelevant(t *testing.T) {
	t.Parallel()

	tab, err := symbols.ReadTSV(strings.NewReader("b\t2\n\na\t1\n"))
	if err != nil {
		t.Fatalf("ReadTSV: unexpected error %v", err)
	}
	if sym, _ := tab.Symbol(1); sym != "a" {
		t.Fatalf("Symbol(1): got %q, want a", sym)
	}
	if sym, _ := tab.Symbol(2); sym != "b" {
		t.Fatalf("Symbol(2): got %q, want b", sym)
	}
}

// TestTSV_Rejects runs table-driven tests over the malformed inputs.
func TestTSV_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "MissingTab", src: "a 1\n"},
		{name: "EmptySymbol", src: "\t1\n"},
		{name: "JunkID", src: "a\tx\n"},
		{name: "ZeroID", src: "a\t0\n"},
		{name: "NegativeID", src: "a\t-1\n"},
		{name: "DuplicateSymbol", src: "a\t1\na\t2\n"},
		{name: "DuplicateID", src: "a\t1\nb\t1\n"},
		{name: "GapInIDs", src: "a\t2\n"},
		{name: "ExplicitEpsilon", src: "<eps>\t1\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tab, err := symbols.ReadTSV(strings.NewReader(tc.src))
			if tab != nil {
				t.Fatalf("ReadTSV: got a table, want nil on error")
			}
			if !errors.Is(err, symbols.ErrBadTSV) {
				t.Fatalf("ReadTSV: error %v, want %v", err, symbols.ErrBadTSV)
			}
			if !errors.Is(err, fsa.ErrCorrupt) {
				t.Fatalf("ReadTSV: error %v does not classify as corrupt", err)
			}
		})
	}
}
