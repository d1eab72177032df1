// table.go — the in-memory symbol table.

package symbols

import (
	"github.com/tropalab/tropa/fsa"
)

// EpsilonSymbol is the reserved spelling of label 0.
const EpsilonSymbol = "<eps>"

// Table assigns dense labels to symbols. Ids are stable for the life of
// the table: a symbol keeps the id its first Intern call produced.
type Table struct {
	byName map[string]fsa.Label
	names  []string // index = label
}

// NewTable returns a table holding only the reserved epsilon binding.
func NewTable() *Table {
	return &Table{
		byName: map[string]fsa.Label{EpsilonSymbol: fsa.Epsilon},
		names:  []string{EpsilonSymbol},
	}
}

// Intern returns the label bound to sym, binding the next free id on
// first sight. Interning the epsilon spelling returns label 0.
func (t *Table) Intern(sym string) fsa.Label {
	if l, ok := t.byName[sym]; ok {
		return l
	}
	l := fsa.Label(len(t.names))
	t.byName[sym] = l
	t.names = append(t.names, sym)

	return l
}

// Symbol returns the spelling bound to l, and whether l is bound.
func (t *Table) Symbol(l fsa.Label) (string, bool) {
	if l < 0 || int(l) >= len(t.names) {
		return "", false
	}

	return t.names[l], true
}

// Len returns the number of bindings, the epsilon binding included.
// Bound labels are exactly [0, Len).
func (t *Table) Len() int { return len(t.names) }

// Symbols returns every spelling in id order, index = label. The slice
// is a copy.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}
