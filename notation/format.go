// format.go — the writer side of the text form.

package notation

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/symbols"
)

// ErrNilAutomaton indicates a nil automaton handed to Format.
var ErrNilAutomaton = fmt.Errorf("notation: nil automaton: %w", fsa.ErrInvalidArgument)

// Format writes the text form of a to w. A non-nil table spells labels
// out; otherwise labels print numerically. Epsilon always prints as
// <eps>. On lazy kinds this forces full expansion; a deferred fault
// fails the call.
func Format(w io.Writer, a fsa.Automaton, t *symbols.Table) error {
	if a == nil {
		return fmt.Errorf("Format: %w", ErrNilAutomaton)
	}

	if _, err := fmt.Fprintf(w, "initial %d\n", a.Start()); err != nil {
		return fmt.Errorf("Format: %w", err)
	}

	finals := fsa.FinalStates(a)
	if len(finals) == 0 {
		if _, err := io.WriteString(w, "final:\n"); err != nil {
			return fmt.Errorf("Format: %w", err)
		}
	} else {
		parts := make([]string, len(finals))
		for i, f := range finals {
			parts[i] = strconv.Itoa(int(f))
		}
		if _, err := fmt.Fprintf(w, "final: %s\n", strings.Join(parts, ", ")); err != nil {
			return fmt.Errorf("Format: %w", err)
		}
	}

	n := a.NumStates()
	for s := fsa.State(0); s < fsa.State(n); s++ {
		for _, arc := range a.Arcs(s) {
			weight := strconv.FormatFloat(float64(arc.Weight), 'g', -1, 32)
			if _, err := fmt.Fprintf(w, "%d[%s]\t→ %d # %s\n", s, spell(arc.Label, t), arc.To, weight); err != nil {
				return fmt.Errorf("Format: %w", err)
			}
		}
	}

	if err := fsa.Err(a); err != nil {
		return err
	}

	return nil
}

// spell renders a label: <eps> for epsilon, the table spelling when one
// is bound, the id otherwise.
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
