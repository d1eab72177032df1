// tsv.go — the two-column on-disk form of a Table.
//
// One row per real symbol: spelling, a tab, the id. Rows are written in
// id order, so two tables with the same bindings serialize to the same
// bytes no matter how interning interleaved. The epsilon binding is
// implicit and never written.

package symbols

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tropalab/tropa/fsa"
)

// ErrBadTSV reports a malformed serialized table.
var ErrBadTSV = fmt.Errorf("symbols: malformed table: %w", fsa.ErrCorrupt)

// WriteTSV writes the table's real bindings to w in id order.
func (t *Table) WriteTSV(w io.Writer) error {
	for id := 1; id < len(t.names); id++ {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", t.names[id], id); err != nil {
			return fmt.Errorf("WriteTSV: id %d: %w", id, err)
		}
	}

	return nil
}

// ReadTSV restores a table from its serialized form. Rows may arrive in
// any order; the ids they carry must be exactly 1..N, with no duplicate
// ids or spellings. Empty lines are skipped.
func ReadTSV(r io.Reader) (*Table, error) {
	type row struct {
		sym string
		id  int
	}

	var (
		rows    []row
		seen    = make(map[string]int) // spelling -> line
		seenID  = make(map[int]int)    // id -> line
		maxID   int
		lineNum int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		sym, idField, ok := strings.Cut(line, "\t")
		if !ok || sym == "" {
			return nil, fmt.Errorf("ReadTSV: line %d: want symbol<TAB>id: %w", lineNum, ErrBadTSV)
		}
		id64, err := strconv.ParseInt(idField, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ReadTSV: line %d: id %q: %w", lineNum, idField, ErrBadTSV)
		}
		id := int(id64)
		if id < 1 {
			return nil, fmt.Errorf("ReadTSV: line %d: id %d out of range (0 is reserved): %w", lineNum, id, ErrBadTSV)
		}
		if sym == EpsilonSymbol {
			return nil, fmt.Errorf("ReadTSV: line %d: %s is implicit: %w", lineNum, EpsilonSymbol, ErrBadTSV)
		}
		if prev, dup := seen[sym]; dup {
			return nil, fmt.Errorf("ReadTSV: line %d: symbol %q already bound at line %d: %w", lineNum, sym, prev, ErrBadTSV)
		}
		if prev, dup := seenID[id]; dup {
			return nil, fmt.Errorf("ReadTSV: line %d: id %d already bound at line %d: %w", lineNum, id, prev, ErrBadTSV)
		}
		seen[sym] = lineNum
		seenID[id] = lineNum
		if id > maxID {
			maxID = id
		}
		rows = append(rows, row{sym: sym, id: id})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ReadTSV: line %d: %w", lineNum, err)
	}

	// Distinct ids in [1, maxID] cover the range exactly when the row
	// count matches.
	if len(rows) != maxID {
		return nil, fmt.Errorf("ReadTSV: ids do not cover 1..%d (%d rows): %w", maxID, len(rows), ErrBadTSV)
	}

	t := &Table{
		byName: make(map[string]fsa.Label, maxID+1),
		names:  make([]string, maxID+1),
	}
	t.names[0] = EpsilonSymbol
	for _, rw := range rows {
		t.names[rw.id] = rw.sym
	}
	for id, sym := range t.names {
		t.byName[sym] = fsa.Label(id)
	}

	return t, nil
}
