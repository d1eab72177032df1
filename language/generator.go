// generator.go — the round loop: extract, fold, subtract.

package language

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tropalab/tropa/compose"
	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/nbest"
	"github.com/tropalab/tropa/tropical"
)

// Generator enumerates a language batch by batch. Construct with
// Enumerate; the zero value is drained.
type Generator struct {
	rest fsa.Automaton // language not yet emitted
	step int
	cfg  Options
	err  error
	done bool
}

// Enumerate returns a generator over the language of a, emitting up to
// step words per Next call. The input is viewed through epsilon
// removal, so words are epsilon-free label sequences. Argument errors
// surface through Err after the first Next.
func Enumerate(a fsa.Automaton, step int, opts ...Option) *Generator {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Generator{step: step, cfg: cfg}
	switch {
	case a == nil:
		g.fail(ErrNilAutomaton)
	case step < 1:
		g.fail(fmt.Errorf("Enumerate: step=%d: %w", step, ErrBadStep))
	default:
		g.rest = fsa.RmEpsilon(a)
	}

	return g
}

// Next returns the next batch of words, cheapest first. ok=false means
// drained: either clean exhaustion (Err is nil) or failure (Err says
// why). Failure is sticky.
func (g *Generator) Next() (Batch, bool) {
	if g.done {
		return nil, false
	}

	// 1) Pull the next tranche of cheapest paths.
	best, err := nbest.NBest(g.rest, g.step, nbest.WithMaxExpansions(g.cfg.MaxExpansions))
	if err != nil {
		g.fail(err)

		return nil, false
	}

	// 2) Fold paths into words. A word spelled by several paths keeps
	//    its cheapest path weight, so the dedupe may shrink the batch
	//    below step without exhausting the language.
	batch, pathCount := collectWords(best)
	if pathCount == 0 {
		g.done = true

		return nil, false
	}

	// 3) Remove the emitted words from the remainder, unless the search
	//    came up short of paths, which means there is no remainder.
	if pathCount < g.step {
		g.done = true
	} else {
		rest, err := compose.Difference(g.rest, wordTrie(batch),
			compose.WithMaxSubsetStates(g.cfg.MaxSubsetStates))
		if err != nil {
			g.fail(err)

			return nil, false
		}
		g.rest = rest
	}

	return batch, true
}

// Err returns the failure that stopped the generator, nil while it runs
// and after clean exhaustion.
func (g *Generator) Err() error { return g.err }

func (g *Generator) fail(err error) {
	g.err = err
	g.done = true
}

// collectWords walks an acyclic n-best result into words ordered by
// weight (ties keep path-walk order, the empty word ahead of its
// equals) and reports the distinct path count before deduplication.
func collectWords(a fsa.Automaton) (Batch, int) {
	if fsa.IsEmpty(a) {
		return nil, 0
	}

	type path struct {
		labels []fsa.Label
		weight tropical.Weight
	}
	var paths []path

	var walk func(s fsa.State, prefix []fsa.Label, acc tropical.Weight)
	walk = func(s fsa.State, prefix []fsa.Label, acc tropical.Weight) {
		if w := a.Final(s); !tropical.IsZero(w) {
			paths = append(paths, path{
				labels: append([]fsa.Label(nil), prefix...),
				weight: tropical.Extend(acc, w),
			})
		}
		for _, arc := range a.Arcs(s) {
			next := append(append([]fsa.Label(nil), prefix...), arc.Label)
			walk(arc.To, next, tropical.Extend(acc, arc.Weight))
		}
	}
	walk(a.Start(), nil, tropical.One())

	sort.SliceStable(paths, func(i, j int) bool { return paths[i].weight < paths[j].weight })

	batch := make(Batch, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		key := wordKey(p.labels)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		batch = append(batch, ScoredWord{Labels: p.labels, Weight: p.weight})
	}

	return batch, len(paths)
}

// wordKey flattens a label sequence into a map key.
func wordKey(labels []fsa.Label) string {
	var b strings.Builder
	for i, l := range labels {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(l)))
	}

	return b.String()
}

// wordTrie builds an unweighted trie acceptor over the batch's words,
// the subtrahend for the next round.
func wordTrie(batch Batch) fsa.Automaton {
	m := fsa.NewMaterialized(1)
	children := []map[fsa.Label]fsa.State{{}}
	for _, sw := range batch {
		cur := fsa.State(0)
		for _, l := range sw.Labels {
			if next, ok := children[cur][l]; ok {
				cur = next
				continue
			}
			s := m.AddState()
			children = append(children, map[fsa.Label]fsa.State{})
			children[cur][l] = s
			m.AddArc(fsa.Arc{From: cur, To: s, Label: l, Weight: tropical.One()})
			cur = s
		}
		m.SetFinal(cur, tropical.One())
	}
	m.SortArcs()

	return m
}
