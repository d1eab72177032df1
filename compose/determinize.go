// File: determinize.go
// Role: Bounded subset construction over an unweighted operand; the
//       middle stage of Difference (package-internal).
// Determinism:
//   - Subsets are canonical (ascending, deduplicated member ids) and
//     number in breadth-first discovery order; per-state transitions
//     come out label-sorted with at most one arc per label.

package compose

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/tropical"
)

// subset is a canonical set of operand states: ascending, no
// duplicates.
type subset []fsa.State

// compareSubsets orders subsets lexicographically by member ids; the
// registry tree uses it to deduplicate discovered subsets.
func compareSubsets(a, b interface{}) int {
	x, y := a.(subset), b.(subset)
	for i := 0; i < len(x) && i < len(y); i++ {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}

	return 0
}

// detArc is one deterministic transition; a state holds at most one per
// label.
type detArc struct {
	label fsa.Label
	to    fsa.State
}

// detAutomaton is the subset-constructed deterministic image of an
// operand: boolean finality, label-sorted transitions. It is not an
// fsa.Automaton; only the difference product reads it.
type detAutomaton struct {
	start fsa.State // 0, or fsa.NoState for an empty operand
	final []bool
	arcs  [][]detArc
}

// determinizer carries the state of one bounded subset construction.
type determinizer struct {
	src     fsa.Automaton
	tree    redblacktree.Tree
	order   []subset
	det     *detAutomaton
	max     int
	verbose bool
}

// determinize runs bounded subset construction over src (assumed
// weight-stripped) and returns its deterministic image.
//
// Steps:
//  1. Seed the registry with the singleton start subset.
//  2. For each discovered subset, gather the members' arcs, order them
//     by label, and emit one transition per label run to the canonical
//     successor subset.
//  3. Register successors breadth-first; registration past
//     MaxSubsetStates fails the whole construction.
//
// Complexity: O(D · A log A) time for D subsets over member arc lists
// of total length A; O(D) registry space.
func determinize(src fsa.Automaton, cfg Options) (*detAutomaton, error) {
	if fsa.IsEmpty(src) {
		return &detAutomaton{start: fsa.NoState}, nil
	}

	d := &determinizer{
		src:     src,
		tree:    redblacktree.Tree{Comparator: compareSubsets},
		det:     &detAutomaton{start: 0},
		max:     cfg.MaxSubsetStates,
		verbose: cfg.Verbose,
	}
	if _, err := d.register(subset{src.Start()}); err != nil {
		return nil, err
	}

	// Discovery appends to order; the loop chases its own tail.
	for i := 0; i < len(d.order); i++ {
		if err := d.expand(i); err != nil {
			return nil, err
		}
		if d.verbose {
			fmt.Printf("Difference: subset %d: %d members, %d labels\n",
				i, len(d.order[i]), len(d.det.arcs[i]))
		}
	}

	return d.det, nil
}

// expand emits the deterministic transitions of subset state i.
func (d *determinizer) expand(i int) error {
	// Gather member arcs and order them by label so equal-label runs
	// are contiguous.
	var all []fsa.Arc
	for _, m := range d.order[i] {
		all = append(all, d.src.Arcs(m)...)
	}
	sort.Slice(all, func(x, y int) bool { return all[x].Label < all[y].Label })

	// One transition per label run, to the canonical successor subset.
	for lo := 0; lo < len(all); {
		hi := lo
		for hi < len(all) && all[hi].Label == all[lo].Label {
			hi++
		}
		sid, err := d.register(canonical(all[lo:hi]))
		if err != nil {
			return err
		}
		d.det.arcs[i] = append(d.det.arcs[i], detArc{label: all[lo].Label, to: sid})
		lo = hi
	}

	return nil
}

// register maps a canonical subset to its dense det id, assigning the
// next id on first sight.
func (d *determinizer) register(members subset) (fsa.State, error) {
	if v, found := d.tree.Get(members); found {
		return v.(fsa.State), nil
	}
	if len(d.order) >= d.max {
		return fsa.NoState, fmt.Errorf("Difference: %d subset states: %w", len(d.order), ErrDeterminizeBound)
	}
	id := fsa.State(len(d.order))
	d.tree.Put(members, id)
	d.order = append(d.order, members)
	d.det.final = append(d.det.final, d.anyFinal(members))
	d.det.arcs = append(d.det.arcs, nil)

	return id, nil
}

// anyFinal reports whether any member state is final in the operand.
func (d *determinizer) anyFinal(members subset) bool {
	for _, m := range members {
		if !tropical.IsZero(d.src.Final(m)) {
			return true
		}
	}

	return false
}

// canonical collapses one equal-label arc run into the canonical
// successor subset.
func canonical(run []fsa.Arc) subset {
	members := make(subset, 0, len(run))
	for _, arc := range run {
		members = append(members, arc.To)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

	out := members[:0]
	for i, m := range members {
		if i == 0 || m != members[i-1] {
			out = append(out, m)
		}
	}

	return out
}
