// nbest.go — the generalized Dijkstra search and its result tree.
//
// Notes on implementation choices:
//
//   - Each popped queue entry records the arc that led to it (label and
//     weight) plus its parent pop, so the pop list doubles as the
//     result tree; no separate backtrace pass is needed.
//   - The super-final node is implicit (a pseudo id in queue entries,
//     never a real state); finality turns into an epsilon hop onto it
//     carrying the final weight, which the result view later collapses.
//   - Lazy decrease-key: duplicates are pushed freely and entries
//     beyond a node's rank budget are skipped when popped.

package nbest

import (
	"container/heap"
	"fmt"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/tropical"
)

// superFinal marks the implicit accepting node in queue entries. It is
// never a valid state id.
const superFinal fsa.State = -2

// NBest returns an acceptor for the n cheapest accepting paths of a,
// behind a lazy epsilon-removal view (kind fsa.KindRmEpsilon). Fewer
// than n accepting paths simply exhausts the frontier; an empty input
// yields an empty result. Neither is an error.
//
// Preconditions and validation (in order):
//  1. a must be non-nil (ErrNilAutomaton).
//  2. n must be at least 1 (ErrBadN).
//  3. A lazy input must not already carry a deferred fault.
//
// Complexity:
//
//	Time:  O(n · (V + A) · log(n · V)).
//	Space: O(n · V) pops plus the heap.
func NBest(a fsa.Automaton, n int, opts ...Option) (fsa.Automaton, error) {
	// 1) Resolve functional options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate arguments.
	if a == nil {
		return nil, ErrNilAutomaton
	}
	if n < 1 {
		return nil, fmt.Errorf("NBest: n=%d: %w", n, ErrBadN)
	}
	if err := fsa.Err(a); err != nil {
		return nil, err
	}

	// 3) Empty input: empty result, not an error.
	if fsa.IsEmpty(a) {
		return fsa.RmEpsilon(fsa.NewMaterialized(0)), nil
	}

	// 4) Run the search.
	r := &runner{
		a:      a,
		n:      n,
		max:    cfg.MaxExpansions,
		budget: make(map[fsa.State]int),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) A fault the walk tripped on a lazy input surfaces here rather
	//    than as a silently truncated result.
	if err := fsa.Err(a); err != nil {
		return nil, err
	}

	// 6) Fold the accepted pop tree into an acceptor and collapse the
	//    super-final epsilon hops.
	return fsa.RmEpsilon(r.tree()), nil
}

// popNode is one finalized queue entry: the node it reached, the arc
// that led there, and the parent pop index.
type popNode struct {
	state  fsa.State
	parent int // index into runner.pops; -1 at the root
	label  fsa.Label
	weight tropical.Weight // arriving arc weight, not the running total
}

// runner holds the mutable state of a single search.
type runner struct {
	a   fsa.Automaton
	n   int
	max int

	pq       nodePQ
	seq      uint64
	pops     []popNode
	budget   map[fsa.State]int // pops spent per node
	accepted []int             // pop indices of super-final pops, rank order
}

// init seeds the queue with the start state at weight one.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.push(&nodeItem{state: r.a.Start(), total: tropical.One(), parent: -1})
}

// push stamps the entry with the next insertion sequence and enqueues
// it; the stamp breaks weight ties deterministically.
func (r *runner) push(it *nodeItem) {
	it.seq = r.seq
	r.seq++
	heap.Push(&r.pq, it)
}

// process is the core loop: pop cheapest, spend rank budget, record,
// relax.
func (r *runner) process() error {
	pops := 0
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest (total, seq) entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		pops++
		if pops > r.max {
			return fmt.Errorf("NBest: %d pops: %w", pops, ErrSearchBound)
		}

		// 2) Enforce the per-node rank budget; stale entries beyond it
		//    are skipped (lazy decrease-key).
		if r.budget[item.state] >= r.n {
			continue
		}
		r.budget[item.state]++

		// 3) Record the pop; its index is the node's id in the result
		//    tree.
		idx := len(r.pops)
		r.pops = append(r.pops, popNode{
			state:  item.state,
			parent: item.parent,
			label:  item.label,
			weight: item.weight,
		})

		// 4) The n-th accepted completion ends the search. Completions
		//    pop in non-decreasing weight order, so ranks are ordered.
		if item.state == superFinal {
			r.accepted = append(r.accepted, idx)
			if len(r.accepted) == r.n {
				break
			}

			continue
		}

		// 5) Acceptance hop: finality becomes an epsilon arc onto the
		//    implicit super-final node, carrying the final weight.
		if w := r.a.Final(item.state); !tropical.IsZero(w) {
			r.push(&nodeItem{
				state:  superFinal,
				total:  tropical.Extend(item.total, w),
				parent: idx,
				label:  fsa.Epsilon,
				weight: w,
			})
		}

		// 6) Relax the out-arcs.
		for _, arc := range r.a.Arcs(item.state) {
			r.push(&nodeItem{
				state:  arc.To,
				total:  tropical.Extend(item.total, arc.Weight),
				parent: idx,
				label:  arc.Label,
				weight: arc.Weight,
			})
		}
	}

	return nil
}

// tree folds the accepted pops into a materialized acceptor: one state
// per pop on an accepted chain, the root as start, super-final pops as
// final states, arcs carrying the original labels and weights.
func (r *runner) tree() *fsa.Materialized {
	if len(r.accepted) == 0 {
		return fsa.NewMaterialized(0)
	}

	// 1) Mark every pop on a chain from an accepted completion back to
	//    the root; shared prefixes stop the walk early.
	keep := make([]bool, len(r.pops))
	for _, leaf := range r.accepted {
		for i := leaf; i != -1 && !keep[i]; i = r.pops[i].parent {
			keep[i] = true
		}
	}

	// 2) Renumber kept pops densely in pop order. The root popped
	//    first, so it becomes state 0, the start.
	ids := make([]fsa.State, len(r.pops))
	next := fsa.State(0)
	for i := range r.pops {
		if keep[i] {
			ids[i] = next
			next++
		} else {
			ids[i] = fsa.NoState
		}
	}

	// 3) Emit states and arcs.
	out := fsa.NewMaterialized(int(next))
	for i, p := range r.pops {
		if !keep[i] {
			continue
		}
		if p.state == superFinal {
			out.SetFinal(ids[i], tropical.One())
		}
		if p.parent != -1 {
			out.AddArc(fsa.Arc{From: ids[p.parent], To: ids[i], Label: p.label, Weight: p.weight})
		}
	}
	out.SortArcs()

	return out
}

// nodeItem is one queue entry: a candidate path head with its running
// total from the start and an insertion stamp for tie-breaks.
type nodeItem struct {
	state  fsa.State
	total  tropical.Weight
	parent int
	label  fsa.Label
	weight tropical.Weight
	seq    uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (total, seq): cheaper
// first, earlier insertion on ties. This order is what makes the whole
// search reproducible.
type nodePQ []*nodeItem

// Len returns the number of entries in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by running total, then insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].total != pq[j].total {
		return pq[i].total < pq[j].total
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest entry; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
