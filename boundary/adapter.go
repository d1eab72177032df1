// adapter.go — the handle/vector registry and its lifetime operations.
//
// The registry is deliberately dumb: uuid-keyed maps tracking what is
// alive, one pool per vector tag so frees dispatch on the tag they
// carry. Payloads live in the returned values, not in the pools.

package boundary

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tropalab/tropa/fsa"
)

// Adapter owns every handle and vector it issues. The zero value is not
// usable; construct with New.
type Adapter struct {
	mu       sync.Mutex
	automata map[uuid.UUID]fsa.Automaton
	byteVecs map[uuid.UUID]struct{}
	intVecs  map[uuid.UUID]struct{}
	arcVecs  map[uuid.UUID]struct{}
}

// New returns an empty Adapter.
func New() *Adapter {
	return &Adapter{
		automata: make(map[uuid.UUID]fsa.Automaton),
		byteVecs: make(map[uuid.UUID]struct{}),
		intVecs:  make(map[uuid.UUID]struct{}),
		arcVecs:  make(map[uuid.UUID]struct{}),
	}
}

// registerAutomaton mints a handle for a and records it live.
func (ad *Adapter) registerAutomaton(a fsa.Automaton) Handle {
	h := Handle{Kind: a.Kind(), id: uuid.New()}
	ad.mu.Lock()
	ad.automata[h.id] = a
	ad.mu.Unlock()

	return h
}

// registerVector stamps v with a fresh id and records it live in the
// pool its tag selects.
func (ad *Adapter) registerVector(v Vector) Vector {
	v.id = uuid.New()
	ad.mu.Lock()
	ad.pool(v.Tag)[v.id] = struct{}{}
	ad.mu.Unlock()

	return v
}

// pool maps a tag to its liveness set. Callers hold mu.
func (ad *Adapter) pool(t VecTag) map[uuid.UUID]struct{} {
	switch t {
	case VecBytes:
		return ad.byteVecs
	case VecInts:
		return ad.intVecs
	default:
		return ad.arcVecs
	}
}

// lookup resolves a handle to its automaton, or ErrBadHandle.
func (ad *Adapter) lookup(h Handle) (fsa.Automaton, error) {
	ad.mu.Lock()
	a, ok := ad.automata[h.id]
	ad.mu.Unlock()
	if !ok {
		return nil, ErrBadHandle
	}

	return a, nil
}

// FreeAutomaton releases the automaton behind h. Freeing an unknown or
// already-freed handle is a no-op.
func (ad *Adapter) FreeAutomaton(h Handle) {
	ad.mu.Lock()
	delete(ad.automata, h.id)
	ad.mu.Unlock()
}

// FreeVector releases the bookkeeping for v, dispatching on its tag.
// Freeing an unknown or already-freed vector is a no-op. The payload
// itself is caller memory and stays valid.
func (ad *Adapter) FreeVector(v Vector) {
	ad.mu.Lock()
	delete(ad.pool(v.Tag), v.id)
	ad.mu.Unlock()
}

// Live returns the number of outstanding handles plus vectors.
func (ad *Adapter) Live() int {
	ad.mu.Lock()
	defer ad.mu.Unlock()

	return len(ad.automata) + len(ad.byteVecs) + len(ad.intVecs) + len(ad.arcVecs)
}
