// File: encode.go
// Role: Acceptor serialization (automaton -> wire image).
// Determinism:
//   - States are walked in id order and finals in ascending order, so
//     the same value always encodes to identical bytes.
// AI-HINT (file):
//   - Lazy views are snapshotted through fsa.Materialize before
//     walking; a deferred expansion failure aborts the encode.

package codec

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/tropalab/tropa/fsa"
)

// Encode serializes a into the versioned wire image described in the
// package documentation. The exact output size is computed upfront, so
// the image is built in a single allocation.
//
// Complexity: O(V + A) time, O(V + A) output space.
func Encode(a fsa.Automaton) ([]byte, error) {
	if a == nil {
		return nil, errors.Wrap(ErrNilInput, "Encode")
	}

	// Snapshot lazy views; concrete representations pass through. The
	// snapshot surfaces a tripped expansion bound instead of letting a
	// partial graph reach the wire.
	snap, err := fsa.Materialize(a)
	if err != nil {
		return nil, errors.Wrap(err, "Encode")
	}

	numStates := snap.NumStates()
	finals := fsa.FinalStates(snap)
	numArcs := fsa.CountArcs(snap)

	buf := make([]byte, 0, headerSize+len(finals)*finalSize+numStates*countSize+numArcs*arcSize)
	buf = append(buf, magic...)
	buf = binary.LittleEndian.AppendUint16(buf, version)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // flags
	buf = binary.LittleEndian.AppendUint32(buf, uint32(snap.Start()))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(numStates))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(finals)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(numArcs))

	// Finals, ascending by state, each with its stored weight. Graded
	// weights from epsilon removal survive the trip.
	for _, s := range finals {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(s))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(snap.Final(s))))
	}

	// Per-state arc counts, then the arcs grouped by source in the
	// label order the representations maintain.
	for s := fsa.State(0); s < fsa.State(numStates); s++ {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(snap.Arcs(s))))
	}
	for s := fsa.State(0); s < fsa.State(numStates); s++ {
		for _, arc := range snap.Arcs(s) {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(arc.Label))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(arc.To))
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(arc.Weight)))
		}
	}

	return buf, nil
}
