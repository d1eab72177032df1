// File: decode.go
// Role: Acceptor deserialization (wire image -> automaton).
// Safety:
//   - The header's counts determine the exact payload size, verified in
//     64-bit arithmetic before any count-sized allocation; no later
//     read can run off the buffer.
// AI-HINT (file):
//   - Branch on failures with errors.Is against the codec sentinels or
//     fsa.ErrCorrupt; byte offsets in messages are for humans only.

package codec

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/tropical"
)

// Decode parses a wire image produced by Encode and returns the
// decoded acceptor in the compact representation.
//
// Malformed input fails closed: unknown versions, nonzero flags,
// truncated payloads, inconsistent counts, out-of-range ids, unsorted
// records and non-finite weights are all rejected with an error
// matching fsa.ErrCorrupt.
//
// Complexity: O(V + A) time and space.
func Decode(buf []byte) (fsa.Automaton, error) {
	if len(buf) < headerSize {
		return nil, errors.Wrapf(ErrTruncated, "Decode: header needs %d bytes, have %d", headerSize, len(buf))
	}
	if string(buf[:4]) != magic {
		return nil, errors.Wrapf(ErrBadMagic, "Decode: tag %q", buf[:4])
	}
	if v := binary.LittleEndian.Uint16(buf[4:]); v != version {
		return nil, errors.Wrapf(ErrBadVersion, "Decode: version %d", v)
	}
	if f := binary.LittleEndian.Uint16(buf[6:]); f != 0 {
		return nil, errors.Wrapf(ErrMalformed, "Decode: flags %#04x", f)
	}

	start := int32(binary.LittleEndian.Uint32(buf[8:]))
	numStates := binary.LittleEndian.Uint32(buf[12:])
	numFinals := binary.LittleEndian.Uint32(buf[16:])
	numArcs := binary.LittleEndian.Uint32(buf[20:])

	if numStates > math.MaxInt32 {
		return nil, errors.Wrapf(ErrMalformed, "Decode: state count %d exceeds the id space", numStates)
	}

	// The counts fully determine the payload size; the framing allows
	// no slack. One 64-bit comparison keeps a hostile length field from
	// forcing an oversized allocation or an out-of-bounds read below.
	need := uint64(headerSize) +
		uint64(numFinals)*finalSize +
		uint64(numStates)*countSize +
		uint64(numArcs)*arcSize
	if uint64(len(buf)) < need {
		return nil, errors.Wrapf(ErrTruncated, "Decode: framing declares %d bytes, have %d", need, len(buf))
	}
	if uint64(len(buf)) > need {
		return nil, errors.Wrapf(ErrMalformed, "Decode: %d trailing bytes", uint64(len(buf))-need)
	}

	if start != int32(fsa.NoState) && (start < 0 || uint32(start) >= numStates) {
		return nil, errors.Wrapf(ErrMalformed, "Decode: start state %d of %d", start, numStates)
	}

	// Replay through the materialized form. The builder is bypassed on
	// purpose: decoded finals keep their stored weights, while the
	// builder would reset them to one.
	m := fsa.NewMaterialized(int(numStates))
	m.SetStart(fsa.State(start))

	off := headerSize
	prev := int32(-1)
	for i := uint32(0); i < numFinals; i++ {
		s := int32(binary.LittleEndian.Uint32(buf[off:]))
		w := math.Float32frombits(binary.LittleEndian.Uint32(buf[off+4:]))
		if s < 0 || uint32(s) >= numStates || s <= prev {
			return nil, errors.Wrapf(ErrMalformed, "Decode: byte %d: final %d: state %d after %d", off, i, s, prev)
		}
		if !validWeight(w) {
			return nil, errors.Wrapf(ErrMalformed, "Decode: byte %d: final %d: weight %v", off, i, w)
		}
		m.SetFinal(fsa.State(s), tropical.Weight(w))
		prev = s
		off += finalSize
	}

	counts := make([]uint32, numStates)
	var total uint64
	for s := range counts {
		counts[s] = binary.LittleEndian.Uint32(buf[off:])
		total += uint64(counts[s])
		off += countSize
	}
	if total != uint64(numArcs) {
		return nil, errors.Wrapf(ErrMalformed, "Decode: arc counts sum to %d, framing declares %d", total, numArcs)
	}

	for s := fsa.State(0); uint32(s) < numStates; s++ {
		prevLabel := int32(-1)
		for i := uint32(0); i < counts[s]; i++ {
			label := int32(binary.LittleEndian.Uint32(buf[off:]))
			to := int32(binary.LittleEndian.Uint32(buf[off+4:]))
			w := math.Float32frombits(binary.LittleEndian.Uint32(buf[off+8:]))
			if label < 0 {
				return nil, errors.Wrapf(ErrMalformed, "Decode: byte %d: state %d arc %d: label %d", off, s, i, label)
			}
			if label < prevLabel {
				return nil, errors.Wrapf(ErrMalformed, "Decode: byte %d: state %d arcs not label-sorted", off, s)
			}
			if to < 0 || uint32(to) >= numStates {
				return nil, errors.Wrapf(ErrMalformed, "Decode: byte %d: state %d arc %d: target %d of %d", off, s, i, to, numStates)
			}
			if !validWeight(w) {
				return nil, errors.Wrapf(ErrMalformed, "Decode: byte %d: state %d arc %d: weight %v", off, s, i, w)
			}
			m.AddArc(fsa.Arc{From: s, To: fsa.State(to), Label: fsa.Label(label), Weight: tropical.Weight(w)})
			prevLabel = label
			off += arcSize
		}
	}

	// Freeze to the compact representation, the wire image's in-memory
	// mirror.
	c, err := fsa.CompactOf(m)
	if err != nil {
		return nil, errors.Wrap(err, "Decode")
	}

	return c, nil
}

// validWeight reports whether w is a legal stored weight: finite and
// non-negative. The semiring zero never appears in an image; a
// non-final state is simply absent from the final table, and a zero
// arc could never be taken.
func validWeight(w float32) bool {
	f := float64(w)

	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
