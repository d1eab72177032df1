package codec_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tropalab/tropa/builder"
	"github.com/tropalab/tropa/codec"
	"github.com/tropalab/tropa/fsa"
	"github.com/tropalab/tropa/tropical"
)

// sample builds the fixture most byte-level tests patch. Its image
// layout is fixed:
//
//	24..39   finals   (state 1 @ 24, state 2 @ 32)
//	40..51   counts   (state 0 = 2, state 1 = 1, state 2 = 0)
//	52..87   arcs     (0-[2]->1 @ 52, 0-[4]->2 @ 64, 1-[4]->2 @ 76)
func sample(t *testing.T) fsa.Automaton {
	t.Helper()

	a, err := builder.Build(3,
		[]fsa.State{1, 2},
		[]fsa.Arc{
			{From: 0, To: 1, Label: 2, Weight: tropical.FromProb(0.5)},
			{From: 0, To: 2, Label: 4, Weight: tropical.FromProb(0.25)},
			{From: 1, To: 2, Label: 4, Weight: tropical.One()},
		})
	require.NoError(t, err)

	return a
}

// image encodes the sample fixture.
func image(t *testing.T) []byte {
	t.Helper()

	buf, err := codec.Encode(sample(t))
	require.NoError(t, err)

	return buf
}

// requireSameAutomaton asserts got and want describe the same graph,
// state for state and arc for arc.
func requireSameAutomaton(t *testing.T, want, got fsa.Automaton) {
	t.Helper()

	require.Equal(t, want.Start(), got.Start())
	require.Equal(t, want.NumStates(), got.NumStates())
	for s := fsa.State(0); int(s) < want.NumStates(); s++ {
		require.InDelta(t, float64(want.Final(s)), float64(got.Final(s)), 1e-6, "final weight of state %d", s)
		wa, ga := want.Arcs(s), got.Arcs(s)
		require.Len(t, ga, len(wa), "arc count of state %d", s)
		for i := range wa {
			require.Equal(t, wa[i].From, ga[i].From)
			require.Equal(t, wa[i].To, ga[i].To)
			require.Equal(t, wa[i].Label, ga[i].Label)
			require.InDelta(t, float64(wa[i].Weight), float64(ga[i].Weight), 1e-6)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	a := sample(t)

	buf, err := codec.Encode(a)
	require.NoError(t, err)

	b, err := codec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, fsa.KindCompact, b.Kind())
	requireSameAutomaton(t, a, b)
}

func TestRoundTrip_GradedFinals(t *testing.T) {
	// Epsilon removal is the one producer of non-boolean finality; its
	// output must survive the wire unchanged.
	m := fsa.NewMaterialized(2)
	m.AddArc(fsa.Arc{From: 0, To: 1, Label: 3, Weight: tropical.FromProb(0.5)})
	m.SetFinal(0, tropical.Weight(0.3))
	m.SetFinal(1, tropical.One())
	m.SortArcs()

	buf, err := codec.Encode(m)
	require.NoError(t, err)

	b, err := codec.Decode(buf)
	require.NoError(t, err)
	require.InDelta(t, 0.3, float64(b.Final(0)), 1e-6)
	require.Equal(t, tropical.One(), b.Final(1))
}

func TestRoundTrip_Empty(t *testing.T) {
	a, err := builder.Build(0, nil, nil)
	require.NoError(t, err)

	buf, err := codec.Encode(a)
	require.NoError(t, err)
	require.Len(t, buf, 24, "an empty acceptor is a bare header")

	b, err := codec.Decode(buf)
	require.NoError(t, err)
	require.True(t, fsa.IsEmpty(b))
	require.Zero(t, b.NumStates())
}

func TestEncode_Deterministic(t *testing.T) {
	a := sample(t)

	first, err := codec.Encode(a)
	require.NoError(t, err)
	second, err := codec.Encode(a)
	require.NoError(t, err)
	require.True(t, bytes.Equal(first, second), "same value must encode to identical bytes")
}

func TestEncode_LazyView(t *testing.T) {
	// An epsilon chain: 0 -eps(0.2)-> 1 -[7](0.3)-> 2, final 2. The
	// epsilon-removed view has two states and one arc of weight 0.5;
	// encoding must snapshot exactly that.
	m := fsa.NewMaterialized(3)
	m.AddArc(fsa.Arc{From: 0, To: 1, Label: fsa.Epsilon, Weight: tropical.Weight(0.2)})
	m.AddArc(fsa.Arc{From: 1, To: 2, Label: 7, Weight: tropical.Weight(0.3)})
	m.SetFinal(2, tropical.One())
	m.SortArcs()

	buf, err := codec.Encode(fsa.RmEpsilon(m))
	require.NoError(t, err)

	b, err := codec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 2, b.NumStates())
	arcs := b.Arcs(0)
	require.Len(t, arcs, 1)
	require.Equal(t, fsa.Label(7), arcs[0].Label)
	require.InDelta(t, 0.5, float64(arcs[0].Weight), 1e-6)
	require.Equal(t, tropical.One(), b.Final(1))
}

func TestEncode_Nil(t *testing.T) {
	buf, err := codec.Encode(nil)
	require.Nil(t, buf)
	require.ErrorIs(t, err, codec.ErrNilInput)
	require.ErrorIs(t, err, fsa.ErrInvalidArgument)
}

func TestDecode_Truncation(t *testing.T) {
	buf := image(t)

	// Every proper prefix must be rejected, and rejected as corruption.
	for k := 0; k < len(buf); k++ {
		_, err := codec.Decode(buf[:k])
		require.Error(t, err, "prefix of %d bytes", k)
		require.ErrorIs(t, err, fsa.ErrCorrupt, "prefix of %d bytes", k)
	}
}

func TestDecode_BadMagic(t *testing.T) {
	buf := image(t)
	buf[0] = 'X'

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrBadMagic)
	require.ErrorIs(t, err, fsa.ErrCorrupt)
}

func TestDecode_UnknownVersion(t *testing.T) {
	buf := image(t)
	binary.LittleEndian.PutUint16(buf[4:], 2)

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrBadVersion)
}

func TestDecode_NonzeroFlags(t *testing.T) {
	buf := image(t)
	binary.LittleEndian.PutUint16(buf[6:], 1)

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_TrailingBytes(t *testing.T) {
	buf := append(image(t), 0x00)

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_HostileCounts(t *testing.T) {
	// A bare header whose counts declare far more content than the
	// buffer holds must be rejected before any allocation is sized
	// from them.
	header := func(start int32, numStates, numFinals, numArcs uint32) []byte {
		buf := make([]byte, 24)
		copy(buf, "TFA1")
		binary.LittleEndian.PutUint16(buf[4:], 1)
		binary.LittleEndian.PutUint32(buf[8:], uint32(start))
		binary.LittleEndian.PutUint32(buf[12:], numStates)
		binary.LittleEndian.PutUint32(buf[16:], numFinals)
		binary.LittleEndian.PutUint32(buf[20:], numArcs)

		return buf
	}

	_, err := codec.Decode(header(0, 1, 0, math.MaxUint32))
	require.ErrorIs(t, err, codec.ErrTruncated)

	_, err = codec.Decode(header(0, 1, math.MaxUint32, 0))
	require.ErrorIs(t, err, codec.ErrTruncated)

	_, err = codec.Decode(header(0, math.MaxUint32, 0, 0))
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_FinalsOutOfOrder(t *testing.T) {
	buf := image(t)
	// Swap the two final records; states must be strictly ascending.
	var tmp [8]byte
	copy(tmp[:], buf[24:32])
	copy(buf[24:32], buf[32:40])
	copy(buf[32:40], tmp[:])

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_FinalOutOfRange(t *testing.T) {
	buf := image(t)
	binary.LittleEndian.PutUint32(buf[32:], 7) // second final: state 7 of 3

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_ArcCountMismatch(t *testing.T) {
	buf := image(t)
	binary.LittleEndian.PutUint32(buf[40:], 3) // state 0 claims one arc too many

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_ArcTargetOutOfRange(t *testing.T) {
	buf := image(t)
	binary.LittleEndian.PutUint32(buf[56:], uint32(0xFFFFFFFF)) // first arc: target -1

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_NegativeLabel(t *testing.T) {
	buf := image(t)
	binary.LittleEndian.PutUint32(buf[52:], uint32(0x80000000)) // first arc: label < 0

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_UnsortedArcs(t *testing.T) {
	buf := image(t)
	binary.LittleEndian.PutUint32(buf[52:], 9) // first arc label 9 > second arc label 4

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_NaNWeight(t *testing.T) {
	buf := image(t)
	binary.LittleEndian.PutUint32(buf[60:], 0x7FC00000) // first arc weight = NaN

	_, err := codec.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformed)
}
