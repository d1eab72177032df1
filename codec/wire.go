package codec

// Framing constants. The magic tag makes an image self-describing; the
// version gate keeps future layouts from silently misparsing. Record
// sizes are fixed, so the header's four counts determine the exact
// payload length.
const (
	magic   = "TFA1"
	version = uint16(1)

	headerSize = 24
	finalSize  = 8  // state int32 + weight float32
	countSize  = 4  // per-state arc count uint32
	arcSize    = 12 // label int32 + target int32 + weight float32
)
