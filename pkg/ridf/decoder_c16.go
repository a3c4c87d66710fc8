package ridf

import "encoding/binary"

// c16Decoder decodes a C16-family segment: no header or trailer framing at
// all, just a flat run of 16-bit samples, one per channel in order. This
// is the RFSoC raw-waveform module family (see the waveform assembler).
type c16Decoder struct {
	payload []byte
	idx     int // word index, 2 bytes each
	ch      int
}

func newC16Decoder(payload []byte) *c16Decoder {
	return &c16Decoder{payload: payload}
}

func (d *c16Decoder) next() (Datum, bool) {
	offset := d.idx * 2
	if offset+2 > len(d.payload) {
		return Datum{}, false
	}
	word := binary.LittleEndian.Uint16(d.payload[offset : offset+2])
	datum := Datum{
		Geo:     0,
		Ch:      d.ch,
		Edge:    0,
		Value:   int32(int16(word)),
		Decoded: true,
	}
	d.idx++
	d.ch++
	return datum, true
}
