package ridf

import "encoding/binary"

// madcDecoder decodes a MADC-family segment. The reachable 2-bit "ender"
// pattern (w>>30)==3 is treated as authoritative per the spec's explicit
// correction of the original source's unreachable 0x11 check (design note
// (b)). Data words carry the last header-set geo forward. No MADC word
// sets edge, so every datum carries the initial edge of zero, matching
// the original's behavior of not setting edge per data word.
type madcDecoder struct {
	payload []byte
	idx     int // word index, 4 bytes each
	geo     int32
	edge    int
	ended   bool
}

func newMadcDecoder(payload []byte) *madcDecoder {
	return &madcDecoder{payload: payload}
}

func (d *madcDecoder) next() (Datum, bool) {
	if d.ended {
		return Datum{}, false
	}
	for {
		offset := d.idx * 4
		if offset+4 > len(d.payload) {
			return Datum{}, false
		}
		w := binary.LittleEndian.Uint32(d.payload[offset : offset+4])
		d.idx++

		switch w >> 30 {
		case 1: // header
			d.geo = int32((w >> 16) & 0xff)
		case 3: // ender
			d.geo = -1
			d.ended = true
			return Datum{}, false
		case 0: // data
			ch := int((w >> 16) & 0x1f)
			value := int32(w & 0x7fff)
			return Datum{Geo: d.geo, Ch: ch, Edge: d.edge, Value: value, Decoded: true}, true
		default:
			// pattern 2: unrecognized, skip
		}
	}
}
