package ridf

import "encoding/binary"

// fitDecoder decodes a FIT-family segment. There is no trailer/ender word
// for this family; the segment simply ends when the payload is exhausted.
type fitDecoder struct {
	payload []byte
	idx     int // word index, 4 bytes each
	geo     int32
}

func newFitDecoder(payload []byte) *fitDecoder {
	return &fitDecoder{payload: payload}
}

func (d *fitDecoder) next() (Datum, bool) {
	for {
		offset := d.idx * 4
		if offset+4 > len(d.payload) {
			return Datum{}, false
		}
		w := binary.LittleEndian.Uint32(d.payload[offset : offset+4])
		d.idx++

		top4 := w >> 28
		switch {
		case top4 == 6:
			d.geo = int32(w & 0xfff)
		case top4 == 0 || top4 == 4:
			ch := int((w >> 20) & 0x7f)
			edge := int((w >> 27) & 1)
			value := int32(w & 0xfffff)
			return Datum{Geo: d.geo, Ch: ch, Edge: edge, Value: value, Decoded: true}, true
		default:
			// unrecognized bit pattern: skip
		}
	}
}
