package ridf

import "encoding/binary"

// v7xxDecoder decodes a CAEN V7XX-family segment: a header word sets geo
// and opens the event, data words carry (ch, value) until a trailer word
// closes it. Edge is never set by any word in this family; it stays at
// whatever the last (always zero) value was, per the decoder's
// last-seen-edge contract.
type v7xxDecoder struct {
	payload     []byte
	idx         int // word index, 4 bytes each
	geo         int32
	edge        int
	insideEvent bool
	ended       bool
}

func newV7xxDecoder(payload []byte) *v7xxDecoder {
	return &v7xxDecoder{payload: payload}
}

const (
	v7xxTypeMask    = 0x06000000
	v7xxHeaderTag   = 0x02000000
	v7xxTrailerTag  = 0x04000000
	v7xxDataTag     = 0x00000000
)

func (d *v7xxDecoder) next() (Datum, bool) {
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

		switch w & v7xxTypeMask {
		case v7xxHeaderTag:
			d.geo = int32((w >> 27) & 0x1f)
			d.insideEvent = true
		case v7xxTrailerTag:
			d.insideEvent = false
			d.geo = 0
			d.ended = true
			return Datum{}, false
		case v7xxDataTag:
			if !d.insideEvent {
				continue
			}
			ch := int((w >> 16) & 0x1f)
			value := int32(w & 0x1fff)
			return Datum{Geo: d.geo, Ch: ch, Edge: d.edge, Value: value, Decoded: true}, true
		default:
			// unrecognized bit pattern: skip
		}
	}
}
