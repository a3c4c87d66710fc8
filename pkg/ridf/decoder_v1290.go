package ridf

import "encoding/binary"

// v1290Decoder decodes a CAEN V1290-family TDC segment. The Global Header
// sets geo and opens the event; TDC Header/Trailer/Error words are
// recognized and skipped without affecting state (per the design note,
// the TDC Trailer in particular is not treated as an authoritative end —
// only the Global Trailer closes the segment).
type v1290Decoder struct {
	payload     []byte
	idx         int // word index, 4 bytes each
	geo         int32
	insideEvent bool
	ended       bool
}

func newV1290Decoder(payload []byte) *v1290Decoder {
	return &v1290Decoder{payload: payload}
}

const (
	v1290TypeMask      = 0xf8000000
	v1290GlobalHeader  = 0x40000000
	v1290GlobalTrailer = 0x80000000
	v1290TDCHeader     = 0x08000000
	v1290TDCTrailer    = 0x18000000
	v1290TDCError      = 0x20000000
	v1290DataTag       = 0x00000000
)

func (d *v1290Decoder) next() (Datum, bool) {
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

		switch w & v1290TypeMask {
		case v1290GlobalHeader:
			d.geo = int32(w & 0x1f)
			d.insideEvent = true
		case v1290GlobalTrailer:
			d.insideEvent = false
			d.geo = 0
			d.ended = true
			return Datum{}, false
		case v1290TDCHeader, v1290TDCTrailer, v1290TDCError:
			// recognized, not authoritative; skip
		case v1290DataTag:
			if !d.insideEvent {
				continue
			}
			ch := int((w >> 21) & 0x1f)
			edge := int((w >> 26) & 1)
			value := int32(w & 0x1fffff)
			return Datum{Geo: d.geo, Ch: ch, Edge: edge, Value: value, Decoded: true}, true
		default:
			// unrecognized bit pattern: skip
		}
	}
}
