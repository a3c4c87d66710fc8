package ridf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func le32(words ...uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

func TestV7xxDecoder_HeaderDataTrailer(t *testing.T) {
	header := uint32(v7xxHeaderTag) | (3 << 27)
	data1 := uint32(v7xxDataTag) | (2 << 16) | 0x0100
	data2 := uint32(v7xxDataTag) | (5 << 16) | 0x0042
	trailer := uint32(v7xxTrailerTag)
	payload := le32(header, data1, data2, trailer)

	d := newV7xxDecoder(payload)

	got, ok := d.next()
	assert.True(t, ok)
	assert.Equal(t, Datum{Geo: 3, Ch: 2, Value: 0x0100, Decoded: true}, got)

	got, ok = d.next()
	assert.True(t, ok)
	assert.Equal(t, Datum{Geo: 3, Ch: 5, Value: 0x0042, Decoded: true}, got)

	_, ok = d.next()
	assert.False(t, ok, "trailer word ends the segment")
}

func TestV7xxDecoder_DataBeforeHeaderIsIgnored(t *testing.T) {
	stray := uint32(v7xxDataTag) | (1 << 16) | 7
	header := uint32(v7xxHeaderTag) | (1 << 27)
	data := uint32(v7xxDataTag) | (1 << 16) | 9
	payload := le32(stray, header, data)

	d := newV7xxDecoder(payload)
	got, ok := d.next()
	assert.True(t, ok)
	assert.Equal(t, Datum{Geo: 1, Ch: 1, Value: 9, Decoded: true}, got)
}

func TestV7xxDecoder_MissingTrailerExhaustsPayload(t *testing.T) {
	header := uint32(v7xxHeaderTag)
	data := uint32(v7xxDataTag) | 1
	payload := le32(header, data)

	d := newV7xxDecoder(payload)
	_, ok := d.next()
	assert.True(t, ok)
	_, ok = d.next()
	assert.False(t, ok)
}
