package ridf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMadcDecoder_HeaderDataEnder(t *testing.T) {
	header := uint32(1<<30) | (9 << 16)
	data1 := uint32(0<<30) | (3 << 16) | 0x1111
	data2 := uint32(0<<30) | (4 << 16) | 0x2222
	ender := uint32(3 << 30)
	payload := le32(header, data1, data2, ender)

	d := newMadcDecoder(payload)

	got, ok := d.next()
	assert.True(t, ok)
	assert.Equal(t, Datum{Geo: 9, Ch: 3, Value: 0x1111, Decoded: true}, got)

	got, ok = d.next()
	assert.True(t, ok)
	assert.Equal(t, Datum{Geo: 9, Ch: 4, Value: 0x2222, Decoded: true}, got)

	_, ok = d.next()
	assert.False(t, ok, "ender pattern (w>>30)==3 terminates the segment")
}

func TestMadcDecoder_UnrecognizedPatternSkipped(t *testing.T) {
	header := uint32(1 << 30)
	stray := uint32(2 << 30)
	data := uint32(0<<30) | 0x55
	ender := uint32(3 << 30)
	payload := le32(header, stray, data, ender)

	d := newMadcDecoder(payload)
	got, ok := d.next()
	assert.True(t, ok)
	assert.Equal(t, int32(0x55), got.Value)
}

func TestMadcDecoder_ExhaustedWithoutEnder(t *testing.T) {
	header := uint32(1 << 30)
	data := uint32(0<<30) | 1
	payload := le32(header, data)

	d := newMadcDecoder(payload)
	_, ok := d.next()
	assert.True(t, ok)
	_, ok = d.next()
	assert.False(t, ok)
}
