package ridf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func le16(words ...uint16) []byte {
	buf := make([]byte, len(words)*2)
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[i*2:], w)
	}
	return buf
}

func TestC16Decoder_FlatSamples(t *testing.T) {
	payload := le16(0x0001, 0xfffe, 0x7fff, 0x8000)
	d := newC16Decoder(payload)

	want := []Datum{
		{Ch: 0, Value: 1, Decoded: true},
		{Ch: 1, Value: -2, Decoded: true},
		{Ch: 2, Value: 32767, Decoded: true},
		{Ch: 3, Value: -32768, Decoded: true},
	}
	for i, w := range want {
		got, ok := d.next()
		assert.True(t, ok, "sample %d", i)
		assert.Equal(t, w, got)
	}
	_, ok := d.next()
	assert.False(t, ok)
}

func TestC16Decoder_EmptyPayload(t *testing.T) {
	d := newC16Decoder(nil)
	_, ok := d.next()
	assert.False(t, ok)
}

func TestC16Decoder_TrailingOddByte(t *testing.T) {
	payload := append(le16(0x0005), 0x00)
	d := newC16Decoder(payload)

	got, ok := d.next()
	assert.True(t, ok)
	assert.Equal(t, Datum{Ch: 0, Value: 5, Decoded: true}, got)

	_, ok = d.next()
	assert.False(t, ok, "dangling byte should not form a sample")
}
