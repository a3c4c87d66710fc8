package ridf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadRecordHeader(t *testing.T) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf, uint32(cidSegment)<<recordCidShift|6)

	cid, length, ok := readRecordHeader(buf, 0)
	assert.True(t, ok)
	assert.Equal(t, cidSegment, cid)
	assert.Equal(t, 12, length)
}

func TestReadRecordHeader_TooShort(t *testing.T) {
	buf := make([]byte, 2)
	_, _, ok := readRecordHeader(buf, 0)
	assert.False(t, ok)

	_, _, ok = readRecordHeader(buf, -1)
	assert.False(t, ok)
}

func TestBlockByteLength(t *testing.T) {
	assert.Equal(t, 2048, blockByteLength(1024))
	assert.Equal(t, 0, blockByteLength(0))
}
