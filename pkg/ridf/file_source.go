package ridf

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// FileSource reads fixed-structure RIDF blocks sequentially from an
// on-disk file, in the style of the teacher decoder's FileReader: read the
// header first, size the payload, then read the rest.
type FileSource struct {
	file *os.File
}

// OpenFile opens path for forward streaming.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ridf: opening %q: %w", path, err)
	}
	return &FileSource{file: f}, nil
}

// Fetch implements BlockSource.
func (s *FileSource) Fetch(buf []byte) (int, error) {
	if len(buf) < BlockHeaderSize {
		return 0, fmt.Errorf("ridf: buffer too small (%d bytes, need at least %d)", len(buf), BlockHeaderSize)
	}
	if _, err := io.ReadFull(s.file, buf[:BlockHeaderSize]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrStreamExhausted
		}
		return 0, err
	}
	header := binary.LittleEndian.Uint32(buf[:4])
	length := blockByteLength(header)
	if length < BlockHeaderSize {
		return 0, &MalformedRecordError{Offset: 0, Length: length, Reason: "block length smaller than header"}
	}
	if length > len(buf) {
		return 0, &MalformedRecordError{Offset: 0, Length: length, Reason: "block length exceeds buffer size"}
	}
	if _, err := io.ReadFull(s.file, buf[BlockHeaderSize:length]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrStreamExhausted
		}
		return 0, err
	}
	return length, nil
}

// Rewind seeks back to the start of the file, so the stream can be
// re-read from block zero. Implements Rewinder.
func (s *FileSource) Rewind() error {
	_, err := s.file.Seek(0, io.SeekStart)
	return err
}

// Close releases the underlying file handle.
func (s *FileSource) Close() error {
	return s.file.Close()
}
