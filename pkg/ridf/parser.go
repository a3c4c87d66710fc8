package ridf

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/slices"
)

// Event is the result of NextEvent: the event number and, for
// timestamped event records, the 64-bit timestamp (zero otherwise).
type Event struct {
	Number    uint32
	Timestamp uint64
}

// Parser walks the block -> event -> segment -> datum hierarchy of a
// single RIDF stream. It owns exactly one block buffer, one event cursor
// and at most one active module decoder at a time; it is not safe for
// concurrent use.
type Parser struct {
	src BlockSource
	buf []byte

	blockLen int
	pos      int // next_event scan position; 0 means "fetch a new block"
	eventEnd int // exclusive end of the current event's segment area
	segPos   int // next_segment scan position, within [segPos, eventEnd)

	eventNumber uint32
	timestamp   uint64

	decoder       moduleDecoder
	segPayloadPos int // raw-passthrough cursor, used only when decoder == nil
	segPayloadEnd int

	rememberIDs bool
	segIDs      []SegmentID
}

// ParserOption configures a Parser at construction time.
type ParserOption func(*Parser)

// WithBufferSize grows the Parser's block buffer to at least n bytes. The
// default is MinBufferSize (2 MiB); per the block source contract it is
// never shrunk below that.
func WithBufferSize(n int) ParserOption {
	return func(p *Parser) {
		if n < MinBufferSize {
			n = MinBufferSize
		}
		if n > len(p.buf) {
			p.buf = make([]byte, n)
		}
	}
}

// WithSegmentRegistry enables the "list all segment ids seen in the
// current stream" helper (SegmentIDs).
func WithSegmentRegistry() ParserOption {
	return func(p *Parser) { p.rememberIDs = true }
}

// NewParser attaches src as the block source. src may be nil, in which
// case NextEvent and NextSegment return ErrNotOpened, NextDatum reports
// ErrEndOfSegment, Rewind fails and Close does nothing.
func NewParser(src BlockSource, opts ...ParserOption) *Parser {
	p := &Parser{src: src, buf: make([]byte, defaultBufferSize)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NextEvent advances to the next event record, pulling a fresh block from
// the source when the current one is exhausted. It returns ErrNoData when
// the caller should simply call again (a network source had nothing
// fresher, or a block ran out without another event), or an error
// wrapping ErrStreamExhausted when the source is permanently done.
func (p *Parser) NextEvent() (Event, error) {
	if p.src == nil {
		return Event{}, ErrNotOpened
	}
	if p.pos == 0 {
		n, err := p.src.Fetch(p.buf)
		if err != nil {
			return Event{}, err
		}
		if n == 0 {
			return Event{}, ErrNoData
		}
		p.blockLen = n
		p.pos = BlockHeaderSize
		p.segPos = p.pos
		p.eventEnd = p.pos
		p.decoder = nil
	}

	ev, found, err := p.scanForEvent()
	if err != nil {
		p.pos = 0
		return Event{}, err
	}
	if !found {
		p.pos = 0
		return Event{}, ErrNoData
	}
	return ev, nil
}

func (p *Parser) scanForEvent() (Event, bool, error) {
	for p.pos+4 <= p.blockLen {
		cid, length, ok := readRecordHeader(p.buf, p.pos)
		if !ok || length <= 0 || p.pos+length > p.blockLen {
			return Event{}, false, &MalformedRecordError{Offset: p.pos, Length: length, Reason: "zero or over-long event-scan record"}
		}
		if cid == cidEvent || cid == cidEventTimestamped {
			evStart := p.pos
			p.eventNumber = binary.LittleEndian.Uint32(p.buf[evStart+8 : evStart+12])
			if cid == cidEventTimestamped {
				p.timestamp = binary.LittleEndian.Uint64(p.buf[evStart+12 : evStart+20])
				p.segPos = evStart + 20
			} else {
				p.timestamp = 0
				p.segPos = evStart + 12
			}
			p.eventEnd = evStart + length
			next := evStart + length
			if next >= p.blockLen {
				p.pos = 0
			} else {
				p.pos = next
			}
			return Event{Number: p.eventNumber, Timestamp: p.timestamp}, true, nil
		}
		p.pos += length
	}
	return Event{}, false, nil
}

// NextSegment advances to the next segment record within the current
// event and instantiates the appropriate module decoder (discarding
// whichever one was previously active). It returns ErrNoMoreSegments once
// every segment in the current event has been consumed.
func (p *Parser) NextSegment() (SegmentID, error) {
	if p.src == nil {
		return 0, ErrNotOpened
	}
	p.decoder = nil

	for p.segPos+4 <= p.eventEnd {
		cid, length, ok := readRecordHeader(p.buf, p.segPos)
		if !ok || length <= 0 || p.segPos+length > p.eventEnd {
			malformedAt := p.segPos
			p.segPos = p.eventEnd
			p.pos = 0
			return 0, &MalformedRecordError{Offset: malformedAt, Length: length, Reason: "zero or over-long segment record"}
		}
		if cid == cidSegment {
			segStart := p.segPos
			segID := SegmentID(binary.LittleEndian.Uint32(p.buf[segStart+8 : segStart+12]))
			payloadStart := segStart + 12
			payloadEnd := segStart + length
			p.segPos = segStart + length

			p.segPayloadPos = payloadStart
			p.segPayloadEnd = payloadEnd
			p.decoder = newModuleDecoder(segID.Module(), p.buf[payloadStart:payloadEnd])

			if p.rememberIDs && !slices.Contains(p.segIDs, segID) {
				p.segIDs = append(p.segIDs, segID)
			}
			return segID, nil
		}
		p.segPos += length
	}
	return 0, ErrNoMoreSegments
}

// NextDatum returns the next decoded tuple from the currently active
// segment. It returns ErrEndOfSegment once the active decoder (or, for an
// unrecognized module, the raw 32-bit passthrough reader) is exhausted.
func (p *Parser) NextDatum() (Datum, error) {
	if p.decoder != nil {
		d, ok := p.decoder.next()
		if !ok {
			return Datum{}, ErrEndOfSegment
		}
		return d, nil
	}
	if p.segPayloadPos+4 > p.segPayloadEnd {
		return Datum{}, ErrEndOfSegment
	}
	v := binary.LittleEndian.Uint32(p.buf[p.segPayloadPos : p.segPayloadPos+4])
	p.segPayloadPos += 4
	return Datum{Value: int32(v), Decoded: false}, nil
}

// SegmentIDs returns every distinct segment id seen so far, in first-seen
// order. It is only populated when the Parser was built with
// WithSegmentRegistry.
func (p *Parser) SegmentIDs() []SegmentID {
	return slices.Clone(p.segIDs)
}

// Rewind restarts the stream from block zero, if the underlying source
// supports it (file sources only; see Rewinder).
func (p *Parser) Rewind() error {
	rw, ok := p.src.(Rewinder)
	if !ok {
		return fmt.Errorf("ridf: source %T does not support rewind", p.src)
	}
	if err := rw.Rewind(); err != nil {
		return err
	}
	p.pos = 0
	p.segPos = 0
	p.eventEnd = 0
	p.blockLen = 0
	p.decoder = nil
	p.eventNumber = 0
	p.timestamp = 0
	return nil
}

// Close releases the underlying block source (file handle or pending
// socket).
func (p *Parser) Close() error {
	if p.src == nil {
		return nil
	}
	return p.src.Close()
}
