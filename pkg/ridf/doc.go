// Package ridf decodes the RIKEN Data Format (RIDF): block framing over a
// file or a live TCP pull, the nested block -> event -> segment -> datum
// record hierarchy, and the per-module-family bit-field decoders (C16,
// V7XX, V1290, MADC, FIT) that turn a segment payload into a stream of
// (geo, channel, edge, value) tuples.
//
// The parser is a single-threaded stepping iterator: at most one block
// buffer, one event cursor and one active module decoder exist at a time.
// Call NextEvent, then NextSegment, then NextDatum until it returns
// ErrEndOfSegment, then NextSegment again, and so on.
package ridf
