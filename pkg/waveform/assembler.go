package waveform

import (
	"github.com/riken-ridf/ridf-go/pkg/ridf"
)

// MaxSamples is the largest sample vector the assembler will build for
// one (detector, channel) pair; further samples for that pair within the
// same event are dropped.
const MaxSamples = 4096

// numChannels is the fixed channel count per detector the assembler
// keeps: samples with a channel id outside [0, numChannels) are
// discarded.
const numChannels = 8

// EventWaveforms holds the assembled sample vectors for one event,
// keyed by detector id, each holding up to numChannels channel vectors.
type EventWaveforms struct {
	Detectors map[int]*DetectorWaveforms
	Dropped   int
}

// DetectorWaveforms holds the per-channel sample vectors for one
// detector within one event.
type DetectorWaveforms struct {
	Channels [numChannels][]int32
}

// NewEventWaveforms returns an empty assembly target.
func NewEventWaveforms() *EventWaveforms {
	return &EventWaveforms{Detectors: make(map[int]*DetectorWaveforms)}
}

// Add appends one decoded RFSoC sample to the assembly, per §4.5: value
// is right-shifted by 4 bits (sign-preserving, since value is a 16-bit
// two's-complement sample carried in an int32), detector is the segment
// id's Detector subfield and channel is its FocalPlane subfield. Samples
// for channels outside [0, numChannels) are discarded; once a channel's
// vector reaches MaxSamples, further samples for it are dropped (and
// counted in Dropped) rather than silently truncating the caller's view
// of how much data was lost.
func (w *EventWaveforms) Add(segID ridf.SegmentID, d ridf.Datum) {
	ch := segID.FocalPlane()
	if ch < 0 || ch >= numChannels {
		return
	}
	det := segID.Detector()
	dw, ok := w.Detectors[det]
	if !ok {
		dw = &DetectorWaveforms{}
		w.Detectors[det] = dw
	}
	if len(dw.Channels[ch]) >= MaxSamples {
		w.Dropped++
		return
	}
	dw.Channels[ch] = append(dw.Channels[ch], d.Value>>4)
}

// Samples returns the assembled vector for (det, ch) as float64, ready
// to hand to Analyze, or nil if nothing was assembled for that pair.
func (w *EventWaveforms) Samples(det, ch int) []float64 {
	dw, ok := w.Detectors[det]
	if !ok || ch < 0 || ch >= numChannels {
		return nil
	}
	raw := dw.Channels[ch]
	if raw == nil {
		return nil
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = float64(v)
	}
	return out
}
