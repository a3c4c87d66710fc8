package waveform

import (
	"fmt"
	"strconv"
)

func apply(p Params, l Layer) Params {
	if l.Enabled != nil {
		p.Enabled = *l.Enabled
	}
	if l.SampleRateNs != nil {
		p.SampleRateNs = *l.SampleRateNs
	}
	if l.Polarity != nil {
		p.Polarity = *l.Polarity
	}
	if l.BaselineStart != nil {
		p.BaselineStart = *l.BaselineStart
	}
	if l.BaselineEnd != nil {
		p.BaselineEnd = *l.BaselineEnd
	}
	if l.MAWindowSize != nil {
		p.MAWindowSize = *l.MAWindowSize
	}
	if l.DCFDEnabled != nil {
		p.DCFDEnabled = *l.DCFDEnabled
	}
	if l.DCFDDelay != nil {
		p.DCFDDelay = *l.DCFDDelay
	}
	if l.DCFDFraction != nil {
		p.DCFDFraction = *l.DCFDFraction
	}
	return p
}

func sanitize(p Params) (Params, error) {
	if p.SampleRateNs <= 0 {
		return p, fmt.Errorf("waveform: sample_rate_ns must be positive, got %g", p.SampleRateNs)
	}
	if p.MAWindowSize < 1 {
		p.MAWindowSize = 1
	}
	if p.MAWindowSize > 1 && p.MAWindowSize%2 == 0 {
		p.MAWindowSize++
	}
	if p.DCFDDelay < 1 {
		p.DCFDDelay = 1
	}
	if p.DCFDFraction < 0.01 {
		p.DCFDFraction = 0.01
	}
	if p.DCFDFraction > 0.99 {
		p.DCFDFraction = 0.99
	}
	return p, nil
}

// Resolve merges global, default-detector, detector and channel layers
// (in that precedence, each overwriting only the fields it sets) into a
// sanitized Params for the given (detector, channel) pair. The resolve
// fails only when the resulting sample rate is non-positive; every other
// out-of-range field is clamped instead, per the resolver's sanitization
// rules.
func Resolve(doc Document, det, ch int) (Params, error) {
	p := defaultParams()
	p = apply(p, doc.Global)
	if def, ok := doc.Detectors[defaultDetectorKey]; ok {
		p = apply(p, def.Layer)
	}

	detKey := strconv.Itoa(det)
	detLayer, hasDetector := doc.Detectors[detKey]
	if hasDetector {
		p = apply(p, detLayer.Layer)
	}

	if hasDetector {
		chKey := strconv.Itoa(ch)
		if chLayer, ok := detLayer.Channels[chKey]; ok {
			p = apply(p, chLayer)
		}
	}

	return sanitize(p)
}
