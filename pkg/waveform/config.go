package waveform

import "encoding/json"

// Layer is one level of the configuration hierarchy. Every field is a
// pointer so "unset" is distinguishable from the zero value: a nil field
// is skipped during resolution, leaving whatever the lower layer already
// set.
type Layer struct {
	Enabled       *bool    `json:"enabled,omitempty"`
	SampleRateNs  *float64 `json:"sample_rate_ns,omitempty"`
	Polarity      *string  `json:"polarity,omitempty"`
	BaselineStart *int     `json:"baseline_start,omitempty"`
	BaselineEnd   *int     `json:"baseline_end,omitempty"`
	MAWindowSize  *int     `json:"ma_window_size,omitempty"`
	DCFDEnabled   *bool    `json:"dcfd_enabled,omitempty"`
	DCFDDelay     *int     `json:"dcfd_delay,omitempty"`
	DCFDFraction  *float64 `json:"dcfd_fraction,omitempty"`
}

// DetectorLayer is a detector-scoped Layer plus its per-channel
// overrides.
type DetectorLayer struct {
	Layer
	Channels map[string]Layer `json:"channels,omitempty"`
}

// UnmarshalJSON decodes each recognized field independently: a single
// field with the wrong JSON type is reported through the package logger
// as a ConfigTypeMismatch and left at its default, instead of failing
// the whole layer. Unknown keys are silently ignored.
func (l *Layer) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decodeField(raw, "enabled", &l.Enabled)
	decodeField(raw, "sample_rate_ns", &l.SampleRateNs)
	decodeField(raw, "polarity", &l.Polarity)
	decodeField(raw, "baseline_start", &l.BaselineStart)
	decodeField(raw, "baseline_end", &l.BaselineEnd)
	decodeField(raw, "ma_window_size", &l.MAWindowSize)
	decodeField(raw, "dcfd_enabled", &l.DCFDEnabled)
	decodeField(raw, "dcfd_delay", &l.DCFDDelay)
	decodeField(raw, "dcfd_fraction", &l.DCFDFraction)
	return nil
}

// UnmarshalJSON decodes the embedded Layer fields and the channels map
// independently, so a malformed "channels" entry doesn't take the rest
// of the detector layer down with it.
func (d *DetectorLayer) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := d.Layer.UnmarshalJSON(data); err != nil {
		return err
	}
	if chRaw, ok := raw["channels"]; ok {
		var channels map[string]Layer
		if err := json.Unmarshal(chRaw, &channels); err != nil {
			logger.Error((&ConfigTypeMismatch{Field: "channels", Err: err}).Error())
		} else {
			d.Channels = channels
		}
	}
	return nil
}

// decodeField looks up key in raw and, if present, unmarshals it into a
// freshly allocated T and points dst at it. A type mismatch is reported
// through the package logger and leaves dst untouched (its Layer field
// keeps the zero value, i.e. "unset").
func decodeField[T any](raw map[string]json.RawMessage, key string, dst **T) {
	v, ok := raw[key]
	if !ok {
		return
	}
	var val T
	if err := json.Unmarshal(v, &val); err != nil {
		logger.Error((&ConfigTypeMismatch{Field: key, Err: err}).Error())
		return
	}
	*dst = &val
}

// defaultDetectorKey is the reserved key under "detectors" whose layer
// applies to every detector not otherwise listed, and to every channel
// that has no channel-level override within a listed detector.
const defaultDetectorKey = "default"

// Document is the full three-level configuration hierarchy: settings
// that apply to everything ("global"), settings that apply to every
// detector not otherwise listed (the "default" entry under "detectors"),
// and the per-detector/per-channel overrides.
type Document struct {
	Global    Layer                    `json:"global"`
	Detectors map[string]DetectorLayer `json:"detectors,omitempty"`
}

// Params is a fully-resolved, immutable parameter set for one
// (detector, channel) pair, produced fresh by Resolve on every lookup.
type Params struct {
	Enabled       bool
	SampleRateNs  float64
	Polarity      string
	BaselineStart int
	BaselineEnd   int
	MAWindowSize  int
	DCFDEnabled   bool
	DCFDDelay     int
	DCFDFraction  float64
}

// defaultParams returns the base parameter set every resolve starts
// from, before any layer is applied.
func defaultParams() Params {
	return Params{
		Enabled:       true,
		SampleRateNs:  2.0,
		Polarity:      "negative",
		BaselineStart: 0,
		BaselineEnd:   50,
		MAWindowSize:  1,
		DCFDEnabled:   false,
		DCFDDelay:     3,
		DCFDFraction:  0.3,
	}
}
