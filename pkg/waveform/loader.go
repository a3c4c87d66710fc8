package waveform

import (
	"encoding/json"
	"os"
)

// LoadConfig reads and parses a Document from path. Unknown keys are
// tolerated. A recognized key with the wrong JSON type is reported
// through SetLogger as a ConfigTypeMismatch and that field falls back to
// its default; the rest of the document still loads. Only a missing
// file or a structurally malformed document (bad JSON syntax, or a layer
// that isn't even an object) fails the whole load.
func LoadConfig(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, &ConfigLoadError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, &ConfigLoadError{Path: path, Err: err}
	}
	return doc, nil
}

// WriteTemplate writes a fully-populated default Document, plus one
// example detector/channel override, to path — a seed for
// --dump-template-style bootstrapping. The values mirror the
// defaultParams defaults: a 50-sample baseline window, a
// digital-CFD delay of 3 samples at a 0.3 fraction.
func WriteTemplate(path string) error {
	negative := "negative"
	positive := "positive"
	enabled := true
	disabled := false
	rate := 2.0
	globalBaselineStart := 0
	globalBaselineEnd := 50
	maWindow := 1
	dcfdDelay := 3
	dcfdFraction := 0.3
	det1BaselineStart := 10
	det1BaselineEnd := 60
	ch0BaselineStart := 5
	ch0BaselineEnd := 55

	doc := Document{
		Global: Layer{
			SampleRateNs:  &rate,
			Polarity:      &negative,
			BaselineStart: &globalBaselineStart,
			BaselineEnd:   &globalBaselineEnd,
			MAWindowSize:  &maWindow,
			DCFDEnabled:   &disabled,
			DCFDDelay:     &dcfdDelay,
			DCFDFraction:  &dcfdFraction,
		},
		Detectors: map[string]DetectorLayer{
			defaultDetectorKey: {
				Layer: Layer{
					Enabled:       &enabled,
					Polarity:      &negative,
					BaselineStart: &globalBaselineStart,
					BaselineEnd:   &globalBaselineEnd,
				},
			},
			"1": {
				Layer: Layer{
					Polarity:      &positive,
					BaselineStart: &det1BaselineStart,
					BaselineEnd:   &det1BaselineEnd,
				},
				Channels: map[string]Layer{
					"0": {BaselineStart: &ch0BaselineStart, BaselineEnd: &ch0BaselineEnd},
					"2": {Enabled: &disabled},
				},
			},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
