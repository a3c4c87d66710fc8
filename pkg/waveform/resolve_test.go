package waveform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrBool(b bool) *bool         { return &b }
func ptrInt(i int) *int            { return &i }
func ptrFloat(f float64) *float64  { return &f }
func ptrString(s string) *string   { return &s }

func TestResolve_DefaultsOnly(t *testing.T) {
	p, err := Resolve(Document{}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, defaultParams(), p)
}

func TestResolve_LayerPrecedence(t *testing.T) {
	doc := Document{
		Global: Layer{SampleRateNs: ptrFloat(4.0), Polarity: ptrString("positive")},
		Detectors: map[string]DetectorLayer{
			"default": {Layer: Layer{BaselineEnd: ptrInt(100)}},
			"5": {
				Layer: Layer{Polarity: ptrString("negative")},
				Channels: map[string]Layer{
					"2": {BaselineEnd: ptrInt(50)},
				},
			},
		},
	}

	p, err := Resolve(doc, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.SampleRateNs, "global layer applies")
	assert.Equal(t, "negative", p.Polarity, "detector layer overrides global")
	assert.Equal(t, 50, p.BaselineEnd, "channel layer overrides default_detector")

	p2, err := Resolve(doc, 9, 2)
	require.NoError(t, err)
	assert.Equal(t, 100, p2.BaselineEnd, "unlisted detector falls back to default_detector")
	assert.Equal(t, "positive", p2.Polarity, "unlisted detector keeps the global value")
}

func TestResolve_NonPositiveSampleRateFails(t *testing.T) {
	doc := Document{Global: Layer{SampleRateNs: ptrFloat(0)}}
	_, err := Resolve(doc, 0, 0)
	assert.Error(t, err)
}

func TestResolve_ClampsEvenWindowSize(t *testing.T) {
	doc := Document{Global: Layer{MAWindowSize: ptrInt(4)}}
	p, err := Resolve(doc, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, p.MAWindowSize)
}

func TestResolve_ClampsDCFDFraction(t *testing.T) {
	doc := Document{Global: Layer{DCFDFraction: ptrFloat(5.0)}}
	p, err := Resolve(doc, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.99, p.DCFDFraction)

	doc = Document{Global: Layer{DCFDFraction: ptrFloat(-1.0)}}
	p, err = Resolve(doc, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.01, p.DCFDFraction)
}

func TestResolve_ClampsDCFDDelay(t *testing.T) {
	doc := Document{Global: Layer{DCFDDelay: ptrInt(0)}}
	p, err := Resolve(doc, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.DCFDDelay)
}

func TestResolve_EnabledFlag(t *testing.T) {
	doc := Document{Global: Layer{Enabled: ptrBool(false)}}
	p, err := Resolve(doc, 0, 0)
	require.NoError(t, err)
	assert.False(t, p.Enabled)
}
