package waveform

import (
	"testing"

	"github.com/riken-ridf/ridf-go/pkg/ridf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segID(device, focalPlane, detector, module int) ridf.SegmentID {
	return ridf.SegmentID(uint32(device)<<20 | uint32(focalPlane)<<14 | uint32(detector)<<8 | uint32(module))
}

func TestEventWaveforms_AddAndRetrieve(t *testing.T) {
	w := NewEventWaveforms()
	id := segID(0, 3, 7, ridf.ModuleC16)

	w.Add(id, ridf.Datum{Value: 16})
	w.Add(id, ridf.Datum{Value: -16})

	samples := w.Samples(7, 3)
	require.Len(t, samples, 2)
	assert.Equal(t, []float64{1, -1}, samples, "value is right-shifted by 4 bits before storage")
}

func TestEventWaveforms_DiscardsOutOfRangeChannel(t *testing.T) {
	w := NewEventWaveforms()
	id := segID(0, 9, 0, ridf.ModuleC16)
	w.Add(id, ridf.Datum{Value: 100})
	assert.Nil(t, w.Samples(0, 9))
	assert.Equal(t, 0, w.Dropped)
}

func TestEventWaveforms_UnknownPairReturnsNil(t *testing.T) {
	w := NewEventWaveforms()
	assert.Nil(t, w.Samples(1, 1))
}

func TestEventWaveforms_DropsBeyondMaxSamples(t *testing.T) {
	w := NewEventWaveforms()
	id := segID(0, 0, 0, ridf.ModuleC16)
	for i := 0; i < MaxSamples+10; i++ {
		w.Add(id, ridf.Datum{Value: int32(i)})
	}
	assert.Len(t, w.Samples(0, 0), MaxSamples)
	assert.Equal(t, 10, w.Dropped)
}

func TestEventWaveforms_SeparateChannelsAndDetectors(t *testing.T) {
	w := NewEventWaveforms()
	w.Add(segID(0, 0, 1, ridf.ModuleC16), ridf.Datum{Value: 1 << 4})
	w.Add(segID(0, 1, 1, ridf.ModuleC16), ridf.Datum{Value: 2 << 4})
	w.Add(segID(0, 0, 2, ridf.ModuleC16), ridf.Datum{Value: 3 << 4})

	assert.Equal(t, []float64{1}, w.Samples(1, 0))
	assert.Equal(t, []float64{2}, w.Samples(1, 1))
	assert.Equal(t, []float64{3}, w.Samples(2, 0))
}
