package waveform

import "math"

// cfdPercentages are the nine crossing fractions the analyzer reports,
// in the fixed order Result.CFDTimesNs is indexed by.
var cfdPercentages = [9]float64{10, 20, 30, 40, 50, 60, 70, 80, 90}

// Result is the outcome of one Analyze call. Unset time fields carry -1;
// numeric fields that could not be computed carry NaN.
type Result struct {
	Baseline    float64
	BaselineRMS float64
	Amplitude   float64
	PeakSample  int
	PeakTimeNs  float64
	CFDTimesNs  [9]float64
	DCFDTimeNs  float64
	RiseTimeNs  float64
	Valid       bool
}

func degenerate() Result {
	r := Result{
		Baseline:    math.NaN(),
		BaselineRMS: math.NaN(),
		Amplitude:   math.NaN(),
		RiseTimeNs:  math.NaN(),
		PeakTimeNs:  -1,
		DCFDTimeNs:  -1,
		Valid:       false,
	}
	for i := range r.CFDTimesNs {
		r.CFDTimesNs[i] = -1
	}
	return r
}

// Analyze runs the pulse-analysis pipeline over samples using the given
// resolved parameters. It is a pure function: samples is never mutated
// and no state is retained between calls.
func Analyze(samples []float64, p Params) Result {
	n := len(samples)
	if !p.Enabled || n == 0 || p.BaselineStart < 0 || p.BaselineEnd <= p.BaselineStart || p.BaselineEnd > n {
		return degenerate()
	}

	baseline, rms := baselineStats(samples, p.BaselineStart, p.BaselineEnd)

	y := signNormalize(samples, baseline, p.Polarity)
	if p.MAWindowSize > 1 {
		y = movingAverage(y, p.MAWindowSize)
	}

	peakIdx := argmax(y)
	amplitude := y[peakIdx]

	r := Result{
		Baseline:    baseline,
		BaselineRMS: rms,
		Amplitude:   amplitude,
		PeakSample:  peakIdx,
		PeakTimeNs:  float64(peakIdx) * p.SampleRateNs,
		RiseTimeNs:  math.NaN(),
		DCFDTimeNs:  -1,
	}
	for i := range r.CFDTimesNs {
		r.CFDTimesNs[i] = -1
	}

	if amplitude <= 0 {
		r.Valid = false
		r.PeakTimeNs = -1
		return r
	}

	for i, pct := range cfdPercentages {
		thr := amplitude * pct / 100
		if pos, ok := cfdCrossing(y, peakIdx, thr); ok {
			r.CFDTimesNs[i] = pos * p.SampleRateNs
		}
	}

	if p.DCFDEnabled && peakIdx > 0 {
		if t, ok := digitalCFD(y, peakIdx, p); ok {
			r.DCFDTimeNs = t
		}
	}

	if r.CFDTimesNs[0] >= 0 && r.CFDTimesNs[8] >= 0 {
		r.RiseTimeNs = r.CFDTimesNs[8] - r.CFDTimesNs[0]
	}

	r.Valid = true
	return r
}

// digitalCFD implements the delayed-subtraction digital CFD: over the
// window between the end of the baseline (or the configured delay,
// whichever is later) and the peak, it looks for the first sign change
// of z[i] = y[i]*fraction - y[i-delay].
func digitalCFD(y []float64, peakIdx int, p Params) (float64, bool) {
	lo := p.BaselineEnd
	if p.DCFDDelay > lo {
		lo = p.DCFDDelay
	}
	hi := peakIdx
	if len(y)-1 < hi {
		hi = len(y) - 1
	}
	if lo >= hi {
		return 0, false
	}

	z := make([]float64, hi-lo+1)
	for i := lo; i <= hi; i++ {
		z[i-lo] = y[i]*p.DCFDFraction - y[i-p.DCFDDelay]
	}

	for k := 0; k < len(z)-1; k++ {
		if z[k] > 0 && z[k+1] <= 0 {
			i := lo + k
			denom := z[k] - z[k+1]
			frac := 0.0
			if math.Abs(denom) >= 1e-12 {
				frac = z[k] / denom
			}
			return (float64(i) + frac) * p.SampleRateNs, true
		}
	}
	return 0, false
}
