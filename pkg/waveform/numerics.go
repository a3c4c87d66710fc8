package waveform

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// baselineStats returns the mean and RMS-about-the-mean of
// samples[start:end].
func baselineStats(samples []float64, start, end int) (mean, rms float64) {
	window := samples[start:end]
	mean = stat.Mean(window, nil)

	sq := make([]float64, len(window))
	for i, x := range window {
		d := x - mean
		sq[i] = d * d
	}
	rms = math.Sqrt(stat.Mean(sq, nil))
	return mean, rms
}

// signNormalize subtracts baseline from every sample and flips the sign
// for negative-polarity pulses, so the analyzer always works with
// upward-going pulses.
func signNormalize(samples []float64, baseline float64, polarity string) []float64 {
	sign := 1.0
	if polarity == "negative" {
		sign = -1.0
	}
	y := make([]float64, len(samples))
	for i, x := range samples {
		y[i] = (x - baseline) * sign
	}
	return y
}

// movingAverage applies a centered moving average with the given odd
// window size. At the boundaries the window is truncated to the valid
// range and the divisor shrinks to match.
func movingAverage(y []float64, window int) []float64 {
	if window <= 1 {
		out := make([]float64, len(y))
		copy(out, y)
		return out
	}
	half := window / 2
	out := make([]float64, len(y))
	for i := range y {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > len(y) {
			hi = len(y)
		}
		out[i] = floats.Sum(y[lo:hi]) / float64(hi-lo)
	}
	return out
}

// argmax returns the index of the largest value in y.
func argmax(y []float64) int {
	best := 0
	for i, v := range y {
		if v > y[best] {
			best = i
		}
	}
	return best
}

// linearCrossing interpolates the fractional sample position between
// i-1 and i where y crosses thr, given y[i-1] < thr <= y[i]. It guards
// against a near-zero denominator by falling back to i.
func linearCrossing(yLo, yHi float64, i int, thr float64) float64 {
	denom := yHi - yLo
	if math.Abs(denom) < 1e-12 {
		return float64(i)
	}
	return float64(i-1) + (thr-yLo)/denom
}

// cfdCrossing walks leftward from peakIdx looking for the first pair
// (y[i-1], y[i]) with y[i-1] < thr <= y[i], and returns the interpolated
// sample position. ok is false if no such pair exists.
func cfdCrossing(y []float64, peakIdx int, thr float64) (pos float64, ok bool) {
	for i := peakIdx; i >= 1; i-- {
		if y[i-1] < thr && thr <= y[i] {
			return linearCrossing(y[i-1], y[i], i, thr), true
		}
	}
	return 0, false
}
