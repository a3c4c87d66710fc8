// Package waveform resolves per-channel analysis parameters from a
// layered configuration document, assembles RFSoC-style raw sample
// vectors out of a ridf.Datum stream, and runs the pulse-analysis
// pipeline (baseline, amplitude, peak, constant-fraction-discriminator
// timing, optional digital CFD, rise time) over the result.
package waveform
