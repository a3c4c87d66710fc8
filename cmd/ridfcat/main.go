// Command ridfcat drives the RIDF parser over a file to completion,
// printing summary counts. It exercises the main core operations
// (events, segments, datums, waveform assembly, resolve, analyze) and
// doubles as a smoke test; it does not histogram, write trees, or open a
// GUI — those live downstream of this core.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/riken-ridf/ridf-go/internal/cli"
	"github.com/riken-ridf/ridf-go/pkg/ridf"
	"github.com/riken-ridf/ridf-go/pkg/waveform"
)

func main() {
	path := flag.String("file", "", "RIDF file to read")
	configPath := flag.String("config", "", "waveform configuration JSON (optional)")
	verbosity := flag.Int("verbosity", 0, "log verbosity (0 = quiet)")
	dumpTemplate := flag.String("dump-template", "", "write a default waveform configuration to this path and exit")
	flag.Parse()

	logger := cli.New(*verbosity)

	if *dumpTemplate != "" {
		if err := waveform.WriteTemplate(*dumpTemplate); err != nil {
			logger.Error(fmt.Sprintf("writing template: %s", err))
			os.Exit(1)
		}
		return
	}

	if *path == "" {
		logger.Error("missing required -file flag")
		os.Exit(1)
	}

	ridf.SetLogger(logger)
	waveform.SetLogger(logger)

	var doc waveform.Document
	if *configPath != "" {
		var err error
		doc, err = waveform.LoadConfig(*configPath)
		if err != nil {
			logger.Error(fmt.Sprintf("loading waveform config: %s", err))
			os.Exit(1)
		}
	}

	src, err := ridf.OpenFile(*path)
	if err != nil {
		logger.Error(fmt.Sprintf("opening %s: %s", *path, err))
		os.Exit(1)
	}

	parser := ridf.NewParser(src, ridf.WithSegmentRegistry())
	defer parser.Close()

	nEvents, nSegments, nDatums, nWaveforms := 0, 0, 0, 0

	for {
		ev, err := parser.NextEvent()
		if err != nil {
			if errors.Is(err, ridf.ErrStreamExhausted) {
				break
			}
			if errors.Is(err, ridf.ErrNoData) {
				continue
			}
			logger.Error(fmt.Sprintf("reading event: %s", err))
			break
		}
		nEvents++
		logger.Info(fmt.Sprintf("event %d", ev.Number), "ridfcat")

		waveforms := waveform.NewEventWaveforms()

		for {
			segID, err := parser.NextSegment()
			if err != nil {
				if errors.Is(err, ridf.ErrNoMoreSegments) {
					break
				}
				logger.Error(fmt.Sprintf("reading segment: %s", err))
				break
			}
			nSegments++

			for {
				d, err := parser.NextDatum()
				if err != nil {
					if errors.Is(err, ridf.ErrEndOfSegment) {
						break
					}
					logger.Error(fmt.Sprintf("reading datum: %s", err))
					break
				}
				nDatums++
				if segID.Module() == ridf.ModuleC16 {
					waveforms.Add(segID, d)
				}
			}
		}

		for det, dw := range waveforms.Detectors {
			for ch := range dw.Channels {
				samples := waveforms.Samples(det, ch)
				if samples == nil {
					continue
				}
				params, err := waveform.Resolve(doc, det, ch)
				if err != nil {
					logger.Error(fmt.Sprintf("resolving params for detector %d channel %d: %s", det, ch, err))
					continue
				}
				result := waveform.Analyze(samples, params)
				nWaveforms++
				if *verbosity > 0 {
					logger.Info(fmt.Sprintf("detector %d channel %d: amplitude=%.1f valid=%t", det, ch, result.Amplitude, result.Valid), "ridfcat")
				}
			}
		}
		if waveforms.Dropped > 0 {
			logger.Error(fmt.Sprintf("event %d dropped %d samples past the per-channel cap", ev.Number, waveforms.Dropped))
		}
	}

	fmt.Printf("events: %d, segments: %d, datums: %d, waveforms analyzed: %d\n", nEvents, nSegments, nDatums, nWaveforms)
	fmt.Printf("segment ids seen: %d\n", len(parser.SegmentIDs()))
}
