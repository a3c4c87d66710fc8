// Command ridfpull drives the RIDF parser against a live event-builder
// over TCP, printing summary counts as events arrive. Like ridfcat, it
// is a thin smoke-test consumer, not the deliverable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/riken-ridf/ridf-go/internal/cli"
	"github.com/riken-ridf/ridf-go/pkg/ridf"
)

func main() {
	host := flag.String("host", "", "event-builder host (port 17516 is assumed)")
	verbosity := flag.Int("verbosity", 0, "log verbosity (0 = quiet)")
	maxEvents := flag.Int("max-events", 0, "stop after this many events (0 = unbounded)")
	retryDelay := flag.Duration("retry-delay", 200*time.Millisecond, "pause before retrying after a NoData response")
	flag.Parse()

	logger := cli.New(*verbosity)

	if *host == "" {
		logger.Error("missing required -host flag")
		os.Exit(1)
	}

	ridf.SetLogger(logger)

	src := ridf.NewNetworkSource(*host, nil)
	parser := ridf.NewParser(src, ridf.WithSegmentRegistry())
	defer parser.Close()

	nEvents, nSegments, nDatums := 0, 0, 0

	for *maxEvents == 0 || nEvents < *maxEvents {
		ev, err := parser.NextEvent()
		if err != nil {
			if errors.Is(err, ridf.ErrNoData) {
				time.Sleep(*retryDelay)
				continue
			}
			if errors.Is(err, ridf.ErrStreamExhausted) {
				logger.Error("event builder closed the stream")
				break
			}
			logger.Error(fmt.Sprintf("reading event: %s", err))
			break
		}
		nEvents++
		logger.Info(fmt.Sprintf("event %d", ev.Number), "ridfpull")

		for {
			_, err := parser.NextSegment()
			if err != nil {
				if errors.Is(err, ridf.ErrNoMoreSegments) {
					break
				}
				logger.Error(fmt.Sprintf("reading segment: %s", err))
				break
			}
			nSegments++
			for {
				_, err := parser.NextDatum()
				if err != nil {
					if errors.Is(err, ridf.ErrEndOfSegment) {
						break
					}
					logger.Error(fmt.Sprintf("reading datum: %s", err))
					break
				}
				nDatums++
			}
		}
	}

	fmt.Printf("events: %d, segments: %d, datums: %d\n", nEvents, nSegments, nDatums)
}
