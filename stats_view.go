//go:build statsview

package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const STATSVIEW_ADDRESS = "localhost:12600"

// launchStatsView starts the runtime statistics server in its own goroutine
func launchStatsView(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(STATSVIEW_ADDRESS))
		mgr := statsview.New()
		mgr.Start()
	}()
	fmt.Fprintf(output, "stats server available at %s/debug/statsview\n", STATSVIEW_ADDRESS)
}

func statsViewAvailable() bool {
	return true
}
