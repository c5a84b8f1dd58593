//go:build !statsview

package main

import "io"

func launchStatsView(io.Writer) {}

func statsViewAvailable() bool {
	return false
}
