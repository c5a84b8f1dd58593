// grid_config.go - Command line configuration

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"io"
)

// GridConfig holds everything selectable from the command line
type GridConfig struct {
	Backend   string
	Layout    string
	Scale     int
	Rate      int
	Ink       int
	Paper     int
	Border    int
	Click     bool
	Script    string
	Snapshot  string
	StatsView bool
}

// DefaultGridConfig is the classic screen set-up: black ink on white
// paper inside a white border
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Backend: "ebiten",
		Layout:  LAYOUT_HIRES,
		Scale:   2,
		Rate:    DEFAULT_REFRESH_RATE,
		Ink:     COLOR_BLACK,
		Paper:   COLOR_WHITE,
		Border:  COLOR_WHITE,
	}
}

// parseGridFlags parses args (without the program name)
func parseGridFlags(name string, args []string, usageOut io.Writer) (GridConfig, error) {
	cfg := DefaultGridConfig()

	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&cfg.Backend, "backend", cfg.Backend, "Display backend: ebiten, terminal or headless")
	flagSet.StringVar(&cfg.Layout, "layout", cfg.Layout, "Pixel plane layout: hires or linear")
	flagSet.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window scale factor (1-6)")
	flagSet.IntVar(&cfg.Rate, "rate", cfg.Rate, "Refresh and key scan rate in Hz")
	flagSet.IntVar(&cfg.Ink, "ink", cfg.Ink, "Grid colour (palette index 0-15)")
	flagSet.IntVar(&cfg.Paper, "paper", cfg.Paper, "Background colour (palette index 0-15)")
	flagSet.IntVar(&cfg.Border, "border", cfg.Border, "Border colour (palette index 0-15)")
	flagSet.BoolVar(&cfg.Click, "click", cfg.Click, "Click on every applied command")
	flagSet.StringVar(&cfg.Script, "script", cfg.Script, "Run a Lua script against a headless grid")
	flagSet.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "Write the active bank as BMP when a headless run ends")
	flagSet.BoolVar(&cfg.StatsView, "statsview", cfg.StatsView, "Serve runtime statistics on localhost:12600")

	flagSet.Usage = func() {
		flagSet.SetOutput(usageOut)
		fmt.Fprintln(usageOut, "Usage: ./gridcal [-backend ebiten|terminal|headless] [-layout hires|linear] [-script file.lua] [-snapshot out.bmp]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			flagSet.Usage()
		}
		return cfg, err
	}
	if cfg.Script != "" {
		cfg.Backend = "headless"
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and names
func (c GridConfig) Validate() error {
	if _, err := ParseDisplayBackend(c.Backend); err != nil {
		return err
	}
	if c.Layout != LAYOUT_HIRES && c.Layout != LAYOUT_LINEAR {
		return &GridError{Operation: "configuration", Details: fmt.Sprintf("unknown layout %q", c.Layout)}
	}
	if c.Rate < 1 || c.Rate > 240 {
		return &GridError{Operation: "configuration", Details: fmt.Sprintf("rate %d outside 1-240 Hz", c.Rate)}
	}
	for _, col := range []struct {
		name  string
		value int
	}{{"ink", c.Ink}, {"paper", c.Paper}, {"border", c.Border}} {
		if col.value < 0 || col.value >= PALETTE_SIZE {
			return &GridError{Operation: "configuration", Details: fmt.Sprintf("%s colour %d outside 0-15", col.name, col.value)}
		}
	}
	return nil
}
