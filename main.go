// main.go - Main entry point for the gridcal hires calibration grid

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
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ░▒▓ gridcal ▓▒░\033[0m \033[38;2;255;170;147mhires calibration grid\033[0m")
	fmt.Println("Checkerboard grid for judging scaling, aspect and sharpness of 320x200 output.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	cfg, err := parseGridFlags(os.Args[0], os.Args[1:], os.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Backend != "terminal" {
		boilerPlate()
	}

	if cfg.StatsView {
		if statsViewAvailable() {
			launchStatsView(os.Stdout)
		} else {
			fmt.Println("Warning: built without the statsview tag, -statsview ignored")
		}
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg GridConfig) error {
	layout, err := NewPlaneLayout(cfg.Layout)
	if err != nil {
		return err
	}
	displayCfg := DisplayConfig{
		Scale:       cfg.Scale,
		RefreshRate: cfg.Rate,
		Border:      uint8(cfg.Border),
		Layout:      layout,
		VSync:       true,
	}

	backend, _ := ParseDisplayBackend(cfg.Backend)
	switch backend {
	case DISPLAY_BACKEND_EBITEN:
		return runEbiten(cfg, displayCfg)
	case DISPLAY_BACKEND_TERMINAL:
		return runTerminal(cfg, displayCfg)
	default:
		return runHeadless(cfg, layout)
	}
}

// attachClick wires the click sound to every applied command
func attachClick(cfg GridConfig, machine *GridMachine) func() {
	if !cfg.Click {
		return func() {}
	}
	click, err := NewClickPlayer(CLICK_SAMPLE_RATE)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio: %v, continuing without click\n", err)
		return func() {}
	}
	machine.OnApplied(func(Command, Geometry) { click.Click() })
	return click.Close
}

func runEbiten(cfg GridConfig, displayCfg DisplayConfig) error {
	display, err := NewEbitenDisplay()
	if err != nil {
		return err
	}
	if err := display.SetDisplayConfig(displayCfg); err != nil {
		return err
	}

	machine := NewGridMachine(MachineConfig{
		Display: display,
		Matrix:  display,
		Ticks:   display.TickSource(),
		Layout:  displayCfg.Layout,
		Ink:     uint8(cfg.Ink),
		Paper:   uint8(cfg.Paper),
	})
	if err := machine.Initialize(); err != nil {
		return err
	}
	display.SetStatusProvider(func() string { return machine.Geometry().String() })
	defer attachClick(cfg, machine)()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- machine.Run(ctx) }()

	if err := display.Run(); err != nil {
		return err
	}
	cancel()
	// A swap interrupted by the window closing is not an error
	<-errCh
	return nil
}

func runTerminal(cfg GridConfig, displayCfg DisplayConfig) error {
	display, err := NewTerminalDisplay()
	if err != nil {
		return err
	}
	if err := display.SetDisplayConfig(displayCfg); err != nil {
		return err
	}
	ticks := NewTickerSource(displayCfg.RefreshRate)

	machine := NewGridMachine(MachineConfig{
		Display: display,
		Matrix:  display,
		Ticks:   ticks,
		Layout:  displayCfg.Layout,
		Ink:     uint8(cfg.Ink),
		Paper:   uint8(cfg.Paper),
	})
	if err := machine.Initialize(); err != nil {
		return err
	}
	defer attachClick(cfg, machine)()

	if err := display.Start(); err != nil {
		return err
	}
	defer display.Stop()
	if err := ticks.Start(); err != nil {
		return err
	}
	defer ticks.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- machine.Run(ctx) }()

	select {
	case <-display.Done():
		return nil
	case err := <-errCh:
		if !display.IsStarted() {
			return nil
		}
		return err
	}
}

func runHeadless(cfg GridConfig, layout PlaneLayout) error {
	host, err := NewScriptHost(ScriptConfig{
		Layout: layout,
		Ink:    uint8(cfg.Ink),
		Paper:  uint8(cfg.Paper),
		Output: os.Stdout,
	})
	if err != nil {
		return err
	}
	defer host.Close()

	if cfg.Script != "" {
		fmt.Printf("Running script: %s\n", cfg.Script)
		if err := host.RunFile(cfg.Script); err != nil {
			return err
		}
	}

	machine := host.Machine()
	fmt.Printf("Final grid: %s after %d swaps\n", machine.Geometry(), machine.Banks().Swaps())
	if cfg.Snapshot != "" {
		if err := SaveBankBMP(cfg.Snapshot, machine.Banks().Active(), machine.Layout()); err != nil {
			return err
		}
		fmt.Printf("Snapshot written to %s\n", cfg.Snapshot)
	}
	return nil
}
