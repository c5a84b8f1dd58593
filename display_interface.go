// display_interface.go - Display backend interface and shared error type

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
	"fmt"
)

// GridError provides detailed error context for backend operations
type GridError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *GridError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Details)
}

func (e *GridError) Unwrap() error {
	return e.Err
}

// DisplayConfig contains backend independent configuration
type DisplayConfig struct {
	Scale       int // Integer scaling factor for output
	RefreshRate int // Refresh (and tick) rate in Hz
	Border      uint8
	Layout      PlaneLayout
	VSync       bool // Whether WaitForRefresh blocks until the next frame
}

// Display shows one bound bank and marks refresh boundaries
type Display interface {
	// Lifecycle management
	Start() error
	Stop() error
	IsStarted() bool

	SetDisplayConfig(config DisplayConfig) error
	GetDisplayConfig() DisplayConfig

	// Bind designates the bank scanned out from the next frame on
	Bind(bank *FrameBank) error

	// Timing and synchronization
	WaitForRefresh() error
	GetFrameCount() uint64
}

// Predefined display backend types
const (
	DISPLAY_BACKEND_EBITEN = iota
	DISPLAY_BACKEND_TERMINAL
	DISPLAY_BACKEND_HEADLESS
)

var displayBackendNames = map[string]int{
	"ebiten":   DISPLAY_BACKEND_EBITEN,
	"terminal": DISPLAY_BACKEND_TERMINAL,
	"headless": DISPLAY_BACKEND_HEADLESS,
}

// ParseDisplayBackend maps a backend name to its type
func ParseDisplayBackend(name string) (int, error) {
	if backend, ok := displayBackendNames[name]; ok {
		return backend, nil
	}
	return 0, &GridError{
		Operation: "backend selection",
		Details:   fmt.Sprintf("unknown display backend %q", name),
	}
}

// clampScale keeps the window scale in a usable range
func clampScale(scale int) int {
	if scale < 1 {
		return 1
	}
	if scale > 6 {
		return 6
	}
	return scale
}
