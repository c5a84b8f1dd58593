// display_backend_headless.go - Display without output for tests and scripted runs

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
	"sync"
	"sync/atomic"
)

// HeadlessDisplay records bindings and refreshes without showing anything.
// With VSync disabled every WaitForRefresh completes at once and counts as a
// frame; with VSync enabled it waits for Refresh.
type HeadlessDisplay struct {
	mutex      sync.Mutex
	started    bool
	config     DisplayConfig
	bound      atomic.Pointer[FrameBank]
	binds      atomic.Uint64
	frameCount atomic.Uint64
	refreshCh  chan struct{}
}

func NewHeadlessDisplay() *HeadlessDisplay {
	return &HeadlessDisplay{
		config: DisplayConfig{
			Scale:       1,
			RefreshRate: DEFAULT_REFRESH_RATE,
			Border:      COLOR_WHITE,
		},
		refreshCh: make(chan struct{}, 1),
	}
}

func (h *HeadlessDisplay) Start() error {
	h.mutex.Lock()
	h.started = true
	h.mutex.Unlock()
	return nil
}

func (h *HeadlessDisplay) Stop() error {
	h.mutex.Lock()
	h.started = false
	h.mutex.Unlock()
	return nil
}

func (h *HeadlessDisplay) IsStarted() bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.started
}

func (h *HeadlessDisplay) SetDisplayConfig(config DisplayConfig) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	config.Scale = clampScale(config.Scale)
	if config.RefreshRate <= 0 {
		config.RefreshRate = DEFAULT_REFRESH_RATE
	}
	h.config = config
	return nil
}

func (h *HeadlessDisplay) GetDisplayConfig() DisplayConfig {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.config
}

func (h *HeadlessDisplay) Bind(bank *FrameBank) error {
	h.bound.Store(bank)
	h.binds.Add(1)
	return nil
}

// Bound returns the bank currently scanned out
func (h *HeadlessDisplay) Bound() *FrameBank {
	return h.bound.Load()
}

// Binds returns how many times a bank was bound
func (h *HeadlessDisplay) Binds() uint64 {
	return h.binds.Load()
}

// Refresh marks a refresh boundary
func (h *HeadlessDisplay) Refresh() {
	h.frameCount.Add(1)
	select {
	case h.refreshCh <- struct{}{}:
	default:
	}
}

func (h *HeadlessDisplay) WaitForRefresh() error {
	if !h.GetDisplayConfig().VSync {
		h.frameCount.Add(1)
		return nil
	}
	// Drop a boundary signalled before the caller started waiting
	select {
	case <-h.refreshCh:
	default:
	}
	<-h.refreshCh
	return nil
}

func (h *HeadlessDisplay) GetFrameCount() uint64 {
	return h.frameCount.Load()
}
