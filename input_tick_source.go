// input_tick_source.go - Periodic tick sources standing in for the raster interrupt

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
	"time"
)

// TickSource invokes an installed callback at a fixed cadence. The callback
// runs on the source's own goroutine and is never re-entered.
type TickSource interface {
	Install(fn func())
	Start() error
	Stop()
}

// TickerSource drives the callback from a time.Ticker
type TickerSource struct {
	mutex    sync.Mutex
	interval time.Duration
	fn       func()
	done     chan struct{}
	running  bool
}

// NewTickerSource creates a tick source firing rate times per second
func NewTickerSource(rate int) *TickerSource {
	if rate <= 0 {
		rate = DEFAULT_REFRESH_RATE
	}
	return &TickerSource{interval: time.Second / time.Duration(rate)}
}

func (t *TickerSource) Install(fn func()) {
	t.mutex.Lock()
	t.fn = fn
	t.mutex.Unlock()
}

func (t *TickerSource) Start() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.running {
		return nil
	}
	t.done = make(chan struct{})
	t.running = true
	go t.tickLoop(t.done, t.fn)
	return nil
}

func (t *TickerSource) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if !t.running {
		return
	}
	close(t.done)
	t.running = false
}

func (t *TickerSource) tickLoop(done chan struct{}, fn func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if fn != nil {
				fn()
			}
		}
	}
}

// ManualClock fires the callback only when advanced. Tests and scripts use it
// to step the debouncer deterministically.
type ManualClock struct {
	fn    func()
	ticks uint64
}

func (c *ManualClock) Install(fn func()) { c.fn = fn }
func (c *ManualClock) Start() error      { return nil }
func (c *ManualClock) Stop()             {}

// Advance fires n ticks
func (c *ManualClock) Advance(n int) {
	for range n {
		c.ticks++
		if c.fn != nil {
			c.fn()
		}
	}
}

// Ticks returns the number of ticks fired so far
func (c *ManualClock) Ticks() uint64 {
	return c.ticks
}
