// grid_machine.go - Main loop state machine: dequeue, clamp, erase, draw, swap

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

/*
grid_machine.go - Grid State Machine

Two execution contexts touch the grid:

  tick goroutine:  TickSource → Debouncer.Tick → one slot queue
  main goroutine:  Pump/Run → Apply → Erase → Draw → HUD → Swap

A dequeued command always runs erase → draw → swap to completion before the
next command is looked at. The swap waits for the refresh boundary, so the
viewer only ever sees complete frames of exactly one geometry.
*/

package main

import (
	"context"
	"sync"
	"sync/atomic"
)

// GridMachine is the core of the calibration tool
type GridMachine struct {
	banks      *BankManager
	debouncer  *Debouncer
	ticks      TickSource
	rasterizer *GridRasterizer
	eraser     *GridEraser
	hud        *HUD
	layout     PlaneLayout
	ink, paper uint8

	// Current geometry, read by backends (clipboard, scripts)
	geometry atomic.Pointer[Geometry]

	observerMu sync.Mutex
	observers  []func(Command, Geometry)
}

// MachineConfig wires a machine to its host collaborators
type MachineConfig struct {
	Display Display
	Matrix  KeyMatrix
	Ticks   TickSource
	Layout  PlaneLayout
	Ink     uint8
	Paper   uint8
}

// NewGridMachine creates a machine. Initialize must be called before use.
func NewGridMachine(cfg MachineConfig) *GridMachine {
	layout := cfg.Layout
	if layout == nil {
		layout = NewHiresLayout()
	}
	m := &GridMachine{
		banks:      NewBankManager(cfg.Display),
		debouncer:  NewDebouncer(cfg.Matrix),
		ticks:      cfg.Ticks,
		rasterizer: NewGridRasterizer(layout),
		eraser:     NewGridEraser(layout),
		hud:        NewHUD(layout),
		layout:     layout,
		ink:        cfg.Ink,
		paper:      cfg.Paper,
	}
	g := DefaultGeometry()
	m.geometry.Store(&g)
	return m
}

// Initialize zeroes both banks, renders the default grid into bank 1, clones
// it into bank 0, binds bank 1 and installs the debouncer on the tick source.
func (m *GridMachine) Initialize() error {
	g := DefaultGeometry()
	m.geometry.Store(&g)

	first := m.banks.Bank(1)
	for _, bank := range m.banks.banks {
		bank.Clear()
		bank.SetColor(m.ink, m.paper)
	}
	m.hud.DrawLabels(first)
	m.render(first, g)

	// Bank 0 is active after construction; nothing has been shown yet
	if err := m.banks.flip(); err != nil {
		return err
	}
	m.banks.Bank(0).CloneFrom(first)

	if m.ticks != nil {
		m.ticks.Install(m.debouncer.Tick)
	}
	return nil
}

// Pump runs one command if one is queued and returns immediately otherwise
func (m *GridMachine) Pump() (bool, error) {
	select {
	case cmd := <-m.debouncer.Commands():
		return m.handle(cmd)
	default:
		return false, nil
	}
}

// Run blocks handling commands until ctx is done or a swap fails
func (m *GridMachine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-m.debouncer.Commands():
			if _, err := m.handle(cmd); err != nil {
				return err
			}
		}
	}
}

// handle applies cmd. Unrecognised commands leave everything untouched.
func (m *GridMachine) handle(cmd Command) (bool, error) {
	next, ok := m.Geometry().Apply(cmd)
	if !ok {
		return false, nil
	}

	target := m.banks.Inactive()
	m.eraser.Erase(target, target.Geometry(), next)
	m.render(target, next)
	m.geometry.Store(&next)

	if err := m.banks.Swap(); err != nil {
		return true, err
	}
	m.notify(cmd, next)
	return true, nil
}

// render draws the grid and readout of g into bank
func (m *GridMachine) render(bank *FrameBank, g Geometry) {
	m.rasterizer.Draw(bank, g)
	m.hud.DrawGeometry(bank, g)
	bank.setGeometry(g)
}

// OnApplied registers fn to run on the main goroutine after every swap
func (m *GridMachine) OnApplied(fn func(Command, Geometry)) {
	m.observerMu.Lock()
	m.observers = append(m.observers, fn)
	m.observerMu.Unlock()
}

func (m *GridMachine) notify(cmd Command, g Geometry) {
	m.observerMu.Lock()
	observers := m.observers
	m.observerMu.Unlock()
	for _, fn := range observers {
		fn(cmd, g)
	}
}

// Geometry returns the current geometry
func (m *GridMachine) Geometry() Geometry {
	return *m.geometry.Load()
}

// Banks exposes the bank manager
func (m *GridMachine) Banks() *BankManager { return m.banks }

// Debouncer exposes the input queue producer
func (m *GridMachine) Debouncer() *Debouncer { return m.debouncer }

// HUD exposes the readout blitter
func (m *GridMachine) HUD() *HUD { return m.hud }

// Layout returns the plane layout banks are addressed through
func (m *GridMachine) Layout() PlaneLayout { return m.layout }
