// script_host.go - Lua automation of key presses, ticks and snapshots

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
script_host.go - Script Host

Runs a Lua script against a headless grid. The script plays the user and the
display at once: it holds keys on a scripted key matrix and advances a manual
clock. Every tick runs the debouncer, then lets the main loop pump once, so
timing is identical to an interactive session at one command per frame.

Lua API:
  press(key [, shift])   key down; names: right down plus minus equal home
  release(key)           key up
  tick([n])              advance n ticks (default 1)
  geometry()             → size, x, y
  hud()                  → size, x, y as shown by the readout
  frames()               → number of swaps so far
  snapshot(path)         write the active bank as BMP
*/

package main

import (
	"fmt"
	"io"

	lua "github.com/yuin/gopher-lua"
)

// ScriptedKeyMatrix is a key matrix driven by calls instead of hardware
type ScriptedKeyMatrix struct {
	held         [KEY_COUNT]bool
	shift        bool
	pending      Key
	pendingShift bool
}

// Press puts key down and records a fresh transition
func (m *ScriptedKeyMatrix) Press(key Key, shift bool) {
	m.held[key] = true
	m.shift = shift
	m.pending = key
	m.pendingShift = shift
}

// Release lets key go
func (m *ScriptedKeyMatrix) Release(key Key) {
	m.held[key] = false
	m.shift = false
}

func (m *ScriptedKeyMatrix) Poll() KeyScan {
	scan := KeyScan{
		Held:         m.held,
		Shift:        m.shift,
		Pressed:      m.pending,
		PressedShift: m.pendingShift,
	}
	m.pending = KeyNone
	m.pendingShift = false
	return scan
}

// ScriptConfig selects the plane set-up of a scripted run
type ScriptConfig struct {
	Layout PlaneLayout
	Ink    uint8
	Paper  uint8
	Output io.Writer
}

// ScriptHost owns a headless grid and the Lua state driving it
type ScriptHost struct {
	L       *lua.LState
	machine *GridMachine
	clock   *ManualClock
	matrix  *ScriptedKeyMatrix
	display *HeadlessDisplay
	out     io.Writer
}

// NewScriptHost creates and initialises a headless grid for scripting
func NewScriptHost(cfg ScriptConfig) (*ScriptHost, error) {
	layout := cfg.Layout
	if layout == nil {
		layout = NewHiresLayout()
	}
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	display := NewHeadlessDisplay()
	if err := display.SetDisplayConfig(DisplayConfig{Layout: layout, Border: COLOR_WHITE}); err != nil {
		return nil, err
	}
	clock := &ManualClock{}
	matrix := &ScriptedKeyMatrix{}
	machine := NewGridMachine(MachineConfig{
		Display: display,
		Matrix:  matrix,
		Ticks:   clock,
		Layout:  layout,
		Ink:     cfg.Ink,
		Paper:   cfg.Paper,
	})
	if err := machine.Initialize(); err != nil {
		return nil, err
	}

	h := &ScriptHost{
		L:       lua.NewState(),
		machine: machine,
		clock:   clock,
		matrix:  matrix,
		display: display,
		out:     out,
	}
	h.register()
	return h, nil
}

// Close releases the Lua state
func (h *ScriptHost) Close() {
	h.L.Close()
}

// Machine exposes the scripted grid
func (h *ScriptHost) Machine() *GridMachine { return h.machine }

// RunFile executes a script file
func (h *ScriptHost) RunFile(path string) error {
	if err := h.L.DoFile(path); err != nil {
		return &GridError{Operation: "script", Details: path, Err: err}
	}
	return nil
}

// RunString executes script source
func (h *ScriptHost) RunString(src string) error {
	if err := h.L.DoString(src); err != nil {
		return &GridError{Operation: "script", Details: "inline source", Err: err}
	}
	return nil
}

func (h *ScriptHost) register() {
	funcs := map[string]lua.LGFunction{
		"press":    h.luaPress,
		"release":  h.luaRelease,
		"tick":     h.luaTick,
		"geometry": h.luaGeometry,
		"hud":      h.luaHUD,
		"frames":   h.luaFrames,
		"snapshot": h.luaSnapshot,
	}
	for name, fn := range funcs {
		h.L.SetGlobal(name, h.L.NewFunction(fn))
	}
}

// Step advances one tick and pumps the main loop once
func (h *ScriptHost) Step() error {
	h.clock.Advance(1)
	_, err := h.machine.Pump()
	return err
}

func (h *ScriptHost) luaPress(L *lua.LState) int {
	key := ParseKey(L.CheckString(1))
	h.matrix.Press(key, L.OptBool(2, false))
	return 0
}

func (h *ScriptHost) luaRelease(L *lua.LState) int {
	h.matrix.Release(ParseKey(L.CheckString(1)))
	return 0
}

func (h *ScriptHost) luaTick(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range n {
		if err := h.Step(); err != nil {
			L.RaiseError("tick: %v", err)
			return 0
		}
	}
	return 0
}

func (h *ScriptHost) luaGeometry(L *lua.LState) int {
	g := h.machine.Geometry()
	L.Push(lua.LNumber(g.Size))
	L.Push(lua.LNumber(g.X))
	L.Push(lua.LNumber(g.Y))
	return 3
}

func (h *ScriptHost) luaHUD(L *lua.LState) int {
	size, x, y := h.machine.HUD().ReadGeometry(h.machine.Banks().Active())
	L.Push(lua.LString(size))
	L.Push(lua.LString(x))
	L.Push(lua.LString(y))
	return 3
}

func (h *ScriptHost) luaFrames(L *lua.LState) int {
	L.Push(lua.LNumber(h.machine.Banks().Swaps()))
	return 1
}

func (h *ScriptHost) luaSnapshot(L *lua.LState) int {
	path := L.CheckString(1)
	if err := SaveBankBMP(path, h.machine.Banks().Active(), h.machine.Layout()); err != nil {
		L.RaiseError("snapshot: %v", err)
		return 0
	}
	fmt.Fprintf(h.out, "snapshot: %s (%s)\n", path, h.machine.Geometry())
	return 0
}
