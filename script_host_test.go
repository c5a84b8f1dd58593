package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func newTestScriptHost(t *testing.T) (*ScriptHost, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	h, err := NewScriptHost(ScriptConfig{Ink: COLOR_BLACK, Paper: COLOR_WHITE, Output: &out})
	require.NoError(t, err)
	t.Cleanup(h.Close)
	return h, &out
}

func TestScriptHost_GrowAndRead(t *testing.T) {
	h, _ := newTestScriptHost(t)
	err := h.RunString(`
		press("plus")
		tick()
		release("plus")
		size, x, y = geometry()
		hs, hx, hy = hud()
		swaps = frames()
	`)
	require.NoError(t, err)

	assert.Equal(t, "16", h.L.GetGlobal("hs").String())
	assert.Equal(t, "00", h.L.GetGlobal("hx").String())
	assert.Equal(t, "00", h.L.GetGlobal("hy").String())
	assert.Equal(t, "16", h.L.GetGlobal("size").String())
	assert.Equal(t, "2", h.L.GetGlobal("swaps").String())
}

func TestScriptHost_HeldKeyRepeats(t *testing.T) {
	h, _ := newTestScriptHost(t)
	require.NoError(t, h.RunString(`
		press("down")
		tick(31)
		release("down")
		tick(10)
	`))
	// Press, then repeats at ticks 21, 26 and 31
	assert.Equal(t, Geometry{X: 0, Y: 4, Size: 15}, h.Machine().Geometry())
}

func TestScriptHost_ShiftedMoveAndHome(t *testing.T) {
	h, _ := newTestScriptHost(t)
	require.NoError(t, h.RunString(`
		for i = 1, 3 do
			press("right") tick() release("right") tick()
		end
		press("right", true) tick() release("right") tick()
	`))
	assert.Equal(t, Geometry{X: 2, Y: 0, Size: 15}, h.Machine().Geometry())

	require.NoError(t, h.RunString(`press("home") tick() release("home")`))
	assert.Equal(t, DefaultGeometry(), h.Machine().Geometry())
}

func TestScriptHost_Snapshot(t *testing.T) {
	h, out := newTestScriptHost(t)
	path := filepath.Join(t.TempDir(), "grid.bmp")
	h.L.SetGlobal("path", lua.LString(path))
	require.NoError(t, h.RunString(`snapshot(path)`))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, out.String(), "size=15 origin=0,0")
}

func TestScriptHost_Errors(t *testing.T) {
	h, _ := newTestScriptHost(t)
	err := h.RunString(`this is not lua`)
	var gerr *GridError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "script", gerr.Operation)

	assert.Error(t, h.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}

func TestScriptHost_RunFile(t *testing.T) {
	h, _ := newTestScriptHost(t)
	path := filepath.Join(t.TempDir(), "shrink.lua")
	require.NoError(t, os.WriteFile(path, []byte("press('minus') tick() release('minus')\n"), 0644))
	require.NoError(t, h.RunFile(path))
	assert.Equal(t, 14, h.Machine().Geometry().Size)
}
