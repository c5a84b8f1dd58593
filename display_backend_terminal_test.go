package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newSimTerminal(t *testing.T) (*TerminalDisplay, tcell.SimulationScreen, *fakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(TERMINAL_COLS, TERMINAL_ROWS)
	t.Cleanup(screen.Fini)

	clock := &fakeClock{t: time.Unix(1000, 0)}
	td := newTerminalDisplay(screen)
	td.now = clock.now
	return td, screen, clock
}

func TestTerminalDisplay_FreshPressThenHold(t *testing.T) {
	td, _, clock := newSimTerminal(t)

	td.keyEvent(KeyCursorRight, false)
	scan := td.Poll()
	assert.Equal(t, KeyCursorRight, scan.Pressed)
	assert.False(t, scan.Held[KeyCursorRight], "a single press is not a hold")

	// The first auto-repeat arrives after the host's initial delay
	clock.advance(500 * time.Millisecond)
	td.keyEvent(KeyCursorRight, false)
	scan = td.Poll()
	assert.Equal(t, KeyNone, scan.Pressed)
	assert.True(t, scan.Held[KeyCursorRight])

	for range 5 {
		clock.advance(TERMINAL_REPEAT_GAP / 2)
		td.keyEvent(KeyCursorRight, false)
		scan = td.Poll()
		assert.Equal(t, KeyNone, scan.Pressed)
		assert.True(t, scan.Held[KeyCursorRight])
	}

	clock.advance(TERMINAL_REPEAT_GAP)
	scan = td.Poll()
	assert.False(t, scan.Held[KeyCursorRight], "key released once repeats stop")

	td.keyEvent(KeyCursorRight, false)
	scan = td.Poll()
	assert.Equal(t, KeyCursorRight, scan.Pressed, "press after release is fresh")
	assert.False(t, scan.Held[KeyCursorRight])
}

func TestTerminalDisplay_SeparateTapsAreFresh(t *testing.T) {
	td, _, clock := newSimTerminal(t)

	td.keyEvent(KeyPlus, false)
	require.Equal(t, KeyPlus, td.Poll().Pressed)
	clock.advance(TERMINAL_HOLD_WINDOW)
	td.keyEvent(KeyPlus, false)
	assert.Equal(t, KeyPlus, td.Poll().Pressed)

	// Home never repeats, so only the short gap separates taps
	td.keyEvent(KeyHome, false)
	require.Equal(t, KeyHome, td.Poll().Pressed)
	clock.advance(TERMINAL_REPEAT_GAP)
	td.keyEvent(KeyHome, false)
	assert.Equal(t, KeyHome, td.Poll().Pressed)
}

func TestTerminalDisplay_HostRepeatDrivesDebouncer(t *testing.T) {
	td, _, clock := newSimTerminal(t)
	d := NewDebouncer(td)
	base := clock.t
	tick := time.Second / DEFAULT_REFRESH_RATE

	// Press at 10ms, host repeats from 510ms every 30ms
	events := []time.Duration{10 * time.Millisecond}
	for at := 510 * time.Millisecond; at < 40*tick; at += 30 * time.Millisecond {
		events = append(events, at)
	}

	var ticks []int
	for i := 1; i <= 40; i++ {
		now := time.Duration(i) * tick
		for len(events) > 0 && events[0] <= now {
			clock.t = base.Add(events[0])
			td.keyEvent(KeyCursorRight, false)
			events = events[1:]
		}
		clock.t = base.Add(now)
		d.Tick()
		select {
		case c := <-d.Commands():
			assert.Equal(t, KeyCursorRight, c.Key)
			ticks = append(ticks, i)
		default:
		}
	}

	// The hold is picked up on the first tick after the host starts
	// repeating, then repeats at the normal interval
	assert.Equal(t, []int{1, 26, 31, 36}, ticks)
}

func TestTerminalDisplay_ShiftedPress(t *testing.T) {
	td, _, _ := newSimTerminal(t)
	td.keyEvent(KeyCursorDown, true)
	scan := td.Poll()
	assert.Equal(t, KeyCursorDown, scan.Pressed)
	assert.True(t, scan.PressedShift)
	assert.True(t, scan.Shift)
}

func TestTerminalKeyTranslation(t *testing.T) {
	tests := []struct {
		ev    *tcell.EventKey
		key   Key
		shift bool
	}{
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyCursorRight, false},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyCursorRight, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyCursorDown, false},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyCursorDown, true},
		{tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), KeyHome, false},
		{tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), KeyPlus, false},
		{tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), KeyMinus, false},
		{tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone), KeyEqual, false},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyUnknown, false},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), KeyCursorRight, true},
		{tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModShift), KeyHome, true},
		{tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModShift), KeyPlus, false},
	}
	for _, tt := range tests {
		key, shift := translateTerminalKey(tt.ev)
		assert.Equal(t, tt.key, key, tt.ev.Name())
		assert.Equal(t, tt.shift, shift, tt.ev.Name())
	}

	assert.True(t, isQuitEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuitEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, isQuitEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone)))
}

func TestTerminalDisplay_DrawsBraille(t *testing.T) {
	td, screen, _ := newSimTerminal(t)
	layout := NewHiresLayout()

	bank := NewFrameBank(0)
	bank.SetColor(COLOR_BLACK, COLOR_WHITE)
	NewGridRasterizer(layout).Draw(bank, DefaultGeometry())

	td.drawBank(bank, layout)

	// Top-left cell of the grid is fully set, the cell past it is clear
	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, rune(BRAILLE_BASE|0xFF), r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, paletteColor(COLOR_BLACK), fg)
	assert.Equal(t, paletteColor(COLOR_WHITE), bg)

	r, _, _, _ = screen.GetContent(8, 0) // pixels 16-17, inside the second cell
	assert.Equal(t, rune(BRAILLE_BASE), r)

	r, _, _, _ = screen.GetContent(TERMINAL_COLS-1, TERMINAL_ROWS-1)
	assert.Equal(t, rune(BRAILLE_BASE), r)
}

func TestTerminalDisplay_WaitForRefreshAfterStop(t *testing.T) {
	td, _, _ := newSimTerminal(t)
	close(td.done)
	assert.Error(t, td.WaitForRefresh())
}
