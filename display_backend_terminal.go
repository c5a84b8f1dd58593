// display_backend_terminal.go - Braille rendering terminal display and key matrix on tcell

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
display_backend_terminal.go - Terminal Display Backend

Each terminal cell shows a 2x4 block of plane pixels as a braille pattern, so
the 320x200 plane needs 160x50 cells. Smaller terminals show the top-left
part, which always contains the grid.

Terminals report key presses but not releases. The first event of a key is
a fresh transition. The host's first auto-repeat arrives only after its
initial delay, so another event within TERMINAL_HOLD_WINDOW starts a hold
instead of a second press. The key then counts as held while events keep
arriving within TERMINAL_REPEAT_GAP. Keys that never repeat use the short
gap throughout.
*/

package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

const (
	BRAILLE_BASE   = 0x2800
	BRAILLE_CELL_W = 2
	BRAILLE_CELL_H = 4

	TERMINAL_COLS = PLANE_WIDTH / BRAILLE_CELL_W  // 160
	TERMINAL_ROWS = PLANE_HEIGHT / BRAILLE_CELL_H // 50
)

// brailleDots maps a pixel inside a braille cell to its dot bit
var brailleDots = [BRAILLE_CELL_H][BRAILLE_CELL_W]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type TerminalDisplay struct {
	mutex   sync.Mutex
	screen  tcell.Screen
	config  DisplayConfig
	running atomic.Bool

	bound *FrameBank
	dirty bool

	frameCount atomic.Uint64
	vsyncChan  chan struct{}
	done       chan struct{}
	stopOnce   sync.Once

	// Key state, written by the event goroutine
	keyMutex     sync.Mutex
	lastSeen     [KEY_COUNT]time.Time
	repeating    [KEY_COUNT]bool
	lastShift    bool
	pending      Key
	pendingShift bool
	now          func() time.Time
}

// NewTerminalDisplay opens a tcell screen on the controlling terminal
func NewTerminalDisplay() (*TerminalDisplay, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, &GridError{Operation: "terminal backend", Details: "stdout is not a terminal"}
	}
	if w, h, err := term.GetSize(fd); err == nil && (w < TERMINAL_COLS || h < TERMINAL_ROWS) {
		fmt.Fprintf(os.Stderr, "terminal: %dx%d is smaller than the %dx%d plane, output is clipped\n",
			w, h, TERMINAL_COLS, TERMINAL_ROWS)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &GridError{Operation: "terminal backend", Details: "cannot create screen", Err: err}
	}
	return newTerminalDisplay(screen), nil
}

func newTerminalDisplay(screen tcell.Screen) *TerminalDisplay {
	return &TerminalDisplay{
		screen: screen,
		config: DisplayConfig{
			Scale:       1,
			RefreshRate: DEFAULT_REFRESH_RATE,
			Border:      COLOR_WHITE,
			Layout:      NewHiresLayout(),
			VSync:       true,
		},
		vsyncChan: make(chan struct{}, 1),
		done:      make(chan struct{}),
		now:       time.Now,
	}
}

func (td *TerminalDisplay) Start() error {
	if td.running.Load() {
		return nil
	}
	if err := td.screen.Init(); err != nil {
		return &GridError{Operation: "terminal backend", Details: "cannot initialise screen", Err: err}
	}
	td.screen.HideCursor()
	td.screen.Clear()
	td.running.Store(true)

	go td.eventLoop()
	go td.refreshLoop()
	return nil
}

func (td *TerminalDisplay) Stop() error {
	td.stopOnce.Do(func() {
		td.running.Store(false)
		close(td.done)
		td.screen.Fini()
	})
	return nil
}

func (td *TerminalDisplay) IsStarted() bool {
	return td.running.Load()
}

// Done is closed when the user quits or Stop is called
func (td *TerminalDisplay) Done() <-chan struct{} {
	return td.done
}

func (td *TerminalDisplay) SetDisplayConfig(config DisplayConfig) error {
	td.mutex.Lock()
	defer td.mutex.Unlock()
	if config.RefreshRate <= 0 {
		config.RefreshRate = DEFAULT_REFRESH_RATE
	}
	if config.Layout == nil {
		config.Layout = NewHiresLayout()
	}
	config.Scale = 1
	td.config = config
	td.dirty = true
	return nil
}

func (td *TerminalDisplay) GetDisplayConfig() DisplayConfig {
	td.mutex.Lock()
	defer td.mutex.Unlock()
	return td.config
}

func (td *TerminalDisplay) Bind(bank *FrameBank) error {
	td.mutex.Lock()
	td.bound = bank
	td.dirty = true
	td.mutex.Unlock()
	return nil
}

func (td *TerminalDisplay) WaitForRefresh() error {
	select {
	case <-td.vsyncChan:
	default:
	}
	select {
	case <-td.vsyncChan:
		return nil
	case <-td.done:
		return &GridError{Operation: "refresh wait", Details: "terminal closed"}
	}
}

func (td *TerminalDisplay) GetFrameCount() uint64 {
	return td.frameCount.Load()
}

// refreshLoop redraws the bound bank at the refresh rate
func (td *TerminalDisplay) refreshLoop() {
	ticker := time.NewTicker(time.Second / time.Duration(td.GetDisplayConfig().RefreshRate))
	defer ticker.Stop()

	for {
		select {
		case <-td.done:
			return
		case <-ticker.C:
			td.mutex.Lock()
			if td.dirty && td.bound != nil {
				td.drawBank(td.bound, td.config.Layout)
				td.dirty = false
				td.screen.Show()
			}
			td.mutex.Unlock()

			td.frameCount.Add(1)
			select {
			case td.vsyncChan <- struct{}{}:
			default:
			}
		}
	}
}

// drawBank renders bank as braille cells
func (td *TerminalDisplay) drawBank(bank *FrameBank, layout PlaneLayout) {
	cols, rows := td.screen.Size()
	cols = min(cols, TERMINAL_COLS)
	rows = min(rows, TERMINAL_ROWS)
	attrs := bank.Attrs()

	for cy := range rows {
		for cx := range cols {
			px, py := cx*BRAILLE_CELL_W, cy*BRAILLE_CELL_H
			r := rune(BRAILLE_BASE)
			for dy := range BRAILLE_CELL_H {
				for dx := range BRAILLE_CELL_W {
					if bank.Pixel(layout, px+dx, py+dy) {
						r |= brailleDots[dy][dx]
					}
				}
			}
			attr := attrs[(py/PLANE_CELL_HEIGHT)*PLANE_CELLS_X+px/PLANE_CELL_WIDTH]
			style := tcell.StyleDefault.
				Foreground(paletteColor(attr >> 4)).
				Background(paletteColor(attr & 0x0F))
			td.screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

func paletteColor(index uint8) tcell.Color {
	c := Palette[index&0x0F]
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}

// eventLoop feeds key events into the matrix state
func (td *TerminalDisplay) eventLoop() {
	for td.running.Load() {
		ev := td.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			td.mutex.Lock()
			td.dirty = true
			td.mutex.Unlock()
			td.screen.Sync()
		case *tcell.EventKey:
			if isQuitEvent(ev) {
				go td.Stop()
				return
			}
			td.keyEvent(translateTerminalKey(ev))
		}
	}
}

func isQuitEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// translateTerminalKey maps a tcell key event to a logical key and its shift
// qualifier. A typed rune already carries its shift state, so '+' is the plus
// key and never shifted '='.
func translateTerminalKey(ev *tcell.EventKey) (Key, bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyRight:
		return KeyCursorRight, shift
	case tcell.KeyLeft:
		return KeyCursorRight, true
	case tcell.KeyDown:
		return KeyCursorDown, shift
	case tcell.KeyUp:
		return KeyCursorDown, true
	case tcell.KeyHome:
		return KeyHome, shift
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+':
			return KeyPlus, false
		case '-':
			return KeyMinus, false
		case '=':
			return KeyEqual, false
		}
	}
	return KeyUnknown, false
}

// keyEvent records a key press event from the terminal
func (td *TerminalDisplay) keyEvent(key Key, shift bool) {
	td.keyMutex.Lock()
	defer td.keyMutex.Unlock()

	now := td.now()
	gap := TERMINAL_HOLD_WINDOW
	if td.repeating[key] || !key.Repeatable() {
		gap = TERMINAL_REPEAT_GAP
	}
	if td.lastSeen[key].IsZero() || now.Sub(td.lastSeen[key]) >= gap {
		td.pending = key
		td.pendingShift = shift
		td.repeating[key] = false
	} else {
		td.repeating[key] = true
	}
	td.lastSeen[key] = now
	td.lastShift = shift
}

// Poll returns the emulated key matrix and consumes the pending transition
func (td *TerminalDisplay) Poll() KeyScan {
	td.keyMutex.Lock()
	defer td.keyMutex.Unlock()

	var scan KeyScan
	now := td.now()
	for k := range td.lastSeen {
		if td.repeating[k] && now.Sub(td.lastSeen[k]) < TERMINAL_REPEAT_GAP {
			scan.Held[k] = true
		}
	}
	scan.Shift = td.lastShift
	scan.Pressed = td.pending
	scan.PressedShift = td.pendingShift
	td.pending = KeyNone
	td.pendingShift = false
	return scan
}
