//go:build !headless

// display_backend_ebiten.go - Windowed display, key matrix and tick source on Ebiten

/*
display_backend_ebiten.go - Ebiten Display Backend

One Ebiten game object plays three roles:

  - TickSource: Update runs at the refresh rate (SetTPS) and calls the
    installed callback after sampling the keyboard, like a raster interrupt
  - KeyMatrix:  Poll returns the keyboard state sampled by that Update
  - Display:    Draw scans out the bound bank and signals the refresh
    boundary on a one slot channel that WaitForRefresh blocks on

The bound bank is only written while inactive, so it is converted to RGBA
once per Bind rather than once per frame.
*/

package main

import (
	"fmt"
	"image/color"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

type EbitenDisplay struct {
	bufferMutex sync.RWMutex
	running     atomic.Bool
	config      DisplayConfig
	fullscreen  bool

	bound       *FrameBank
	dirty       bool
	frameBuffer []byte
	window      *ebiten.Image

	frameCount atomic.Uint64
	vsyncChan  chan struct{}
	closed     chan struct{}

	tick        func()
	scan        KeyScan
	justPressed []ebiten.Key

	status        func() string
	showLegend    bool
	clipboardOnce sync.Once
	clipboardOK   bool
}

func NewEbitenDisplay() (*EbitenDisplay, error) {
	return &EbitenDisplay{
		config: DisplayConfig{
			Scale:       2,
			RefreshRate: DEFAULT_REFRESH_RATE,
			Border:      COLOR_WHITE,
			Layout:      NewHiresLayout(),
			VSync:       true,
		},
		frameBuffer: make([]byte, FRAME_WIDTH*FRAME_HEIGHT*BYTES_PER_PIXEL),
		vsyncChan:   make(chan struct{}, 1),
		closed:      make(chan struct{}),
		justPressed: make([]ebiten.Key, 0, 16),
		showLegend:  true,
	}, nil
}

func (eo *EbitenDisplay) Start() error {
	eo.running.Store(true)
	return nil
}

func (eo *EbitenDisplay) Stop() error {
	eo.running.Store(false)
	return nil
}

func (eo *EbitenDisplay) IsStarted() bool {
	return eo.running.Load()
}

// Run opens the window and blocks until it is closed. It must be called
// from the main goroutine.
func (eo *EbitenDisplay) Run() error {
	cfg := eo.GetDisplayConfig()
	eo.running.Store(true)
	ebiten.SetWindowSize(FRAME_WIDTH*cfg.Scale, FRAME_HEIGHT*cfg.Scale)
	ebiten.SetWindowTitle("gridcal - hires calibration grid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetTPS(cfg.RefreshRate)

	err := ebiten.RunGame(eo)
	eo.running.Store(false)
	// Release a swap waiting on a refresh that will never come
	close(eo.closed)
	if err != nil {
		return &GridError{Operation: "ebiten run", Details: "game loop ended", Err: err}
	}
	return nil
}

func (eo *EbitenDisplay) SetDisplayConfig(config DisplayConfig) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	config.Scale = clampScale(config.Scale)
	if config.RefreshRate <= 0 {
		config.RefreshRate = DEFAULT_REFRESH_RATE
	}
	if config.Layout == nil {
		config.Layout = NewHiresLayout()
	}
	eo.config = config
	eo.dirty = true
	return nil
}

func (eo *EbitenDisplay) GetDisplayConfig() DisplayConfig {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return eo.config
}

// SetStatusProvider sets the text shown above the plane and copied by C
func (eo *EbitenDisplay) SetStatusProvider(fn func() string) {
	eo.bufferMutex.Lock()
	eo.status = fn
	eo.bufferMutex.Unlock()
}

func (eo *EbitenDisplay) Bind(bank *FrameBank) error {
	eo.bufferMutex.Lock()
	eo.bound = bank
	eo.dirty = true
	eo.bufferMutex.Unlock()
	return nil
}

func (eo *EbitenDisplay) WaitForRefresh() error {
	if !eo.running.Load() {
		return &GridError{Operation: "refresh wait", Details: "window is closed"}
	}
	select {
	case <-eo.vsyncChan:
	default:
	}
	select {
	case <-eo.vsyncChan:
		return nil
	case <-eo.closed:
		return &GridError{Operation: "refresh wait", Details: "window is closed"}
	}
}

func (eo *EbitenDisplay) GetFrameCount() uint64 {
	return eo.frameCount.Load()
}

// Install registers the per-tick callback run from Update
func (eo *EbitenDisplay) Install(fn func()) {
	eo.bufferMutex.Lock()
	eo.tick = fn
	eo.bufferMutex.Unlock()
}

// TickSource exposes Update as a tick source. The game loop owns the
// cadence, so starting and stopping are left to Run.
func (eo *EbitenDisplay) TickSource() TickSource {
	return ebitenTickSource{eo}
}

type ebitenTickSource struct{ eo *EbitenDisplay }

func (s ebitenTickSource) Install(fn func()) { s.eo.Install(fn) }
func (s ebitenTickSource) Start() error      { return nil }
func (s ebitenTickSource) Stop()             {}

// Poll returns the key state sampled by the current Update
func (eo *EbitenDisplay) Poll() KeyScan {
	eo.bufferMutex.RLock()
	scan := eo.scan
	eo.bufferMutex.RUnlock()
	return scan
}

func (eo *EbitenDisplay) Update() error {
	if ebiten.IsWindowBeingClosed() || !eo.running.Load() {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.showLegend = !eo.showLegend
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		eo.copyStatus()
	}

	eo.sampleKeys()

	eo.bufferMutex.RLock()
	tick := eo.tick
	eo.bufferMutex.RUnlock()
	if tick != nil {
		tick()
	}
	return nil
}

// sampleKeys builds the key matrix scan for this tick
func (eo *EbitenDisplay) sampleKeys() {
	var scan KeyScan
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	for _, binding := range ebitenKeyBindings {
		if ebiten.IsKeyPressed(binding.host) {
			scan.Held[binding.key] = true
			if binding.shift {
				scan.Shift = true
			}
		}
	}
	if shift {
		scan.Shift = true
	}

	eo.justPressed = inpututil.AppendJustPressedKeys(eo.justPressed[:0])
	for _, hk := range eo.justPressed {
		if isModifierKey(hk) {
			continue
		}
		key, impliedShift := translateHostKey(hk)
		scan.Pressed = key
		scan.PressedShift = shift || impliedShift
		break
	}

	eo.bufferMutex.Lock()
	eo.scan = scan
	eo.bufferMutex.Unlock()
}

type ebitenKeyBinding struct {
	host  ebiten.Key
	key   Key
	shift bool // host key stands for the shifted logical key
}

var ebitenKeyBindings = []ebitenKeyBinding{
	{ebiten.KeyArrowRight, KeyCursorRight, false},
	{ebiten.KeyArrowLeft, KeyCursorRight, true},
	{ebiten.KeyArrowDown, KeyCursorDown, false},
	{ebiten.KeyArrowUp, KeyCursorDown, true},
	{ebiten.KeyNumpadAdd, KeyPlus, false},
	{ebiten.KeyMinus, KeyMinus, false},
	{ebiten.KeyNumpadSubtract, KeyMinus, false},
	{ebiten.KeyEqual, KeyEqual, false},
	{ebiten.KeyHome, KeyHome, false},
}

// translateHostKey maps a host key to a logical key and whether it implies
// the shift qualifier. Keys without a binding map to KeyUnknown.
func translateHostKey(hk ebiten.Key) (Key, bool) {
	for _, binding := range ebitenKeyBindings {
		if binding.host == hk {
			return binding.key, binding.shift
		}
	}
	return KeyUnknown, false
}

func isModifierKey(hk ebiten.Key) bool {
	switch hk {
	case ebiten.KeyShiftLeft, ebiten.KeyShiftRight,
		ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyAltLeft, ebiten.KeyAltRight,
		ebiten.KeyMetaLeft, ebiten.KeyMetaRight,
		ebiten.KeyF11, ebiten.KeyF12:
		return true
	}
	return false
}

func (eo *EbitenDisplay) copyStatus() {
	eo.bufferMutex.RLock()
	status := eo.status
	eo.bufferMutex.RUnlock()
	if status == nil {
		return
	}
	eo.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "ebiten: clipboard unavailable: %v\n", err)
			return
		}
		eo.clipboardOK = true
	})
	if !eo.clipboardOK {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(status()))
}

func (eo *EbitenDisplay) Draw(screen *ebiten.Image) {
	if eo.window == nil {
		eo.window = ebiten.NewImage(FRAME_WIDTH, FRAME_HEIGHT)
	}

	eo.bufferMutex.Lock()
	if eo.dirty && eo.bound != nil {
		eo.bound.RenderFrame(eo.frameBuffer, eo.config.Layout, eo.config.Border)
		eo.window.WritePixels(eo.frameBuffer)
		eo.dirty = false
	}
	status := eo.status
	eo.bufferMutex.Unlock()

	screen.DrawImage(eo.window, nil)
	if eo.showLegend {
		drawLegend(screen, status)
	}

	eo.frameCount.Add(1)
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenDisplay) Layout(_, _ int) (int, int) {
	return FRAME_WIDTH, FRAME_HEIGHT
}

// drawLegend writes the status line into the top border and the key help
// into the bottom border
func drawLegend(screen *ebiten.Image, status func() string) {
	face := basicfont.Face7x13
	barColor := color.RGBA{0, 0, 0, 180}
	textColor := color.RGBA{220, 220, 220, 255}

	ebitenutil.DrawRect(screen, 0, FRAME_HEIGHT-18, FRAME_WIDTH, 18, barColor)
	text.Draw(screen, "HOME reset  +/- size  CRSR move  C copy", face, 6, FRAME_HEIGHT-5, textColor)

	if status == nil {
		return
	}
	line := fmt.Sprintf("%s  %.1f fps", status(), ebiten.ActualFPS())
	ebitenutil.DrawRect(screen, 0, 0, FRAME_WIDTH, 18, barColor)
	text.Draw(screen, line, face, 6, 13, textColor)
}
