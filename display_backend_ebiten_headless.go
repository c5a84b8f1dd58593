//go:build headless

package main

// EbitenDisplay is unavailable in headless builds
type EbitenDisplay struct {
	*HeadlessDisplay
}

func NewEbitenDisplay() (*EbitenDisplay, error) {
	return nil, &GridError{
		Operation: "backend creation",
		Details:   "ebiten backend not compiled into headless builds",
	}
}

func (eo *EbitenDisplay) Run() error                     { return nil }
func (eo *EbitenDisplay) SetStatusProvider(func() string) {}
func (eo *EbitenDisplay) TickSource() TickSource          { return &ManualClock{} }
func (eo *EbitenDisplay) Poll() KeyScan                   { return KeyScan{} }
