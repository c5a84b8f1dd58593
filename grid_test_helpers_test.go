package main

import "testing"

type testRig struct {
	machine *GridMachine
	matrix  *ScriptedKeyMatrix
	clock   *ManualClock
	display *HeadlessDisplay
}

func newTestRig(t *testing.T, layout PlaneLayout) *testRig {
	t.Helper()
	display := NewHeadlessDisplay()
	if err := display.SetDisplayConfig(DisplayConfig{Layout: layout}); err != nil {
		t.Fatalf("SetDisplayConfig: %v", err)
	}
	rig := &testRig{
		matrix:  &ScriptedKeyMatrix{},
		clock:   &ManualClock{},
		display: display,
	}
	rig.machine = NewGridMachine(MachineConfig{
		Display: display,
		Matrix:  rig.matrix,
		Ticks:   rig.clock,
		Layout:  layout,
		Ink:     COLOR_BLACK,
		Paper:   COLOR_WHITE,
	})
	if err := rig.machine.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return rig
}

// tap presses key for a single tick, pumps the resulting command and releases
func (r *testRig) tap(t *testing.T, key Key, shift bool) bool {
	t.Helper()
	r.matrix.Press(key, shift)
	r.clock.Advance(1)
	r.matrix.Release(key)
	handled, err := r.machine.Pump()
	if err != nil {
		t.Fatalf("Pump after %v: %v", key, err)
	}
	return handled
}

// referenceBank renders g into a fresh bank the way Initialize does
func referenceBank(m *GridMachine, g Geometry) *FrameBank {
	bank := NewFrameBank(9)
	bank.Clear()
	bank.SetColor(m.ink, m.paper)
	m.hud.DrawLabels(bank)
	m.render(bank, g)
	return bank
}

// checkerAt is the reference definition of a grid pixel
func checkerAt(g Geometry, x, y int) bool {
	span := GridSpan(g.Size)
	if x < g.X || y < g.Y || x >= g.X+span || y >= g.Y+span {
		return false
	}
	return ((x-g.X)/g.Size+(y-g.Y)/g.Size)%2 == 0
}

func allLayouts() []PlaneLayout {
	return []PlaneLayout{NewHiresLayout(), LinearLayout{}}
}
