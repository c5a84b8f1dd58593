package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridMachine_Initialize(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	m := rig.machine

	assert.Equal(t, DefaultGeometry(), m.Geometry())
	assert.Same(t, m.Banks().Bank(1), m.Banks().Active())
	assert.Same(t, m.Banks().Bank(1), rig.display.Bound())
	assert.True(t, m.Banks().Bank(0).Equal(m.Banks().Bank(1)), "bank 0 is a clone of bank 1")
	assert.Equal(t, DefaultGeometry(), m.Banks().Bank(0).Geometry())

	size, x, y := m.HUD().ReadGeometry(m.Banks().Active())
	assert.Equal(t, []string{"15", "00", "00"}, []string{size, x, y})

	attrs := m.Banks().Active().Attrs()
	assert.Equal(t, uint8(COLOR_BLACK<<4|COLOR_WHITE), attrs[0])
	assert.Equal(t, uint8(COLOR_BLACK<<4|COLOR_WHITE), attrs[ATTR_BYTES-1])
}

func TestGridMachine_GrowOnce(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	m := rig.machine

	require.True(t, rig.tap(t, KeyPlus, false))
	assert.Equal(t, Geometry{X: 0, Y: 0, Size: 16}, m.Geometry())

	size, x, y := m.HUD().ReadGeometry(m.Banks().Active())
	assert.Equal(t, []string{"16", "00", "00"}, []string{size, x, y})
	assert.Same(t, m.Banks().Bank(0), m.Banks().Active())
	assert.Equal(t, uint64(2), m.Banks().Swaps())
}

func TestGridMachine_UnknownKeyIsNoOp(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	m := rig.machine

	before := *m.Banks().Active()
	inactive := *m.Banks().Inactive()
	swaps := m.Banks().Swaps()

	assert.False(t, rig.tap(t, KeyUnknown, false))
	assert.False(t, m.Debouncer().Pending(), "the command was consumed")
	assert.Equal(t, swaps, m.Banks().Swaps())
	assert.True(t, before.Equal(m.Banks().Active()))
	assert.True(t, inactive.Equal(m.Banks().Inactive()))
	assert.Equal(t, DefaultGeometry(), m.Geometry())
}

func TestGridMachine_ShiftedHomeIsNoOp(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	m := rig.machine

	require.True(t, rig.tap(t, KeyCursorRight, false))
	require.True(t, rig.tap(t, KeyPlus, false))
	moved := m.Geometry()
	swaps := m.Banks().Swaps()

	assert.False(t, rig.tap(t, KeyHome, true))
	assert.False(t, rig.tap(t, KeyPlus, true))
	assert.Equal(t, moved, m.Geometry())
	assert.Equal(t, swaps, m.Banks().Swaps())

	size, x, y := m.HUD().ReadGeometry(m.Banks().Active())
	assert.Equal(t, []string{"16", "01", "00"}, []string{size, x, y})
}

func TestGridMachine_ActiveBankShowsOneGeometry(t *testing.T) {
	sequence := []struct {
		key   Key
		shift bool
	}{
		{KeyCursorRight, false}, {KeyCursorDown, false}, {KeyMinus, false},
		{KeyMinus, false}, {KeyCursorDown, false}, {KeyPlus, false},
		{KeyCursorRight, true}, {KeyEqual, false}, {KeyEqual, false},
		{KeyCursorDown, true}, {KeyHome, false}, {KeyMinus, false},
	}
	for _, l := range allLayouts() {
		rig := newTestRig(t, l)
		m := rig.machine
		for i, step := range sequence {
			require.True(t, rig.tap(t, step.key, step.shift))
			g := m.Geometry()
			active := m.Banks().Active()
			assert.Equal(t, g, active.Geometry())
			assert.True(t, active.Equal(referenceBank(m, g)), "%s step %d: active bank differs from a fresh %v", l.Name(), i, g)
			assert.Same(t, active, rig.display.Bound())
		}
	}
}

func TestGridMachine_HeldKeyWalksOrigin(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	m := rig.machine

	rig.matrix.Press(KeyCursorRight, false)
	for range 46 {
		rig.clock.Advance(1)
		_, err := m.Pump()
		require.NoError(t, err)
	}
	// Press at tick 1, repeats at 21, 26, 31, 36 and 41, 46
	assert.Equal(t, 7, m.Geometry().X)
	assert.True(t, m.Banks().Active().Equal(referenceBank(m, m.Geometry())))
}

func TestGridMachine_Observers(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	var got []Geometry
	rig.machine.OnApplied(func(_ Command, g Geometry) { got = append(got, g) })

	rig.tap(t, KeyCursorDown, false)
	rig.tap(t, KeyUnknown, false)
	rig.tap(t, KeyMinus, false)
	assert.Equal(t, []Geometry{{X: 0, Y: 1, Size: 15}, {X: 0, Y: 1, Size: 14}}, got)
}

func TestGridMachine_RunUntilCancelled(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	m := rig.machine

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	rig.matrix.Press(KeyPlus, false)
	rig.clock.Advance(1)
	require.Eventually(t, func() bool { return m.Banks().Swaps() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, 16, m.Geometry().Size)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestBankManager_SwapAlternates(t *testing.T) {
	display := NewHeadlessDisplay()
	bm := NewBankManager(display)
	require.Same(t, bm.Bank(0), bm.Active())
	require.Same(t, bm.Bank(1), bm.Inactive())

	for i := 1; i <= 4; i++ {
		require.NoError(t, bm.Swap())
		assert.Equal(t, i&1, bm.Active().ID())
		assert.Same(t, bm.Active(), display.Bound())
		assert.NotSame(t, bm.Active(), bm.Inactive())
	}
	assert.Equal(t, uint64(4), bm.Swaps())
	assert.Equal(t, uint64(4), display.GetFrameCount())
}
