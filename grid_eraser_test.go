package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func renderFresh(r *GridRasterizer, g Geometry) *FrameBank {
	bank := NewFrameBank(0)
	r.Draw(bank, g)
	return bank
}

func TestGridEraser_SingleFieldChanges(t *testing.T) {
	for _, l := range allLayouts() {
		r := NewGridRasterizer(l)
		e := NewGridEraser(l)

		for size := GRID_SIZE_MIN; size <= GRID_SIZE_MAX; size++ {
			prev := Geometry{X: MaxX(size) / 2, Y: MaxY(size) / 2, Size: size}
			for _, c := range []Command{
				keyCmd(KeyPlus), keyCmd(KeyMinus),
				keyCmd(KeyCursorDown), shiftCmd(KeyCursorDown),
				keyCmd(KeyCursorRight), shiftCmd(KeyCursorRight),
				keyCmd(KeyHome),
			} {
				next := applied(prev, c)
				bank := renderFresh(r, prev)
				e.Erase(bank, prev, next)
				r.Draw(bank, next)
				assert.True(t, bank.Equal(renderFresh(r, next)), "%s: %v then %v", l.Name(), prev, c)
			}
		}
	}
}

func TestGridEraser_ShrinkClearsVacatedRowsBeforeDraw(t *testing.T) {
	for _, l := range allLayouts() {
		r := NewGridRasterizer(l)
		e := NewGridEraser(l)
		checked := 0

		for size := GRID_SIZE_MIN + 1; size <= GRID_SIZE_MAX; size++ {
			for _, prev := range []Geometry{
				{X: 0, Y: 0, Size: size},
				{X: MaxX(size), Y: MaxY(size), Size: size},
			} {
				next := applied(prev, keyCmd(KeyMinus))
				if next.BandEnd() >= prev.BandEnd() {
					// A smaller size can fit more cells and span further
					continue
				}
				checked++
				bank := renderFresh(r, prev)
				pixels := bank.Pixels()

				inked := false
				for y := next.BandEnd(); y < prev.BandEnd(); y++ {
					for col := range GRID_COLUMNS {
						inked = inked || pixels[l.ByteOffset(col, y)] != 0
					}
				}
				assert.True(t, inked, "%s: %v has ink below %v", l.Name(), prev, next)

				e.Erase(bank, prev, next)
				for y := next.BandEnd(); y < prev.BandEnd(); y++ {
					for col := range GRID_COLUMNS {
						if pixels[l.ByteOffset(col, y)] != 0 {
							t.Fatalf("%s: %v to %v left row %d column %d set", l.Name(), prev, next, y, col)
						}
					}
				}
			}
		}
		assert.NotZero(t, checked, l.Name())
	}
}

func TestGridEraser_CompoundChanges(t *testing.T) {
	l := NewHiresLayout()
	r := NewGridRasterizer(l)
	e := NewGridEraser(l)

	geometries := []Geometry{
		{X: 0, Y: 0, Size: 1},
		{X: 40, Y: 80, Size: 1},
		{X: 20, Y: 33, Size: 7},
		{X: 0, Y: 80, Size: 15},
		{X: 48, Y: 0, Size: 16},
		{X: 0, Y: 10, Size: 41},
		{X: 40, Y: 80, Size: 60},
	}
	for _, prev := range geometries {
		for _, next := range geometries {
			bank := renderFresh(r, prev)
			e.Erase(bank, prev, next)
			r.Draw(bank, next)
			assert.True(t, bank.Equal(renderFresh(r, next)), "%v to %v", prev, next)
		}
	}
}

func TestGridEraser_LeavesHUDColumns(t *testing.T) {
	l := NewHiresLayout()
	e := NewGridEraser(l)
	bank := NewFrameBank(0)
	for i := range bank.Pixels() {
		bank.Pixels()[i] = 0xFF
	}

	e.Erase(bank, Geometry{X: 0, Y: 0, Size: 1}, Geometry{X: 0, Y: 80, Size: 1})
	for y := range PLANE_HEIGHT {
		assert.True(t, bank.Pixel(l, GRID_WIDTH, y), "column past the grid cleared at y=%d", y)
	}
	assert.False(t, bank.Pixel(l, 0, 0))
	assert.True(t, bank.Pixel(l, 0, 80))
}
