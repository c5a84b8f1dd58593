package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHiresLayout_Offsets(t *testing.T) {
	l := NewHiresLayout()
	assert.Equal(t, 0, l.ByteOffset(0, 0))
	assert.Equal(t, 7, l.ByteOffset(0, 7))
	assert.Equal(t, 320, l.ByteOffset(0, 8))
	assert.Equal(t, 8, l.ByteOffset(1, 0))
	assert.Equal(t, 320*24+7+8*39, l.ByteOffset(39, 199))
}

func TestPlaneLayouts_CoverPlaneOnce(t *testing.T) {
	for _, l := range allLayouts() {
		seen := make([]bool, PLANE_BYTES)
		for y := range PLANE_HEIGHT {
			for col := range PLANE_STRIDE {
				off := l.ByteOffset(col, y)
				require.True(t, off >= 0 && off < PLANE_BYTES, "%s: offset %d", l.Name(), off)
				require.False(t, seen[off], "%s: offset %d reused", l.Name(), off)
				seen[off] = true
			}
		}
	}
}

func TestNewPlaneLayout(t *testing.T) {
	l, err := NewPlaneLayout("linear")
	require.NoError(t, err)
	assert.Equal(t, LAYOUT_LINEAR, l.Name())

	l, err = NewPlaneLayout("")
	require.NoError(t, err)
	assert.Equal(t, LAYOUT_HIRES, l.Name())

	_, err = NewPlaneLayout("vga")
	var gerr *GridError
	assert.ErrorAs(t, err, &gerr)
}

func TestFillSpan(t *testing.T) {
	row := make([]uint8, 3)
	fillSpan(row, 3, 10)
	assert.Equal(t, []uint8{0x1F, 0xF8, 0x00}, row)

	row = make([]uint8, 3)
	fillSpan(row, 2, 3)
	assert.Equal(t, []uint8{0x38, 0x00, 0x00}, row)

	row = make([]uint8, 3)
	fillSpan(row, 0, 24)
	assert.Equal(t, []uint8{0xFF, 0xFF, 0xFF}, row)

	row = make([]uint8, 3)
	fillSpan(row, 20, 5)
	assert.Equal(t, []uint8{0, 0, 0}, row, "span past the row end is dropped")
}

func TestGridRasterizer_MatchesCheckerboard(t *testing.T) {
	for _, l := range allLayouts() {
		r := NewGridRasterizer(l)
		bank := NewFrameBank(0)
		for size := GRID_SIZE_MIN; size <= GRID_SIZE_MAX; size++ {
			g := Geometry{X: min(7, MaxX(size)), Y: min(9, MaxY(size)), Size: size}
			bank.Clear()
			r.Draw(bank, g)
			for y := range PLANE_HEIGHT {
				for x := range GRID_WIDTH {
					if bank.Pixel(l, x, y) != checkerAt(g, x, y) {
						t.Fatalf("%s %v: pixel %d,%d = %v", l.Name(), g, x, y, bank.Pixel(l, x, y))
					}
				}
			}
		}
	}
}

func TestGridRasterizer_CellCounts(t *testing.T) {
	l := NewHiresLayout()
	r := NewGridRasterizer(l)
	bank := NewFrameBank(0)

	for size := GRID_SIZE_MIN; size <= GRID_SIZE_MAX; size++ {
		g := Geometry{X: MaxX(size), Y: MaxY(size), Size: size}
		bank.Clear()
		r.Draw(bank, g)

		cells := GridCells(size)
		assert.Equal(t, (cells+1)/2, inkRunsOnRow(bank, l, g.Y), "size %d even row", size)
		if cells > 1 {
			assert.Equal(t, cells/2, inkRunsOnRow(bank, l, g.Y+size), "size %d odd row", size)
		}
		assert.Equal(t, (cells+1)/2, inkRunsOnColumn(bank, l, g.X), "size %d column", size)
	}
}

func TestGridRasterizer_StaysInRegion(t *testing.T) {
	l := NewHiresLayout()
	r := NewGridRasterizer(l)
	bank := NewFrameBank(0)
	g := Geometry{X: MaxX(1), Y: MaxY(1), Size: 1}
	r.Draw(bank, g)

	for y := range PLANE_HEIGHT {
		for x := GRID_WIDTH; x < PLANE_WIDTH; x++ {
			require.False(t, bank.Pixel(l, x, y), "pixel %d,%d outside the grid columns", x, y)
		}
	}
	for y := range g.Y {
		for x := range GRID_WIDTH {
			require.False(t, bank.Pixel(l, x, y), "pixel %d,%d above the band", x, y)
		}
	}
}

func inkRunsOnRow(bank *FrameBank, l PlaneLayout, y int) int {
	runs, prev := 0, false
	for x := range GRID_WIDTH {
		ink := bank.Pixel(l, x, y)
		if ink && !prev {
			runs++
		}
		prev = ink
	}
	return runs
}

func inkRunsOnColumn(bank *FrameBank, l PlaneLayout, x int) int {
	runs, prev := 0, false
	for y := range PLANE_HEIGHT {
		ink := bank.Pixel(l, x, y)
		if ink && !prev {
			runs++
		}
		prev = ink
	}
	return runs
}
