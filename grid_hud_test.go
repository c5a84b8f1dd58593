package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHUD_Glyphs(t *testing.T) {
	h := NewHUD(NewHiresLayout())
	assert.Equal(t, hudGlyph{}, h.glyphs[' '])

	seen := map[hudGlyph]byte{}
	for ch := byte('0'); ch <= '9'; ch++ {
		g := h.glyphs[ch]
		assert.NotEqual(t, hudGlyph{}, g, "digit %q is blank", ch)
		_, dup := seen[g]
		assert.False(t, dup, "digit %q repeats an earlier glyph", ch)
		seen[g] = ch
	}
}

func TestHUD_WriteAndReadBack(t *testing.T) {
	for _, l := range allLayouts() {
		h := NewHUD(l)
		bank := NewFrameBank(0)
		h.DrawLabels(bank)

		assert.Equal(t, "block size =", h.ReadField(bank, HUD_SIZE_LABEL_COL, HUD_SIZE_LINE, 13), l.Name())
		assert.Equal(t, "origin =", h.ReadField(bank, HUD_ORIGIN_LABEL_COL, HUD_ORIGIN_LINE, 8), l.Name())
		assert.Equal(t, byte(','), h.ReadChar(bank, HUD_Y_COL-1, HUD_ORIGIN_LINE))
	}
}

func TestHUD_NumberFields(t *testing.T) {
	h := NewHUD(NewHiresLayout())
	bank := NewFrameBank(0)

	h.DrawGeometry(bank, Geometry{X: 7, Y: 5, Size: 16})
	size, x, y := h.ReadGeometry(bank)
	assert.Equal(t, []string{"16", "07", "05"}, []string{size, x, y})

	h.DrawGeometry(bank, Geometry{X: 40, Y: 118, Size: 41})
	size, x, y = h.ReadGeometry(bank)
	assert.Equal(t, []string{"41", "40", "118"}, []string{size, x, y})

	// A shorter value blanks the leftover hundreds digit
	h.DrawGeometry(bank, Geometry{X: 0, Y: 9, Size: 41})
	_, _, y = h.ReadGeometry(bank)
	assert.Equal(t, "09", y)
	assert.Equal(t, byte(' '), h.ReadChar(bank, HUD_Y_COL, HUD_ORIGIN_LINE))
}

func TestHUD_OutsideGridColumns(t *testing.T) {
	assert.Greater(t, HUD_SIZE_LABEL_COL, GRID_COLUMNS-1)
	assert.Greater(t, HUD_ORIGIN_LABEL_COL, GRID_COLUMNS-1)
	assert.LessOrEqual(t, HUD_Y_COL+3, PLANE_CELLS_X)
	assert.LessOrEqual(t, HUD_SIZE_COL+2, PLANE_CELLS_X)
}
