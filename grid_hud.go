// grid_hud.go - Fixed position size/origin readout blitted from a bitmap font

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

package main

import (
	"image"
	"strings"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// HUD glyphs are 13 scanlines tall, one byte wide
const HUD_GLYPH_ROWS = 13

type hudGlyph [HUD_GLYPH_ROWS]uint8

// HUD writes the geometry readout into a bank
type HUD struct {
	layout PlaneLayout
	glyphs [128]hudGlyph
}

// NewHUD builds the glyph table from the 7x13 basic font
func NewHUD(layout PlaneLayout) *HUD {
	h := &HUD{layout: layout}
	face := basicfont.Face7x13
	dot := fixed.P(0, face.Ascent)
	for ch := rune(' '); ch < 127; ch++ {
		dr, mask, maskp, _, ok := face.Glyph(dot, ch)
		if !ok {
			continue
		}
		h.glyphs[ch] = rasterGlyph(dr, mask, maskp)
	}
	return h
}

// rasterGlyph packs a glyph mask into bytes, one pixel of left padding
func rasterGlyph(dr image.Rectangle, mask image.Image, maskp image.Point) hudGlyph {
	var g hudGlyph
	for dy := 0; dy < dr.Dy() && dy < HUD_GLYPH_ROWS; dy++ {
		var bits uint8
		for dx := 0; dx < dr.Dx() && dx < 7; dx++ {
			_, _, _, a := mask.At(maskp.X+dx, maskp.Y+dy).RGBA()
			if a >= 0x8000 {
				bits |= 0x40 >> dx
			}
		}
		g[dy] = bits
	}
	return g
}

// WriteChar blits one character into the cell at col on the given text line
func (h *HUD) WriteChar(bank *FrameBank, col, line int, ch byte) {
	if col < 0 || col >= PLANE_CELLS_X || ch >= 128 {
		return
	}
	pixels := bank.Pixels()
	y := line * HUD_LINE_HEIGHT
	for r, bits := range h.glyphs[ch] {
		if y+r >= PLANE_HEIGHT {
			return
		}
		pixels[h.layout.ByteOffset(col, y+r)] = bits
	}
}

// WriteString blits s starting at col
func (h *HUD) WriteString(bank *FrameBank, col, line int, s string) {
	for i := 0; i < len(s); i++ {
		h.WriteChar(bank, col+i, line, s[i])
	}
}

// WriteNumber writes n right aligned in a field of width cells. The two
// lowest digits are always shown, higher digits only when non-zero.
func (h *HUD) WriteNumber(bank *FrameBank, col, line, width, n int) {
	for i := width - 1; i >= 0; i-- {
		ch := byte('0' + n%10)
		if n == 0 && i < width-2 {
			ch = ' '
		}
		h.WriteChar(bank, col+i, line, ch)
		n /= 10
	}
}

// DrawLabels writes the static captions
func (h *HUD) DrawLabels(bank *FrameBank) {
	h.WriteString(bank, HUD_SIZE_LABEL_COL, HUD_SIZE_LINE, "block size = ")
	h.WriteString(bank, HUD_ORIGIN_LABEL_COL, HUD_ORIGIN_LINE, "origin =   ,")
}

// DrawGeometry writes the size and origin values of g
func (h *HUD) DrawGeometry(bank *FrameBank, g Geometry) {
	h.WriteNumber(bank, HUD_SIZE_COL, HUD_SIZE_LINE, 2, g.Size)
	h.WriteNumber(bank, HUD_X_COL, HUD_ORIGIN_LINE, 2, g.X)
	h.WriteNumber(bank, HUD_Y_COL, HUD_ORIGIN_LINE, 3, g.Y)
}

// ReadChar decodes the character blitted at col, 0 if no glyph matches
func (h *HUD) ReadChar(bank *FrameBank, col, line int) byte {
	var got hudGlyph
	pixels := bank.Pixels()
	y := line * HUD_LINE_HEIGHT
	for r := range got {
		got[r] = pixels[h.layout.ByteOffset(col, y+r)]
	}
	for ch := byte(' '); ch < 127; ch++ {
		if h.glyphs[ch] == got {
			return ch
		}
	}
	return 0
}

// ReadField decodes width cells starting at col, trimmed of blanks
func (h *HUD) ReadField(bank *FrameBank, col, line, width int) string {
	var sb strings.Builder
	for i := range width {
		if ch := h.ReadChar(bank, col+i, line); ch != 0 {
			sb.WriteByte(ch)
		}
	}
	return strings.TrimSpace(sb.String())
}

// ReadGeometry returns the size, x and y fields as displayed
func (h *HUD) ReadGeometry(bank *FrameBank) (size, x, y string) {
	return h.ReadField(bank, HUD_SIZE_COL, HUD_SIZE_LINE, 2),
		h.ReadField(bank, HUD_X_COL, HUD_ORIGIN_LINE, 2),
		h.ReadField(bank, HUD_Y_COL, HUD_ORIGIN_LINE, 3)
}
