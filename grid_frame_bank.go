// grid_frame_bank.go - Pixel and attribute plane pairs used for double buffering

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
grid_frame_bank.go - Frame Banks

A bank is one complete hires screen: the 8000 byte pixel plane and the 1000
byte attribute plane that colours it. Two banks exist for the lifetime of the
process. They are mutated in place and never reallocated.

Each bank remembers the geometry last rendered into it. The eraser diffs the
new geometry against that value, which may be two commands old since the
banks alternate.
*/

package main

// FrameBank holds one pixel plane and its attribute plane
type FrameBank struct {
	id     int
	pixels [PLANE_BYTES]uint8
	attrs  [ATTR_BYTES]uint8

	// Last geometry rendered into this bank
	geometry Geometry
}

// NewFrameBank creates a zeroed bank
func NewFrameBank(id int) *FrameBank {
	return &FrameBank{id: id}
}

func (b *FrameBank) ID() int { return b.id }

// Geometry returns the geometry last rendered into the bank
func (b *FrameBank) Geometry() Geometry { return b.geometry }

func (b *FrameBank) setGeometry(g Geometry) { b.geometry = g }

// Pixels exposes the pixel plane
func (b *FrameBank) Pixels() []uint8 { return b.pixels[:] }

// Attrs exposes the attribute plane
func (b *FrameBank) Attrs() []uint8 { return b.attrs[:] }

// Clear zeroes the pixel plane
func (b *FrameBank) Clear() {
	clear(b.pixels[:])
}

// SetColor fills the attribute plane with one ink/paper pair
func (b *FrameBank) SetColor(ink, paper uint8) {
	attr := (ink&0x0F)<<4 | paper&0x0F
	for i := range b.attrs {
		b.attrs[i] = attr
	}
}

// CloneFrom copies both planes and the rendered geometry from src
func (b *FrameBank) CloneFrom(src *FrameBank) {
	b.pixels = src.pixels
	b.attrs = src.attrs
	b.geometry = src.geometry
}

// Pixel reports whether the pixel at x,y is set
func (b *FrameBank) Pixel(layout PlaneLayout, x, y int) bool {
	v := b.pixels[layout.ByteOffset(x>>3, y)]
	return v&(0x80>>(x&7)) != 0
}

// Equal reports whether both planes of b and o are identical
func (b *FrameBank) Equal(o *FrameBank) bool {
	return b.pixels == o.pixels && b.attrs == o.attrs
}

// RenderFrame converts the bank to RGBA pixels in dst, which must hold
// FRAME_WIDTH*FRAME_HEIGHT*4 bytes. Set pixels take the cell's ink, clear
// pixels its paper, and the border surrounds the plane.
func (b *FrameBank) RenderFrame(dst []byte, layout PlaneLayout, border uint8) {
	if len(dst) < FRAME_WIDTH*FRAME_HEIGHT*BYTES_PER_PIXEL {
		return
	}

	var colors [PALETTE_SIZE]uint32
	for i, c := range Palette {
		colors[i] = uint32(c[0]) | uint32(c[1])<<8 | uint32(c[2])<<16 | 0xFF000000
	}
	borderColor := colors[border&0x0F]

	for fy := range FRAME_HEIGHT {
		row := dst[fy*FRAME_WIDTH*BYTES_PER_PIXEL:]
		y := fy - BORDER_HEIGHT
		for fx := range FRAME_WIDTH {
			x := fx - BORDER_WIDTH
			c := borderColor
			if x >= 0 && x < PLANE_WIDTH && y >= 0 && y < PLANE_HEIGHT {
				attr := b.attrs[(y/PLANE_CELL_HEIGHT)*PLANE_CELLS_X+x/PLANE_CELL_WIDTH]
				if b.Pixel(layout, x, y) {
					c = colors[attr>>4]
				} else {
					c = colors[attr&0x0F]
				}
			}
			i := fx * BYTES_PER_PIXEL
			row[i] = byte(c)
			row[i+1] = byte(c >> 8)
			row[i+2] = byte(c >> 16)
			row[i+3] = byte(c >> 24)
		}
	}
}
