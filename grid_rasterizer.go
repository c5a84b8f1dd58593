// grid_rasterizer.go - Checkerboard rasterisation through precomputed row templates

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
grid_rasterizer.go - Grid Rasterizer

The checkerboard only has two distinct scanlines: the even one, with cells
starting at the origin, and the odd one, shifted right by one cell. Both are
built once per draw into GRID_COLUMNS byte templates, then copied to every
scanline of the band through the plane layout. The cost of building is
O(cells), not O(pixels).

Each template byte is written on every band scanline, so a change of X needs
no erasing: the whole grid width of every band row is rewritten.
*/

package main

// GridRasterizer draws the grid into a bank
type GridRasterizer struct {
	layout PlaneLayout

	evenRow [GRID_COLUMNS]uint8
	oddRow  [GRID_COLUMNS]uint8
}

// NewGridRasterizer creates a rasterizer addressing planes through layout
func NewGridRasterizer(layout PlaneLayout) *GridRasterizer {
	return &GridRasterizer{layout: layout}
}

// Draw renders the grid described by g into bank. g must be valid.
func (r *GridRasterizer) Draw(bank *FrameBank, g Geometry) {
	cells := g.Cells()
	r.buildTemplates(g.X, g.Size, cells)

	pixels := bank.Pixels()
	y := g.Y
	for brow := range cells {
		tmpl := &r.evenRow
		if brow&1 != 0 {
			tmpl = &r.oddRow
		}
		for range g.Size {
			for col, v := range tmpl {
				pixels[r.layout.ByteOffset(col, y)] = v
			}
			y++
		}
	}
}

// buildTemplates fills the even and odd row templates
func (r *GridRasterizer) buildTemplates(x, size, cells int) {
	clear(r.evenRow[:])
	clear(r.oddRow[:])

	// Even rows hold the odd-numbered surplus cell
	evenCells := cells/2 + cells&1
	oddCells := cells / 2

	for i := range evenCells {
		fillSpan(r.evenRow[:], x+2*i*size, size)
	}
	for i := range oddCells {
		fillSpan(r.oddRow[:], x+(2*i+1)*size, size)
	}
}

// fillSpan sets n bits starting at bit x, MSB first. Spans that would run
// past the end of row are dropped whole.
func fillSpan(row []uint8, x, n int) {
	if n <= 0 || x < 0 || x+n > len(row)*8 {
		return
	}
	end := x + n // exclusive
	first, last := x>>3, (end-1)>>3

	lead := uint8(0xFF >> (x & 7))
	trail := uint8(0xFF << (7 - (end-1)&7))
	if first == last {
		row[first] |= lead & trail
		return
	}
	row[first] |= lead
	for i := first + 1; i < last; i++ {
		row[i] = 0xFF
	}
	row[last] |= trail
}
