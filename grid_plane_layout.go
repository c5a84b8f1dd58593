// grid_plane_layout.go - Pixel plane addressing for the hires display

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

import "fmt"

// PlaneLayout maps a byte column and scanline to a byte offset in the pixel
// plane. Rasterisation only ever addresses the plane through a layout.
type PlaneLayout interface {
	Name() string
	ByteOffset(col, y int) int
}

// Layout names accepted by NewPlaneLayout
const (
	LAYOUT_HIRES  = "hires"
	LAYOUT_LINEAR = "linear"
)

// HiresLayout is the row-interleaved hires layout: the plane is a sequence of
// 8x8 character cells stored cell by cell, so consecutive scanlines of a cell
// are one byte apart and neighbouring columns are eight bytes apart.
type HiresLayout struct {
	// Pre-computed row start addresses, indexed by Y (0-199)
	rowStartAddr [PLANE_HEIGHT]uint16
}

// NewHiresLayout builds the scanline offset table
func NewHiresLayout() *HiresLayout {
	l := &HiresLayout{}
	for y := range PLANE_HEIGHT {
		l.rowStartAddr[y] = uint16(PLANE_STRIDE*8*(y>>3) + (y & 7))
	}
	return l
}

func (l *HiresLayout) Name() string { return LAYOUT_HIRES }

func (l *HiresLayout) ByteOffset(col, y int) int {
	return int(l.rowStartAddr[y]) + col*PLANE_CELL_HEIGHT
}

// LinearLayout stores scanlines back to back
type LinearLayout struct{}

func (LinearLayout) Name() string { return LAYOUT_LINEAR }

func (LinearLayout) ByteOffset(col, y int) int {
	return y*PLANE_STRIDE + col
}

// NewPlaneLayout returns the layout registered under name
func NewPlaneLayout(name string) (PlaneLayout, error) {
	switch name {
	case LAYOUT_HIRES, "":
		return NewHiresLayout(), nil
	case LAYOUT_LINEAR:
		return LinearLayout{}, nil
	}
	return nil, &GridError{
		Operation: "layout selection",
		Details:   fmt.Sprintf("unknown plane layout %q", name),
	}
}
