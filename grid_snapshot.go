// grid_snapshot.go - Paletted images and BMP files of a frame bank

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
	"image/color"
	"os"

	"golang.org/x/image/bmp"
)

// BankImage converts the plane of bank to a paletted image coloured through
// its attribute plane
func BankImage(bank *FrameBank, layout PlaneLayout) *image.Paletted {
	pal := make(color.Palette, PALETTE_SIZE)
	for i, c := range Palette {
		pal[i] = color.RGBA{c[0], c[1], c[2], 0xFF}
	}

	img := image.NewPaletted(image.Rect(0, 0, PLANE_WIDTH, PLANE_HEIGHT), pal)
	attrs := bank.Attrs()
	for y := range PLANE_HEIGHT {
		for x := range PLANE_WIDTH {
			attr := attrs[(y/PLANE_CELL_HEIGHT)*PLANE_CELLS_X+x/PLANE_CELL_WIDTH]
			idx := attr & 0x0F
			if bank.Pixel(layout, x, y) {
				idx = attr >> 4
			}
			img.SetColorIndex(x, y, idx)
		}
	}
	return img
}

// SaveBankBMP writes bank to path as an 8-bit paletted BMP
func SaveBankBMP(path string, bank *FrameBank, layout PlaneLayout) error {
	f, err := os.Create(path)
	if err != nil {
		return &GridError{Operation: "snapshot", Details: path, Err: err}
	}
	if err := bmp.Encode(f, BankImage(bank, layout)); err != nil {
		f.Close()
		return &GridError{Operation: "snapshot", Details: "bmp encode", Err: err}
	}
	if err := f.Close(); err != nil {
		return &GridError{Operation: "snapshot", Details: path, Err: err}
	}
	return nil
}
