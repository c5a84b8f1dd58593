package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
)

// Converter renders a grid snapshot as text, one character per block of
// pixels.
type Converter struct {
	inkChar   byte
	paperChar byte
	blockW    int
	blockH    int
}

// NewConverter creates a Converter with default settings: one character per
// 2x4 pixels, '#' for ink and '.' for paper.
func NewConverter() *Converter {
	return &Converter{
		inkChar:   '#',
		paperChar: '.',
		blockW:    2,
		blockH:    4,
	}
}

// SetBlock changes the pixel block covered by one character.
func (c *Converter) SetBlock(w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("block %dx%d must be at least 1x1", w, h)
	}
	c.blockW, c.blockH = w, h
	return nil
}

// ConvertFileFromPath decodes the BMP at path and converts it.
func (c *Converter) ConvertFileFromPath(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return c.Convert(img), nil
}

// PaperColor returns the most common colour of img, taken as background.
func PaperColor(img image.Image) color.RGBA {
	counts := map[color.RGBA]int{}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			counts[rgba(img.At(x, y))]++
		}
	}
	var best color.RGBA
	bestN := -1
	for c, n := range counts {
		if n > bestN || (n == bestN && lessRGBA(c, best)) {
			best, bestN = c, n
		}
	}
	return best
}

// InkMask marks every pixel that differs from the paper colour.
func InkMask(img image.Image) [][]bool {
	paper := PaperColor(img)
	b := img.Bounds()
	mask := make([][]bool, b.Dy())
	for y := range mask {
		mask[y] = make([]bool, b.Dx())
		for x := range mask[y] {
			mask[y][x] = rgba(img.At(b.Min.X+x, b.Min.Y+y)) != paper
		}
	}
	return mask
}

// Convert renders img; a character is ink when any pixel of its block is.
func (c *Converter) Convert(img image.Image) string {
	mask := InkMask(img)
	var sb strings.Builder
	for by := 0; by < len(mask); by += c.blockH {
		for bx := 0; len(mask) > 0 && bx < len(mask[0]); bx += c.blockW {
			ch := c.paperChar
			if blockHasInk(mask, bx, by, c.blockW, c.blockH) {
				ch = c.inkChar
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// InkRuns counts the separate runs of ink pixels on row y.
func InkRuns(mask [][]bool, y int) int {
	if y < 0 || y >= len(mask) {
		return 0
	}
	runs := 0
	prev := false
	for _, ink := range mask[y] {
		if ink && !prev {
			runs++
		}
		prev = ink
	}
	return runs
}

func blockHasInk(mask [][]bool, x0, y0, w, h int) bool {
	for y := y0; y < y0+h && y < len(mask); y++ {
		for x := x0; x < x0+w && x < len(mask[y]); x++ {
			if mask[y][x] {
				return true
			}
		}
	}
	return false
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func lessRGBA(a, b color.RGBA) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}

func decodeMask(r io.Reader) ([][]bool, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return InkMask(img), nil
}

// firstInkRow returns the first row holding ink, or -1.
func firstInkRow(mask [][]bool) int {
	for y, row := range mask {
		for _, ink := range row {
			if ink {
				return y
			}
		}
	}
	return -1
}
