// grid_constants.go - Hires plane, grid and input timing constants for gridcal

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
grid_constants.go - Calibration Grid Constants

This file defines the dimensions of the emulated hires display, the limits of
the checkerboard grid and the timing of the key repeat logic.

Display Specifications:
  - Resolution: 320x200 pixels (40x25 character cells of 8x8 pixels)
  - Pixel plane: 8000 bytes, one bit per pixel, MSB is the leftmost pixel
  - Attribute plane: 1000 bytes, one byte per cell
  - Border: 32 pixels left/right, 36 pixels top/bottom → 384x272 frame

Attribute Byte Format:
  Bits 7-4: INK (colour of set pixels, 0-15)
  Bits 3-0: PAPER (colour of clear pixels, 0-15)

Grid Region:
  The grid may touch the leftmost 20 byte-columns (160 pixels) of every
  scanline. It always spans at most 120 pixels per axis so it can be panned.
*/

package main

import "time"

// =============================================================================
// Hires Plane Dimensions
// =============================================================================

const (
	PLANE_WIDTH  = 320
	PLANE_HEIGHT = 200

	PLANE_CELL_WIDTH  = 8
	PLANE_CELL_HEIGHT = 8
	PLANE_CELLS_X     = PLANE_WIDTH / PLANE_CELL_WIDTH   // 40
	PLANE_CELLS_Y     = PLANE_HEIGHT / PLANE_CELL_HEIGHT // 25

	// Bytes per scanline
	PLANE_STRIDE = PLANE_WIDTH / 8 // 40

	// Pixel plane: 8000 bytes
	PLANE_BYTES = PLANE_STRIDE * PLANE_HEIGHT

	// Attribute plane: 1000 bytes
	ATTR_BYTES = PLANE_CELLS_X * PLANE_CELLS_Y
)

// =============================================================================
// Output Frame (plane plus border)
// =============================================================================

const (
	BORDER_WIDTH  = 32
	BORDER_HEIGHT = 36

	FRAME_WIDTH  = PLANE_WIDTH + 2*BORDER_WIDTH   // 384
	FRAME_HEIGHT = PLANE_HEIGHT + 2*BORDER_HEIGHT // 272

	BYTES_PER_PIXEL = 4
)

// =============================================================================
// Grid Limits
// =============================================================================

const (
	// Byte-columns the grid templates cover
	GRID_COLUMNS = 20
	GRID_WIDTH   = GRID_COLUMNS * 8 // 160

	// Pixels per axis the grid aims to fill, leaving room to pan
	GRID_EXTENT = (GRID_COLUMNS - 5) * 8 // 120

	GRID_SIZE_MIN     = 1
	GRID_SIZE_MAX     = 60
	GRID_SIZE_DEFAULT = 15
)

// =============================================================================
// HUD Placement (character cell columns, pixel rows)
// =============================================================================

const (
	HUD_LINE_HEIGHT = 16 // two character rows per text line

	HUD_SIZE_LABEL_COL   = 22 // "block size ="
	HUD_SIZE_COL         = 35
	HUD_ORIGIN_LABEL_COL = 25 // "origin =   ,"
	HUD_X_COL            = 34
	HUD_Y_COL            = 37

	HUD_SIZE_LINE   = 0
	HUD_ORIGIN_LINE = 1
)

// =============================================================================
// Input Timing
// =============================================================================

const (
	// Ticks between a fresh key press and its first synthetic repeat
	REPEAT_INITIAL_DELAY = 20

	// Ticks between steady-state repeats
	REPEAT_INTERVAL = 5

	// Refresh rate of the emulated PAL display
	DEFAULT_REFRESH_RATE = 50

	// Terminal backends only see key presses. A second event of a key within
	// TERMINAL_HOLD_WINDOW of its press starts a hold, which lasts while
	// further events keep arriving within TERMINAL_REPEAT_GAP.
	TERMINAL_HOLD_WINDOW = 600 * time.Millisecond
	TERMINAL_REPEAT_GAP  = 120 * time.Millisecond
)

// =============================================================================
// Colours (C64 palette indices)
// =============================================================================

const (
	COLOR_BLACK = iota
	COLOR_WHITE
	COLOR_RED
	COLOR_CYAN
	COLOR_PURPLE
	COLOR_GREEN
	COLOR_BLUE
	COLOR_YELLOW
	COLOR_ORANGE
	COLOR_BROWN
	COLOR_LIGHT_RED
	COLOR_DARK_GREY
	COLOR_GREY
	COLOR_LIGHT_GREEN
	COLOR_LIGHT_BLUE
	COLOR_LIGHT_GREY

	PALETTE_SIZE = 16
)

// Palette holds the RGB values of the 16 hires colours
var Palette = [PALETTE_SIZE][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xFF, 0xFF, 0xFF}, // white
	{0x68, 0x37, 0x2B}, // red
	{0x70, 0xA4, 0xB2}, // cyan
	{0x6F, 0x3D, 0x86}, // purple
	{0x58, 0x8D, 0x43}, // green
	{0x35, 0x28, 0x79}, // blue
	{0xB8, 0xC7, 0x6F}, // yellow
	{0x6F, 0x4F, 0x25}, // orange
	{0x43, 0x39, 0x00}, // brown
	{0x9A, 0x67, 0x59}, // light red
	{0x44, 0x44, 0x44}, // dark grey
	{0x6C, 0x6C, 0x6C}, // grey
	{0x9A, 0xD2, 0x84}, // light green
	{0x6C, 0x5E, 0xB5}, // light blue
	{0x95, 0x95, 0x95}, // light grey
}
