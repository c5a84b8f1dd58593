// grid_geometry.go - Grid geometry and the command transition table

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

// Geometry describes the grid: origin of the top-left cell and cell size in
// pixels. Values are replaced wholesale, never mutated in place.
type Geometry struct {
	X    int
	Y    int
	Size int
}

// DefaultGeometry is the startup and home position
func DefaultGeometry() Geometry {
	return Geometry{X: 0, Y: 0, Size: GRID_SIZE_DEFAULT}
}

// GridCells returns the number of cells per axis for a cell size
func GridCells(size int) int {
	return GRID_EXTENT / size
}

// GridSpan returns the pixels per axis covered by the cells of a size
func GridSpan(size int) int {
	return GridCells(size) * size
}

// MaxX is the largest origin X keeping the grid inside its byte-columns
func MaxX(size int) int {
	return GRID_WIDTH - GridSpan(size)
}

// MaxY is the largest origin Y keeping the grid on the plane
func MaxY(size int) int {
	return PLANE_HEIGHT - GridSpan(size)
}

// Cells returns the number of cells per axis
func (g Geometry) Cells() int {
	return GridCells(g.Size)
}

// BandEnd is the first scanline below the grid
func (g Geometry) BandEnd() int {
	return g.Y + GridSpan(g.Size)
}

// Valid reports whether g satisfies the size and bounds invariants
func (g Geometry) Valid() bool {
	if g.Size < GRID_SIZE_MIN || g.Size > GRID_SIZE_MAX {
		return false
	}
	return g.X >= 0 && g.Y >= 0 && g.X <= MaxX(g.Size) && g.Y <= MaxY(g.Size)
}

// clampOrigin pulls the origin back inside the bounds of the current size.
// A size change can enlarge the span, so the origin is re-checked after it.
func (g Geometry) clampOrigin() Geometry {
	g.X = min(max(g.X, 0), MaxX(g.Size))
	g.Y = min(max(g.Y, 0), MaxY(g.Size))
	return g
}

// Apply returns the geometry that results from cmd. The second result is
// false for commands with no transition; the caller must then skip the
// redraw pipeline. Shift only qualifies the cursor keys, shifted home or
// size keys have no transition.
func (g Geometry) Apply(cmd Command) (Geometry, bool) {
	if cmd.Shift && !cmd.Key.Directional() {
		return g, false
	}
	switch cmd.Key {
	case KeyHome:
		return DefaultGeometry(), true
	case KeyPlus, KeyEqual:
		g.Size = min(g.Size+1, GRID_SIZE_MAX)
		return g.clampOrigin(), true
	case KeyMinus:
		g.Size = max(g.Size-1, GRID_SIZE_MIN)
		return g.clampOrigin(), true
	case KeyCursorDown:
		if cmd.Shift {
			g.Y = max(g.Y-1, 0)
		} else {
			g.Y = min(g.Y+1, MaxY(g.Size))
		}
		return g, true
	case KeyCursorRight:
		if cmd.Shift {
			g.X = max(g.X-1, 0)
		} else {
			g.X = min(g.X+1, MaxX(g.Size))
		}
		return g, true
	}
	return g, false
}

func (g Geometry) String() string {
	return fmt.Sprintf("size=%d origin=%d,%d", g.Size, g.X, g.Y)
}
