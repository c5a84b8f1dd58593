package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestBankImage_MatchesPlane(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	bank := rig.machine.Banks().Active()
	img := BankImage(bank, rig.machine.Layout())

	assert.Equal(t, image.Rect(0, 0, PLANE_WIDTH, PLANE_HEIGHT), img.Bounds())
	assert.Equal(t, uint8(COLOR_BLACK), img.ColorIndexAt(0, 0), "grid origin cell is ink")
	assert.Equal(t, uint8(COLOR_WHITE), img.ColorIndexAt(15, 0), "second cell is paper")
	assert.Equal(t, uint8(COLOR_WHITE), img.ColorIndexAt(319, 199))
}

func TestSaveBankBMP_RoundTrip(t *testing.T) {
	rig := newTestRig(t, LinearLayout{})
	rig.tap(t, KeyMinus, false)
	bank := rig.machine.Banks().Active()

	path := filepath.Join(t.TempDir(), "grid.bmp")
	require.NoError(t, SaveBankBMP(path, bank, rig.machine.Layout()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)

	want := BankImage(bank, rig.machine.Layout())
	for y := 0; y < PLANE_HEIGHT; y += 3 {
		for x := 0; x < PLANE_WIDTH; x += 3 {
			wr, wg, wb, _ := want.At(x, y).RGBA()
			gr, gg, gb, _ := img.At(x, y).RGBA()
			require.Equal(t, [3]uint32{wr, wg, wb}, [3]uint32{gr, gg, gb}, "pixel %d,%d", x, y)
		}
	}
}

func TestSaveBankBMP_BadPath(t *testing.T) {
	rig := newTestRig(t, NewHiresLayout())
	err := SaveBankBMP(filepath.Join(t.TempDir(), "missing", "grid.bmp"), rig.machine.Banks().Active(), rig.machine.Layout())
	var gerr *GridError
	assert.ErrorAs(t, err, &gerr)
}
