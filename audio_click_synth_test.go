package main

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthClick_LengthAndLevel(t *testing.T) {
	pcm := synthClick(CLICK_SAMPLE_RATE)
	samples := beep.SampleRate(CLICK_SAMPLE_RATE).N(CLICK_DURATION)
	require.Len(t, pcm, samples*4)

	peak := 0.0
	for i := 0; i < len(pcm); i += 4 {
		v := math.Abs(float64(math.Float32frombits(binary.LittleEndian.Uint32(pcm[i:]))))
		peak = max(peak, v)
	}
	assert.InDelta(t, CLICK_VOLUME, peak, 0.001)
}

func TestSynthClick_FadesOut(t *testing.T) {
	pcm := synthClick(CLICK_SAMPLE_RATE)
	last := math.Float32frombits(binary.LittleEndian.Uint32(pcm[len(pcm)-4:]))
	assert.Less(t, math.Abs(float64(last)), 0.01)
}

func TestSquareOscillator_StopsAtDuration(t *testing.T) {
	osc := &squareOscillator{freq: 1000, duration: 10, rate: 8000}
	buf := make([][2]float64, 16)
	n, ok := osc.Stream(buf)
	assert.Equal(t, 10, n)
	assert.True(t, ok)

	n, ok = osc.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}
