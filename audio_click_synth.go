// audio_click_synth.go - Key click waveform synthesis

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
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	CLICK_SAMPLE_RATE = 44100
	CLICK_FREQUENCY   = 1800.0
	CLICK_DURATION    = 12 * time.Millisecond
	CLICK_RELEASE     = 8 * time.Millisecond
	CLICK_VOLUME      = 0.35
)

// squareOscillator generates a fixed length square wave
type squareOscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func (o *squareOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *squareOscillator) Err() error { return nil }

// releaseEnvelope fades the tail of a stream linearly to silence
type releaseEnvelope struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (e *releaseEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		remaining := e.total - e.position
		if remaining < e.release && e.release > 0 {
			vol := float64(remaining) / float64(e.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		e.position++
	}
	return n, ok
}

func (e *releaseEnvelope) Err() error { return e.streamer.Err() }

// clickStreamer builds the click as a beep stream
func clickStreamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(CLICK_DURATION)
	osc := &squareOscillator{freq: CLICK_FREQUENCY, duration: total, rate: rate}
	env := &releaseEnvelope{streamer: osc, total: total, release: rate.N(CLICK_RELEASE)}
	return &effects.Volume{Streamer: env, Base: 2, Volume: math.Log2(CLICK_VOLUME)}
}

// synthClick renders the click as mono float32 little-endian PCM
func synthClick(sampleRate int) []byte {
	rate := beep.SampleRate(sampleRate)
	stream := beep.Take(rate.N(CLICK_DURATION), clickStreamer(rate))

	var pcm []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for _, s := range buf[:n] {
			pcm = binary.LittleEndian.AppendUint32(pcm, math.Float32bits(float32(s[0])))
		}
		if !ok {
			break
		}
	}
	return pcm
}
