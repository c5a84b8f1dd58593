//go:build !headless

package main

import (
	"bytes"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// ClickPlayer plays a short click through oto every time a command lands
type ClickPlayer struct {
	ctx    *oto.Context
	pcm    []byte
	player *oto.Player // kept referenced while it plays
	mutex  sync.Mutex
}

func NewClickPlayer(sampleRate int) (*ClickPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, &GridError{Operation: "audio init", Details: "cannot open oto context", Err: err}
	}
	<-ready

	return &ClickPlayer{
		ctx: ctx,
		pcm: synthClick(sampleRate),
	}, nil
}

// Click starts a new click, cutting off one still playing
func (cp *ClickPlayer) Click() {
	cp.mutex.Lock()
	defer cp.mutex.Unlock()

	if cp.player != nil {
		_ = cp.player.Close()
	}
	cp.player = cp.ctx.NewPlayer(bytes.NewReader(cp.pcm))
	cp.player.Play()
}

func (cp *ClickPlayer) Close() {
	cp.mutex.Lock()
	defer cp.mutex.Unlock()

	if cp.player != nil {
		_ = cp.player.Close()
		cp.player = nil
	}
}
