//go:build headless

package main

type ClickPlayer struct {
	pcm    []byte
	clicks int
}

func NewClickPlayer(sampleRate int) (*ClickPlayer, error) {
	return &ClickPlayer{pcm: synthClick(sampleRate)}, nil
}

func (cp *ClickPlayer) Click() {
	cp.clicks++
}

func (cp *ClickPlayer) Close() {}
