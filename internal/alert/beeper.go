//go:build cgo

package alert

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/faizmokh/fuzzyclock/internal/logger"
)

// Beeper plays the disconnect pattern through the system audio device.
type Beeper struct {
	ctx *oto.Context
	pcm []byte
	log *logger.Logger
}

// NewBeeper opens the audio device.
func NewBeeper(log *logger.Logger) (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	log.Debug("audio alert ready (rate=%d)", sampleRate)
	return &Beeper{ctx: ctx, pcm: render(doublePulse), log: log}, nil
}

// Alert starts playback and returns immediately.
func (b *Beeper) Alert() {
	player := b.ctx.NewPlayer(bytes.NewReader(b.pcm))
	player.Play()
	go func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			b.log.Debug("alert player close: %v", err)
		}
	}()
}
