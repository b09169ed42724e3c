// Package alert fires the audible notice when the wireless link drops.
package alert

import (
	"io"
	"sync"

	"github.com/faizmokh/fuzzyclock/internal/logger"
)

// Alerter signals the user. Alert must not block the caller's event loop.
type Alerter interface {
	Alert()
}

// Nop ignores alerts.
type Nop struct{}

func (Nop) Alert() {}

// Bell writes the terminal bell character.
type Bell struct {
	mu sync.Mutex
	W  io.Writer
}

func (b *Bell) Alert() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.W != nil {
		b.W.Write([]byte{'\a'})
	}
}

// New picks the best alerter available: the audio beeper, falling back to
// the terminal bell on w when no audio device can be opened.
func New(enabled bool, w io.Writer, log *logger.Logger) Alerter {
	if !enabled {
		return Nop{}
	}
	beeper, err := NewBeeper(log)
	if err != nil {
		log.Warn("audio alert unavailable, using terminal bell: %v", err)
		return &Bell{W: w}
	}
	return beeper
}
