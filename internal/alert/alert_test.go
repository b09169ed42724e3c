package alert

import (
	"bytes"
	"testing"
	"time"

	"github.com/faizmokh/fuzzyclock/internal/logger"
)

func TestBellWritesBellCharacter(t *testing.T) {
	var buf bytes.Buffer
	b := &Bell{W: &buf}
	b.Alert()
	b.Alert()
	if got := buf.String(); got != "\a\a" {
		t.Fatalf("bell output = %q, want two bells", got)
	}
}

func TestNewDisabledIsNop(t *testing.T) {
	if _, ok := New(false, nil, logger.Discard()).(Nop); !ok {
		t.Fatalf("New(false) did not return Nop")
	}
}

func TestRenderLength(t *testing.T) {
	pcm := render(doublePulse)
	want := (samples(120*time.Millisecond)*2 + samples(80*time.Millisecond)) * 2
	if len(pcm) != want {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), want)
	}

	gap := pcm[samples(120*time.Millisecond)*2 : (samples(120*time.Millisecond)+samples(80*time.Millisecond))*2]
	for i, b := range gap {
		if b != 0 {
			t.Fatalf("gap byte %d = %d, want silence", i, b)
		}
	}
}
