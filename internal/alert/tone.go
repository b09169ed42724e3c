package alert

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	sampleRate   = 44100
	channelCount = 1
	amplitude    = 0.3 * math.MaxInt16
)

// pulse is one beep of a pattern.
type pulse struct {
	freq float64
	on   time.Duration
	off  time.Duration
}

// doublePulse is the disconnect pattern: two short beeps.
var doublePulse = []pulse{
	{freq: 880, on: 120 * time.Millisecond, off: 80 * time.Millisecond},
	{freq: 880, on: 120 * time.Millisecond},
}

// render produces signed 16-bit little-endian mono PCM for pattern.
func render(pattern []pulse) []byte {
	var total int
	for _, p := range pattern {
		total += samples(p.on) + samples(p.off)
	}

	pcm := make([]byte, 0, total*2)
	for _, p := range pattern {
		n := samples(p.on)
		fade := n / 10
		for i := 0; i < n; i++ {
			gain := 1.0
			switch {
			case fade > 0 && i < fade:
				gain = float64(i) / float64(fade)
			case fade > 0 && i >= n-fade:
				gain = float64(n-i) / float64(fade)
			}
			v := int16(amplitude * gain * math.Sin(2*math.Pi*p.freq*float64(i)/sampleRate))
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(v))
		}
		pcm = append(pcm, make([]byte, samples(p.off)*2)...)
	}
	return pcm
}

func samples(d time.Duration) int {
	return int(d.Seconds() * sampleRate)
}
