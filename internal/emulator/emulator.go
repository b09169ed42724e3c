// Package emulator shows the panel rendering in a desktop window.
package emulator

import (
	"github.com/faizmokh/fuzzyclock/internal/clock"
	"github.com/faizmokh/fuzzyclock/internal/face"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

// Scale is the window zoom factor.
const Scale = 2

// Options wires the window to a running face.
type Options struct {
	Title   string
	TPS     int
	Face    *face.Face
	Clock   clock.Clock
	Battery <-chan status.Battery
	Link    <-chan bool
}

// drainStatus applies every pending status report without blocking.
func drainStatus(f *face.Face, battery <-chan status.Battery, link <-chan bool) {
	for {
		select {
		case b := <-battery:
			f.Coordinator().SetBattery(b)
		case up := <-link:
			f.Coordinator().SetWireless(up)
		default:
			return
		}
	}
}
