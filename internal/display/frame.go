package display

import (
	"github.com/faizmokh/fuzzyclock/internal/fuzzy"
	"github.com/faizmokh/fuzzyclock/internal/slot"
)

// Frame is a read-only view of everything a renderer draws.
type Frame struct {
	Rows   [fuzzy.RowCount][2]slot.Buffer
	Status Status
}

// Snapshot captures the slots and status for one frame.
func Snapshot(slots [fuzzy.RowCount]*slot.Slot, c *Coordinator) Frame {
	var f Frame
	for i, s := range slots {
		if s != nil {
			f.Rows[i] = s.Buffers()
		}
	}
	f.Status = c.Status()
	return f
}
