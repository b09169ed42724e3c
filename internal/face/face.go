// Package face assembles the running clock: the formatter, three line
// slots on a frame-driven scheduler, and the display coordinator.
package face

import (
	"time"

	"github.com/faizmokh/fuzzyclock/internal/alert"
	"github.com/faizmokh/fuzzyclock/internal/display"
	"github.com/faizmokh/fuzzyclock/internal/fuzzy"
	"github.com/faizmokh/fuzzyclock/internal/logger"
	"github.com/faizmokh/fuzzyclock/internal/slot"
)

// Face is not safe for concurrent use; hosts drive it from one loop.
type Face struct {
	scheduler   *slot.Scheduler
	slots       [fuzzy.RowCount]*slot.Slot
	coordinator *display.Coordinator
	log         *logger.Logger

	lastMinute time.Time
}

// New builds a face whose rows are width units wide and slide for d.
func New(formatter *fuzzy.Formatter, width float64, d time.Duration, alerter alert.Alerter, log *logger.Logger) *Face {
	sched := slot.NewScheduler()
	slots := display.NewSlots(width, d, sched)
	return &Face{
		scheduler:   sched,
		slots:       slots,
		coordinator: display.New(formatter, display.Rows(slots), alerter, log),
		log:         log,
	}
}

// Tick hands now to the coordinator once per wall-clock minute. It reports
// whether any row started moving.
func (f *Face) Tick(now time.Time) bool {
	minute := now.Truncate(time.Minute)
	if f.coordinator.State().Painted() && minute.Equal(f.lastMinute) {
		return false
	}
	f.lastMinute = minute
	return f.coordinator.Update(now) > 0
}

// Step advances running slides to now.
func (f *Face) Step(now time.Time) {
	f.scheduler.Step(now)
}

// Animating reports whether a frame loop is still needed.
func (f *Face) Animating() bool {
	return f.scheduler.Active() > 0
}

func (f *Face) Frame() display.Frame {
	return display.Snapshot(f.slots, f.coordinator)
}

func (f *Face) Coordinator() *display.Coordinator {
	return f.coordinator
}

// Close stops the scheduler and parks every slot in its settled layout.
func (f *Face) Close() {
	f.scheduler.Close()
	for _, s := range f.slots {
		s.Close()
	}
	f.log.Debug("face closed")
}
