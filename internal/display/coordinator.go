// Package display diffs formatted text against what is on screen and
// dispatches row transitions.
package display

import (
	"time"

	"github.com/faizmokh/fuzzyclock/internal/alert"
	"github.com/faizmokh/fuzzyclock/internal/fuzzy"
	"github.com/faizmokh/fuzzyclock/internal/logger"
	"github.com/faizmokh/fuzzyclock/internal/slot"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

// Row is the part of a line slot the coordinator drives.
type Row interface {
	Transition(old, next string)
}

// Coordinator owns the display state, three rows and the status fields.
// All methods must be called from the host's event loop.
type Coordinator struct {
	formatter *fuzzy.Formatter
	rows      [fuzzy.RowCount]Row
	alert     alert.Alerter
	log       *logger.Logger

	state State

	battery       status.Battery
	linkKnown     bool
	linkConnected bool
}

// New wires a coordinator. A nil alerter disables alerts.
func New(formatter *fuzzy.Formatter, rows [fuzzy.RowCount]Row, alerter alert.Alerter, log *logger.Logger) *Coordinator {
	if alerter == nil {
		alerter = alert.Nop{}
	}
	return &Coordinator{
		formatter: formatter,
		rows:      rows,
		alert:     alerter,
		log:       log,
	}
}

// NewSlots builds the three line slots for a face width on anim.
func NewSlots(width float64, d time.Duration, anim slot.Animator) [fuzzy.RowCount]*slot.Slot {
	var slots [fuzzy.RowCount]*slot.Slot
	for i, g := range RowGeometry(width, d) {
		slots[i] = slot.New(g, anim)
	}
	return slots
}

// Rows adapts slots to the Row interface.
func Rows(slots [fuzzy.RowCount]*slot.Slot) [fuzzy.RowCount]Row {
	var rows [fuzzy.RowCount]Row
	for i, s := range slots {
		rows[i] = s
	}
	return rows
}

// Update formats t, transitions the rows that changed and records the new
// text as displayed. It returns how many rows were transitioned.
func (c *Coordinator) Update(t time.Time) int {
	next := c.formatter.Format(fuzzy.SampleOf(t))
	changed := c.state.changed(next)

	n := 0
	for i, row := range c.rows {
		if !changed[i] {
			continue
		}
		n++
		if row != nil {
			row.Transition(c.state.Text.Rows[i], next.Rows[i])
		}
	}

	if n > 0 {
		c.log.Debug("tick %s: %d row(s) changed %q", t.Format("15:04"), n, next.Rows)
	}

	c.state = State{Text: next, painted: true}
	return n
}

// SetBattery replaces the battery indicator.
func (c *Coordinator) SetBattery(b status.Battery) {
	if b != c.battery {
		c.log.Debug("battery %s%s", b.Text(), b.Marker())
	}
	c.battery = b
}

// SetWireless replaces the link indicator and alerts once per drop. The
// first report only establishes the state.
func (c *Coordinator) SetWireless(connected bool) {
	dropped := c.linkKnown && c.linkConnected && !connected
	if !c.linkKnown || connected != c.linkConnected {
		c.log.Info("wireless link connected=%t", connected)
	}
	c.linkKnown = true
	c.linkConnected = connected
	if dropped {
		c.alert.Alert()
	}
}

// State returns the text on screen.
func (c *Coordinator) State() State {
	return c.state
}

// Status is the rendered status bar.
type Status struct {
	Battery  string
	Charging string
	Link     string
	Period   string
	Footer   string
}

// Status returns the current status strings.
func (c *Coordinator) Status() Status {
	return Status{
		Battery:  c.battery.Text(),
		Charging: c.battery.Marker(),
		Link:     status.LinkMarker(c.linkKnown && c.linkConnected),
		Period:   c.state.Text.Period,
		Footer:   c.state.Text.Footer,
	}
}
