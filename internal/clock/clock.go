// Package clock is the time source for the face.
package clock

import "time"

// Clock provides the current time so ticks can be driven by tests.
type Clock interface {
	Now() time.Time
}

// Real uses the system clock in the local zone.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fake is a manually advanced clock.
type Fake struct {
	current time.Time
}

func NewFake(start time.Time) *Fake {
	return &Fake{current: start}
}

func (f *Fake) Now() time.Time          { return f.current }
func (f *Fake) Advance(d time.Duration) { f.current = f.current.Add(d) }
func (f *Fake) Set(t time.Time)         { f.current = t }

// UntilNextMinute is the wait from now to the next whole minute.
func UntilNextMinute(now time.Time) time.Duration {
	next := now.Truncate(time.Minute).Add(time.Minute)
	return next.Sub(now)
}
