package slot

import (
	"errors"
	"testing"
	"time"
)

var epoch = time.Date(2026, time.October, 18, 14, 0, 0, 0, time.UTC)

func rightRow() Geometry {
	return Geometry{Home: 0, Parked: 144, Duration: 800 * time.Millisecond}
}

// run steps the scheduler from start in 100ms frames until nothing is active.
func run(t *testing.T, s *Scheduler, start time.Time) time.Time {
	t.Helper()
	now := start
	for i := 0; s.Active() > 0; i++ {
		if i > 100 {
			t.Fatalf("scheduler never drained, %d animations active", s.Active())
		}
		s.Step(now)
		now = now.Add(100 * time.Millisecond)
	}
	return now
}

func TestNewSlotStartsSettled(t *testing.T) {
	s := New(rightRow(), NewScheduler())
	if !s.Settled() {
		t.Fatalf("new slot not settled: %+v", s.Buffers())
	}
	if s.Geometry().Duration != 800*time.Millisecond || s.Geometry().Curve == nil {
		t.Fatalf("geometry defaults not applied: %+v", s.Geometry())
	}
}

func TestTransitionSlidesBothBuffers(t *testing.T) {
	sched := NewScheduler()
	s := New(rightRow(), sched)

	s.Transition("two", "three")

	if out, in := s.Busy(); !out || !in {
		t.Fatalf("Busy() = %v, %v; want both busy", out, in)
	}
	if sched.Active() != 2 {
		t.Fatalf("Active() = %d, want 2", sched.Active())
	}
	if s.Text() != "three" {
		t.Fatalf("Text() = %q, want three", s.Text())
	}

	sched.Step(epoch)
	sched.Step(epoch.Add(400 * time.Millisecond))

	bufs := s.Buffers()
	incoming := bufs[s.HomeIndex()]
	outgoing := bufs[1-s.HomeIndex()]
	if !(incoming.X > 0 && incoming.X < 144) {
		t.Fatalf("incoming X mid-flight = %v, want between 0 and 144", incoming.X)
	}
	if !(outgoing.X < 0 && outgoing.X > -144) {
		t.Fatalf("outgoing X mid-flight = %v, want between -144 and 0", outgoing.X)
	}
	if outgoing.Text != "two" || incoming.Text != "three" {
		t.Fatalf("buffer texts = %q / %q, want two / three", outgoing.Text, incoming.Text)
	}

	sched.Step(epoch.Add(800 * time.Millisecond))

	if !s.Settled() {
		t.Fatalf("slot not settled after duration: %+v", s.Buffers())
	}
	if sched.Active() != 0 {
		t.Fatalf("Active() = %d after completion, want 0", sched.Active())
	}
}

func TestParkedLeftRowSlidesRight(t *testing.T) {
	sched := NewScheduler()
	s := New(Geometry{Home: 0, Parked: -144}, sched)

	s.Transition("", "quarter")
	sched.Step(epoch)
	sched.Step(epoch.Add(200 * time.Millisecond))

	bufs := s.Buffers()
	if out := bufs[1-s.HomeIndex()].X; out <= 0 {
		t.Fatalf("outgoing X = %v, want moving right", out)
	}
	if in := bufs[s.HomeIndex()].X; in >= 0 {
		t.Fatalf("incoming X = %v, want arriving from the left", in)
	}

	run(t, sched, epoch.Add(300*time.Millisecond))
	if got := s.Buffers()[1-s.HomeIndex()].X; got != -144 {
		t.Fatalf("retired buffer X = %v, want parked at -144", got)
	}
}

func TestRetriggerMidFlightRestarts(t *testing.T) {
	sched := NewScheduler()
	s := New(rightRow(), sched)

	s.Transition("one", "two")
	sched.Step(epoch)
	sched.Step(epoch.Add(300 * time.Millisecond))

	s.Transition("two", "three")

	if sched.Active() != 2 {
		t.Fatalf("Active() = %d after restart, want 2 (old handles released)", sched.Active())
	}
	if s.Text() != "three" {
		t.Fatalf("Text() = %q, want three", s.Text())
	}
	bufs := s.Buffers()
	if bufs[s.HomeIndex()].X != 144 || bufs[1-s.HomeIndex()].X != 0 {
		t.Fatalf("restart positions = %+v, want incoming parked and outgoing home", bufs)
	}

	run(t, sched, epoch.Add(400*time.Millisecond))

	if !s.Settled() {
		t.Fatalf("slot not settled after restart: %+v", s.Buffers())
	}
	final := s.Buffers()
	if final[s.HomeIndex()].Text != "three" || final[1-s.HomeIndex()].Text != "two" {
		t.Fatalf("final texts = %+v, want three home and two parked", final)
	}
}

func TestRapidRetriggersNeverLeaveBothHome(t *testing.T) {
	sched := NewScheduler()
	s := New(rightRow(), sched)
	now := epoch

	words := []string{"a", "b", "c", "d", "e", "f"}
	prev := ""
	for i, w := range words {
		s.Transition(prev, w)
		prev = w
		for j := 0; j <= i%3; j++ {
			sched.Step(now)
			now = now.Add(150 * time.Millisecond)
		}
	}
	run(t, sched, now)

	if !s.Settled() {
		t.Fatalf("slot not settled: %+v", s.Buffers())
	}
	if s.Text() != "f" {
		t.Fatalf("Text() = %q, want f", s.Text())
	}
}

type failingAnimator struct {
	failOn int
	calls  int
	inner  *Scheduler
}

func (f *failingAnimator) Animate(a Animation) (Handle, error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, errors.New("no animation memory")
	}
	return f.inner.Animate(a)
}

func TestAnimatorFailureFailsStatic(t *testing.T) {
	for _, failOn := range []int{1, 2} {
		inner := NewScheduler()
		s := New(rightRow(), &failingAnimator{failOn: failOn, inner: inner})

		s.Transition("four", "five")

		if !s.Settled() {
			t.Fatalf("failOn=%d: slot not settled: %+v", failOn, s.Buffers())
		}
		if s.Text() != "five" {
			t.Fatalf("failOn=%d: Text() = %q, want five", failOn, s.Text())
		}
		if inner.Active() != 0 {
			t.Fatalf("failOn=%d: %d animations leaked", failOn, inner.Active())
		}
	}
}

func TestClosedSchedulerFailsStatic(t *testing.T) {
	sched := NewScheduler()
	s := New(rightRow(), sched)
	s.Transition("", "six")
	sched.Close()

	if sched.Active() != 0 {
		t.Fatalf("Active() = %d after Close, want 0", sched.Active())
	}
	if _, err := sched.Animate(Animation{}); !errors.Is(err, ErrSchedulerClosed) {
		t.Fatalf("Animate after Close error = %v, want ErrSchedulerClosed", err)
	}

	s.Transition("six", "seven")
	if !s.Settled() || s.Text() != "seven" {
		t.Fatalf("slot after closed scheduler = %+v, want settled on seven", s.Buffers())
	}
}

type instantAnimator struct{}

type noopHandle struct{}

func (noopHandle) Cancel() {}

func (instantAnimator) Animate(a Animation) (Handle, error) {
	a.Apply(a.To)
	a.Done(true)
	return noopHandle{}, nil
}

func TestSynchronousCompletionDoesNotRetainHandles(t *testing.T) {
	s := New(rightRow(), instantAnimator{})
	s.Transition("x", "y")
	if !s.Settled() {
		t.Fatalf("slot not settled after instant animations: %+v", s.Buffers())
	}
}

func TestCloseSettlesInFlightSlot(t *testing.T) {
	sched := NewScheduler()
	s := New(rightRow(), sched)
	s.Transition("one", "two")
	sched.Step(epoch)
	sched.Step(epoch.Add(100 * time.Millisecond))

	s.Close()

	if !s.Settled() {
		t.Fatalf("slot not settled after Close: %+v", s.Buffers())
	}
	if sched.Active() != 0 {
		t.Fatalf("Active() = %d after slot Close, want 0", sched.Active())
	}
}

func TestEaseOutEndpoints(t *testing.T) {
	if EaseOut(0) != 0 || EaseOut(1) != 1 {
		t.Fatalf("EaseOut endpoints = %v, %v", EaseOut(0), EaseOut(1))
	}
	if EaseOut(0.5) <= 0.5 {
		t.Fatalf("EaseOut(0.5) = %v, want ahead of linear", EaseOut(0.5))
	}
}
