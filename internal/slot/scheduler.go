package slot

import (
	"time"
)

// Animation moves a single value from From to To over Duration.
// Apply receives every intermediate value. Done is called exactly once:
// with true after the final frame, with false when the animation is cancelled.
type Animation struct {
	From     float64
	To       float64
	Duration time.Duration
	Curve    Curve
	Apply    func(x float64)
	Done     func(finished bool)
}

// Handle is an outstanding animation. Cancel stops it and delivers
// Done(false) before returning; cancelling a finished handle is a no-op.
type Handle interface {
	Cancel()
}

// Animator starts animations. Hosts provide one; Scheduler is the default.
type Animator interface {
	Animate(a Animation) (Handle, error)
}

// Scheduler is a frame-driven Animator. It never spawns goroutines: the host
// calls Step from its event loop, so Apply and Done run on the caller's thread.
type Scheduler struct {
	active []*running
	closed bool
}

type running struct {
	s       *Scheduler
	a       Animation
	start   time.Time
	started bool
	done    bool
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Animate registers a. The clock for a starts on the next Step.
func (s *Scheduler) Animate(a Animation) (Handle, error) {
	if s.closed {
		return nil, ErrSchedulerClosed
	}
	if a.Curve == nil {
		a.Curve = Linear
	}
	r := &running{s: s, a: a}
	s.active = append(s.active, r)
	return r, nil
}

// Step advances every running animation to now and completes the ones
// whose duration has elapsed.
func (s *Scheduler) Step(now time.Time) {
	pending := make([]*running, len(s.active))
	copy(pending, s.active)

	for _, r := range pending {
		if r.done {
			continue
		}
		if !r.started {
			r.start = now
			r.started = true
		}

		p := 1.0
		if r.a.Duration > 0 {
			p = float64(now.Sub(r.start)) / float64(r.a.Duration)
		}
		if p > 1 {
			p = 1
		}
		if p < 0 {
			p = 0
		}

		if r.a.Apply != nil {
			r.a.Apply(r.a.From + (r.a.To-r.a.From)*r.a.Curve(p))
		}
		if p >= 1 {
			r.finish(true)
		}
	}
}

// Active reports the number of outstanding animations.
func (s *Scheduler) Active() int {
	return len(s.active)
}

// Close cancels everything in flight and rejects further animations.
func (s *Scheduler) Close() {
	s.closed = true
	for len(s.active) > 0 {
		s.active[0].Cancel()
	}
}

func (r *running) Cancel() {
	if r.done {
		return
	}
	r.finish(false)
}

func (r *running) finish(finished bool) {
	r.done = true
	r.s.remove(r)
	if r.a.Done != nil {
		r.a.Done(finished)
	}
}

func (s *Scheduler) remove(r *running) {
	for i, cur := range s.active {
		if cur == r {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}
