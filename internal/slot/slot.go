package slot

import "time"

// DefaultDuration is how long one slide takes.
const DefaultDuration = 800 * time.Millisecond

// Geometry places a row. Home is where visible text rests, Parked is where
// the hidden buffer waits. Retiring text leaves through the mirror of Parked
// across Home, so rows parked on opposite sides slide in opposite directions.
type Geometry struct {
	Home     float64
	Parked   float64
	Duration time.Duration
	Curve    Curve
}

// Exit is the offset retiring text slides to.
func (g Geometry) Exit() float64 {
	return 2*g.Home - g.Parked
}

// Buffer is one of the two text layers of a slot.
type Buffer struct {
	Text string
	X    float64
}

// Slot animates a single screen row between two alternating buffers.
//
// Re-triggering while a transition is in flight cancels the running pair and
// restarts from explicit positions. If the animator refuses an animation the
// slot settles immediately with the new text at home.
type Slot struct {
	geom Geometry
	anim Animator

	bufs [2]Buffer
	home int

	outBusy bool
	inBusy  bool
	out     Handle
	in      Handle

	gen uint64
}

// New creates a slot with buffer 0 at home and buffer 1 parked.
func New(geom Geometry, anim Animator) *Slot {
	if geom.Duration <= 0 {
		geom.Duration = DefaultDuration
	}
	if geom.Curve == nil {
		geom.Curve = EaseOut
	}
	s := &Slot{geom: geom, anim: anim}
	s.bufs[0].X = geom.Home
	s.bufs[1].X = geom.Parked
	return s
}

// Transition slides old out and next in.
func (s *Slot) Transition(old, next string) {
	s.cancel()

	s.gen++
	gen := s.gen
	cur, nxt := s.home, 1-s.home

	s.bufs[cur] = Buffer{Text: old, X: s.geom.Home}
	s.bufs[nxt] = Buffer{Text: next, X: s.geom.Parked}
	s.home = nxt

	if s.anim == nil {
		s.settle()
		return
	}

	s.outBusy = true
	out, err := s.anim.Animate(Animation{
		From:     s.geom.Home,
		To:       s.geom.Exit(),
		Duration: s.geom.Duration,
		Curve:    s.geom.Curve,
		Apply:    func(x float64) { s.move(gen, cur, x) },
		Done:     func(finished bool) { s.outgoingDone(gen, cur, finished) },
	})
	if err != nil {
		s.outBusy = false
		s.settle()
		return
	}
	if s.outBusy && s.gen == gen {
		s.out = out
	}

	s.inBusy = true
	in, err := s.anim.Animate(Animation{
		From:     s.geom.Parked,
		To:       s.geom.Home,
		Duration: s.geom.Duration,
		Curve:    s.geom.Curve,
		Apply:    func(x float64) { s.move(gen, nxt, x) },
		Done:     func(finished bool) { s.incomingDone(gen, nxt, finished) },
	})
	if err != nil {
		s.inBusy = false
		s.cancel()
		s.settle()
		return
	}
	if s.inBusy && s.gen == gen {
		s.in = in
	}
}

// Close cancels any running animations and leaves the slot settled.
func (s *Slot) Close() {
	s.cancel()
	s.settle()
}

// Text is the most recently assigned visible text.
func (s *Slot) Text() string {
	return s.bufs[s.home].Text
}

// Buffers returns a copy of both buffers.
func (s *Slot) Buffers() [2]Buffer {
	return s.bufs
}

// HomeIndex is the index of the buffer that is (or is becoming) visible.
func (s *Slot) HomeIndex() int {
	return s.home
}

// Busy reports the outgoing and incoming flags.
func (s *Slot) Busy() (outgoing, incoming bool) {
	return s.outBusy, s.inBusy
}

// Geometry returns the row placement.
func (s *Slot) Geometry() Geometry {
	return s.geom
}

// Settled is true when nothing is in flight and exactly one buffer is home
// with the other parked.
func (s *Slot) Settled() bool {
	if s.outBusy || s.inBusy || s.out != nil || s.in != nil {
		return false
	}
	return s.bufs[s.home].X == s.geom.Home && s.bufs[1-s.home].X == s.geom.Parked
}

func (s *Slot) move(gen uint64, idx int, x float64) {
	if gen != s.gen {
		return
	}
	s.bufs[idx].X = x
}

func (s *Slot) outgoingDone(gen uint64, idx int, finished bool) {
	if gen != s.gen {
		return
	}
	s.out = nil
	s.outBusy = false
	if finished {
		s.bufs[idx].X = s.geom.Parked
	}
}

func (s *Slot) incomingDone(gen uint64, idx int, finished bool) {
	if gen != s.gen {
		return
	}
	s.in = nil
	s.inBusy = false
	if finished {
		s.bufs[idx].X = s.geom.Home
	}
}

// cancel releases both handles. Cancelled completions clear the flags
// without touching positions; the caller sets those explicitly.
func (s *Slot) cancel() {
	if h := s.out; h != nil {
		s.out = nil
		h.Cancel()
	}
	if h := s.in; h != nil {
		s.in = nil
		h.Cancel()
	}
	s.outBusy = false
	s.inBusy = false
}

func (s *Slot) settle() {
	s.bufs[s.home].X = s.geom.Home
	s.bufs[1-s.home].X = s.geom.Parked
	s.outBusy = false
	s.inBusy = false
}
