package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/fuzzyclock/internal/clock"
	"github.com/faizmokh/fuzzyclock/internal/face"
	"github.com/faizmokh/fuzzyclock/internal/fuzzy"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

// FaceWidth is the width of the clock face in terminal cells. Rows slide
// this far when they leave or enter.
const FaceWidth = 24

// Model owns Bubble Tea state for the clock face.
type Model struct {
	face      *face.Face
	formatter *fuzzy.Formatter
	clock     clock.Clock
	frame     time.Duration

	battery <-chan status.Battery
	link    <-chan bool

	keys KeyMap
	help help.Model

	animating  bool
	showSpoken bool
	spoken     string
}

type tickMsg time.Time

type frameMsg time.Time

type batteryMsg status.Battery

type linkMsg bool

// Options configures a Model. Nil channels disable the matching indicator
// updates.
type Options struct {
	Face          *face.Face
	Formatter     *fuzzy.Formatter
	Clock         clock.Clock
	FrameInterval time.Duration
	Battery       <-chan status.Battery
	Link          <-chan bool
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(opts Options) Model {
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	frame := opts.FrameInterval
	if frame <= 0 {
		frame = time.Second / 30
	}
	return Model{
		face:      opts.Face,
		formatter: opts.Formatter,
		clock:     clk,
		frame:     frame,
		battery:   opts.Battery,
		link:      opts.Link,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

// Init paints the current minute and starts listening for status changes.
func (m Model) Init() tea.Cmd {
	clk := m.clock
	return tea.Batch(
		func() tea.Msg { return tickMsg(clk.Now()) },
		waitBattery(m.battery),
		waitLink(m.link),
	)
}

// Update routes ticks, frames, status reports and keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m.handleTick(time.Time(msg))
	case frameMsg:
		return m.handleFrame(time.Time(msg))
	case batteryMsg:
		m.face.Coordinator().SetBattery(status.Battery(msg))
		return m, waitBattery(m.battery)
	case linkMsg:
		m.face.Coordinator().SetWireless(bool(msg))
		return m, waitLink(m.link)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Spoken):
		m.showSpoken = !m.showSpoken
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	moved := m.face.Tick(now)
	if m.formatter != nil {
		m.spoken = m.formatter.Describe(fuzzy.SampleOf(now))
	}

	cmds := []tea.Cmd{m.tickCmd(now)}
	if moved && !m.animating {
		m.animating = true
		cmds = append(cmds, m.frameCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.face.Step(now)
	if !m.face.Animating() {
		m.animating = false
		return m, nil
	}
	return m, m.frameCmd()
}

func (m Model) tickCmd(now time.Time) tea.Cmd {
	clk := m.clock
	return tea.Tick(clock.UntilNextMinute(now), func(time.Time) tea.Msg {
		return tickMsg(clk.Now())
	})
}

func (m Model) frameCmd() tea.Cmd {
	clk := m.clock
	return tea.Tick(m.frame, func(time.Time) tea.Msg {
		return frameMsg(clk.Now())
	})
}

func waitBattery(ch <-chan status.Battery) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		b, ok := <-ch
		if !ok {
			return nil
		}
		return batteryMsg(b)
	}
}

func waitLink(ch <-chan bool) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		up, ok := <-ch
		if !ok {
			return nil
		}
		return linkMsg(up)
	}
}
