package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/fuzzyclock/internal/clock"
	"github.com/faizmokh/fuzzyclock/internal/face"
	"github.com/faizmokh/fuzzyclock/internal/fuzzy"
	"github.com/faizmokh/fuzzyclock/internal/logger"
	"github.com/faizmokh/fuzzyclock/internal/slot"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

type countingAlerter struct {
	count int
}

func (a *countingAlerter) Alert() { a.count++ }

func newTestModel(t *testing.T, start time.Time, alerts *countingAlerter) (Model, *clock.Fake) {
	t.Helper()
	formatter := fuzzy.NewFormatter(fuzzy.English)
	var f *face.Face
	if alerts != nil {
		f = face.New(formatter, FaceWidth, 400*time.Millisecond, alerts, logger.Discard())
	} else {
		f = face.New(formatter, FaceWidth, 400*time.Millisecond, nil, logger.Discard())
	}
	t.Cleanup(f.Close)
	clk := clock.NewFake(start)
	return NewModel(Options{Face: f, Formatter: formatter, Clock: clk, FrameInterval: 50 * time.Millisecond}), clk
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// runFrames feeds frame messages until the face settles.
func runFrames(t *testing.T, m Model, clk *clock.Fake) Model {
	t.Helper()
	for i := 0; m.animating; i++ {
		if i > 100 {
			t.Fatalf("animation never settled")
		}
		m, _ = update(t, m, frameMsg(clk.Now()))
		clk.Advance(50 * time.Millisecond)
	}
	return m
}

func TestTickStartsFrameLoopAndSettles(t *testing.T) {
	start := time.Date(2026, time.October, 18, 14, 43, 0, 0, time.UTC)
	m, clk := newTestModel(t, start, nil)

	m, cmd := update(t, m, tickMsg(clk.Now()))
	if cmd == nil {
		t.Fatalf("tick returned no command")
	}
	if !m.animating {
		t.Fatalf("first tick did not start the frame loop")
	}

	m = runFrames(t, m, clk)

	view := m.View()
	for _, word := range []string{"three", "quarter", "to", "sunday 18 october"} {
		if !strings.Contains(view, word) {
			t.Fatalf("view missing %q:\n%s", word, view)
		}
	}
}

func TestUnchangedTickDoesNotAnimate(t *testing.T) {
	start := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	m, clk := newTestModel(t, start, nil)

	m, _ = update(t, m, tickMsg(clk.Now()))
	m = runFrames(t, m, clk)

	clk.Set(start.Add(time.Minute))
	m, _ = update(t, m, tickMsg(clk.Now()))
	if m.animating {
		t.Fatalf("09:01 restarted the frame loop; text is unchanged")
	}
}

func TestStatusMessagesUpdateFace(t *testing.T) {
	alerts := &countingAlerter{}
	m, clk := newTestModel(t, time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC), alerts)
	m, _ = update(t, m, tickMsg(clk.Now()))

	m, _ = update(t, m, batteryMsg(status.Battery{Percent: 64, Charging: true, Present: true}))
	m, _ = update(t, m, linkMsg(true))
	view := m.View()
	if !strings.Contains(view, "64%+") || !strings.Contains(view, status.ConnectedMarker) {
		t.Fatalf("view missing status indicators:\n%s", view)
	}

	m, _ = update(t, m, linkMsg(false))
	m, _ = update(t, m, linkMsg(false))
	if alerts.count != 1 {
		t.Fatalf("alerts = %d, want 1", alerts.count)
	}
}

func TestKeys(t *testing.T) {
	m, clk := newTestModel(t, time.Date(2026, time.October, 18, 14, 43, 0, 0, time.UTC), nil)
	m, _ = update(t, m, tickMsg(clk.Now()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if !strings.Contains(m.View(), "quarter to three") {
		t.Fatalf("spoken line missing after s")
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestPlaceRowClipsAtEdges(t *testing.T) {
	bufs := [2]slot.Buffer{{Text: "quarter", X: -3}, {Text: "ten", X: 8}}
	got := placeRow(12, bufs)
	if got != "rter    ten " {
		t.Fatalf("placeRow() = %q", got)
	}
	if runewidthOf(got) != 12 {
		t.Fatalf("placeRow() width = %d, want 12", runewidthOf(got))
	}

	parked := [2]slot.Buffer{{Text: "gone", X: 12}, {Text: "", X: 0}}
	if got := placeRow(12, parked); strings.TrimSpace(got) != "" {
		t.Fatalf("parked text leaked into row: %q", got)
	}
}

func runewidthOf(s string) int {
	return len([]rune(s))
}
