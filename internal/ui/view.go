package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/faizmokh/fuzzyclock/internal/display"
	"github.com/faizmokh/fuzzyclock/internal/slot"
)

var (
	faceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	hourStyle    = lipgloss.NewStyle().Bold(true)
	minuteStyle  = lipgloss.NewStyle()
	statusStyle  = lipgloss.NewStyle().Faint(true)
	spokenStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("6"))
	helpBarStyle = lipgloss.NewStyle().MarginTop(1)
)

// View renders the face: a status bar, the three sliding rows and the period.
func (m Model) View() string {
	frame := m.face.Frame()

	lines := []string{statusStyle.Render(statusLine(frame.Status, FaceWidth)), ""}
	for i, bufs := range frame.Rows {
		style := minuteStyle
		if i == 0 {
			style = hourStyle
		}
		lines = append(lines, style.Render(placeRow(FaceWidth, bufs)))
	}
	lines = append(lines, "", statusStyle.Render(center(frame.Status.Period, FaceWidth)))

	var b strings.Builder
	b.WriteString(faceStyle.Render(strings.Join(lines, "\n")))
	b.WriteByte('\n')
	if m.showSpoken && m.spoken != "" {
		b.WriteString(spokenStyle.Render(m.spoken))
		b.WriteByte('\n')
	}
	b.WriteString(helpBarStyle.Render(m.help.View(m.keys)))
	b.WriteByte('\n')
	return b.String()
}

// placeRow lays both buffers of a row onto width cells at their current
// offsets. Glyphs that would cross either edge are dropped.
func placeRow(width int, bufs [2]slot.Buffer) string {
	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	for _, buf := range bufs {
		if buf.Text == "" {
			continue
		}
		col := int(math.Round(buf.X))
		if col <= -width || col >= width {
			continue
		}
		for _, r := range buf.Text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if col >= 0 && col+w <= width {
				cells[col] = string(r)
				for j := 1; j < w; j++ {
					cells[col+j] = ""
				}
			}
			col += w
		}
	}
	return strings.Join(cells, "")
}

func statusLine(st display.Status, width int) string {
	left := st.Battery + st.Charging
	right := st.Link
	room := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if room < 0 {
		room = 0
	}
	footer := runewidth.Truncate(st.Footer, room, "…")
	gap := room - runewidth.StringWidth(footer)
	pre := gap / 2
	return left + strings.Repeat(" ", pre) + footer + strings.Repeat(" ", gap-pre) + right
}

func center(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
