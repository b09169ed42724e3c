// Package panel draws a display.Frame onto a small pixel display using
// tinyfont, laid out for a 144x168 face.
package panel

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/faizmokh/fuzzyclock/internal/display"
	"github.com/faizmokh/fuzzyclock/internal/fuzzy"
)

const (
	Width  = 144
	Height = 168
)

var (
	colorBG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorFG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// Surface is a display that can also clear rectangles quickly.
type Surface interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// row describes where a time row sits and which font it uses.
type row struct {
	baseline int16
	font     tinyfont.Fonter
}

// Renderer draws frames. It keeps no per-frame state.
type Renderer struct {
	rows   [fuzzy.RowCount]row
	status tinyfont.Fonter
}

// NewRenderer uses the bundled fonts: a large bold face for the hour, a
// smaller one for the minute rows and proggy for the status bars.
func NewRenderer() *Renderer {
	return &Renderer{
		rows: [fuzzy.RowCount]row{
			{baseline: 50, font: &freesans.Bold18pt7b},
			{baseline: 92, font: &freesans.Bold12pt7b},
			{baseline: 124, font: &freesans.Bold12pt7b},
		},
		status: &proggy.TinySZ8pt7b,
	}
}

// Draw paints f and presents it.
func (r *Renderer) Draw(d Surface, f display.Frame) error {
	w, h := d.Size()
	if err := d.FillRectangle(0, 0, w, h, colorBG); err != nil {
		return err
	}

	for i, geom := range r.rows {
		for _, buf := range f.Rows[i] {
			if buf.Text == "" {
				continue
			}
			x := int16(buf.X + 0.5)
			if buf.X < 0 {
				x = int16(buf.X - 0.5)
			}
			if x <= -w || x >= w {
				continue
			}
			text := TruncateToWidth(geom.font, buf.Text, int(w))
			tinyfont.WriteLine(d, geom.font, x, geom.baseline, text, colorFG)
		}
	}

	r.drawStatus(d, w, h, f.Status)
	return d.Display()
}

func (r *Renderer) drawStatus(d Surface, w, h int16, st display.Status) {
	const topBaseline = 11
	bottomBaseline := h - 6

	tinyfont.WriteLine(d, r.status, 2, topBaseline, st.Battery+st.Charging, colorFG)

	if st.Footer != "" {
		footer := TruncateToWidth(r.status, st.Footer, int(w)-60)
		tinyfont.WriteLine(d, r.status, (w-textWidth(r.status, footer))/2, topBaseline, footer, colorFG)
	}

	if st.Link != "" {
		tinyfont.WriteLine(d, r.status, w-2-textWidth(r.status, st.Link), topBaseline, st.Link, colorFG)
	}

	if st.Period != "" {
		period := TruncateToWidth(r.status, st.Period, int(w)-4)
		tinyfont.WriteLine(d, r.status, (w-textWidth(r.status, period))/2, bottomBaseline, period, colorFG)
	}
}

// ellipsis is ASCII because the bundled 7-bit fonts have no "…" glyph.
const ellipsis = "..."

// TruncateToWidth shortens s with an ellipsis until it fits maxW pixels.
func TruncateToWidth(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	w, _ := tinyfont.LineWidth(f, s)
	if int(w) <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		w, _ = tinyfont.LineWidth(f, string(runes)+ellipsis)
		if int(w) <= maxW {
			return string(runes) + ellipsis
		}
	}
	return ""
}

func textWidth(f tinyfont.Fonter, s string) int16 {
	w, _ := tinyfont.LineWidth(f, s)
	return int16(w)
}
