package panel

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/faizmokh/fuzzyclock/internal/display"
	"github.com/faizmokh/fuzzyclock/internal/slot"
)

func inkIn(img *image.RGBA, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == colorFG {
				n++
			}
		}
	}
	return n
}

func TestDrawPlacesHomeTextAndSkipsParked(t *testing.T) {
	c := NewCanvas(Width, Height)
	var f display.Frame
	f.Rows[0] = [2]slot.Buffer{{Text: "three", X: 0}, {Text: "two", X: 144}}
	f.Rows[1] = [2]slot.Buffer{{Text: "quarter", X: 0}, {Text: "", X: -144}}

	if err := NewRenderer().Draw(c, f); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if inkIn(c.Image(), image.Rect(0, 10, Width, 68)) == 0 {
		t.Fatalf("hour row has no ink")
	}
	if inkIn(c.Image(), image.Rect(0, 68, Width, 100)) == 0 {
		t.Fatalf("minute row has no ink")
	}
	if inkIn(c.Image(), image.Rect(0, 100, Width, 140)) != 0 {
		t.Fatalf("empty third row has ink")
	}
}

func TestDrawBlankFrameIsBackground(t *testing.T) {
	c := NewCanvas(Width, Height)
	var f display.Frame
	for i := range f.Rows {
		f.Rows[i] = [2]slot.Buffer{{Text: "gone", X: 144}, {Text: "away", X: -144}}
	}
	if err := NewRenderer().Draw(c, f); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if n := inkIn(c.Image(), c.Image().Bounds()); n != 0 {
		t.Fatalf("blank frame drew %d pixels", n)
	}
	if got := c.Image().RGBAAt(5, 5); got != colorBG {
		t.Fatalf("background pixel = %v, want %v", got, colorBG)
	}
}

func TestDrawStatusBars(t *testing.T) {
	c := NewCanvas(Width, Height)
	f := display.Frame{Status: display.Status{Battery: "87%", Charging: "+", Link: "*", Period: "sunday 18 october"}}
	if err := NewRenderer().Draw(c, f); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if inkIn(c.Image(), image.Rect(0, 0, 40, 14)) == 0 {
		t.Fatalf("battery indicator has no ink")
	}
	if inkIn(c.Image(), image.Rect(Width-20, 0, Width, 14)) == 0 {
		t.Fatalf("link indicator has no ink")
	}
	if inkIn(c.Image(), image.Rect(0, Height-18, Width, Height)) == 0 {
		t.Fatalf("period line has no ink")
	}
}

func TestTruncateToWidth(t *testing.T) {
	font := &proggy.TinySZ8pt7b
	long := strings.Repeat("wide ", 20)

	got := TruncateToWidth(font, long, 60)
	if !strings.HasSuffix(got, ellipsis) {
		t.Fatalf("TruncateToWidth() = %q, want ellipsis suffix", got)
	}
	if w, _ := tinyfont.LineWidth(font, got); w > 60 {
		t.Fatalf("truncated width = %d, want <= 60", w)
	}
	if short := TruncateToWidth(font, "ok", 60); short != "ok" {
		t.Fatalf("TruncateToWidth(short) = %q, want unchanged", short)
	}
	if TruncateToWidth(font, "x", 0) != "" {
		t.Fatalf("TruncateToWidth with no room should be empty")
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetPixel(-1, 2, colorFG)
	c.SetPixel(9, 9, colorFG)
	c.FillRectangle(2, 2, 10, 10, colorFG)
	if n := inkIn(c.Image(), c.Image().Bounds()); n != 4 {
		t.Fatalf("ink = %d, want 4 (clipped 2x2 fill)", n)
	}
	if got := c.Image().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Fatalf("untouched pixel = %v, want zero", got)
	}
}
