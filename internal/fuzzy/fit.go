package fuzzy

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// fit truncates s to width terminal cells, ending in an ellipsis when cut.
// A non-positive width means unbounded.
func fit(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// Width reports the display width of s in terminal cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
