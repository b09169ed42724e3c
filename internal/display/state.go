package display

import "github.com/faizmokh/fuzzyclock/internal/fuzzy"

// State is the text currently on screen. The zero value is unpainted and
// differs from every formatted value, so the first update drives every row.
type State struct {
	Text    fuzzy.FormattedText
	painted bool
}

// Painted reports whether an update has been applied.
func (s State) Painted() bool {
	return s.painted
}

// changed reports which rows of next differ from what is on screen.
func (s State) changed(next fuzzy.FormattedText) [fuzzy.RowCount]bool {
	var out [fuzzy.RowCount]bool
	for i := range next.Rows {
		out[i] = !s.painted || s.Text.Rows[i] != next.Rows[i]
	}
	return out
}
