package fuzzy

import (
	"fmt"
	"strings"
)

// Formatter maps a TimeSample to the text of the face. It is total over
// valid hours and minutes and holds no mutable state.
type Formatter struct {
	loc Locale
}

// NewFormatter binds a formatter to a phrase table.
func NewFormatter(loc Locale) *Formatter {
	return &Formatter{loc: loc}
}

// Locale returns the phrase table in use.
func (f *Formatter) Locale() Locale {
	return f.loc
}

// Format computes the rows and status lines for s.
func (f *Formatter) Format(s TimeSample) FormattedText {
	var out FormattedText
	rows := f.rows(s)
	for i := range rows {
		out.Rows[i] = fit(rows[i], f.loc.RowWidths[i])
	}
	out.Period = fit(f.period(s), f.loc.StatusWidth)
	out.Footer = fit(f.loc.DayPeriods[dayPeriod(s.Hour)], f.loc.StatusWidth)
	return out
}

// Describe renders s as a single spoken phrase, e.g. "quarter to three".
func (f *Formatter) Describe(s TimeSample) string {
	rows := f.rows(s)
	_, b := SpokenHour(s.Hour, s.Minute)

	order := []string{rows[0], rows[1], rows[2]}
	if f.loc.MinutesFirst && b != OnTheHour {
		order = []string{rows[1], rows[2], rows[0]}
	}

	words := order[:0]
	for _, w := range order {
		if w != "" {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

func (f *Formatter) rows(s TimeSample) [RowCount]string {
	hour, b := SpokenHour(s.Hour, s.Minute)

	if b == OnTheHour {
		switch {
		case hour == 0 && f.loc.Midnight != "":
			return [RowCount]string{f.loc.Midnight}
		case hour == 12 && f.loc.Noon != "":
			return [RowCount]string{f.loc.Noon}
		}
	}

	fragments := f.loc.Minutes[b]
	return [RowCount]string{f.loc.Hours[hour%12], fragments[0], fragments[1]}
}

func (f *Formatter) period(s TimeSample) string {
	weekday := f.loc.Weekdays[int(s.Weekday)%7]
	month := ""
	if s.Month >= 1 && s.Month <= 12 {
		month = f.loc.Months[s.Month-1]
	}
	return fmt.Sprintf("%s %d %s", weekday, s.Day, month)
}

// dayPeriod picks the index into Locale.DayPeriods for a 0-23 hour.
func dayPeriod(hour int) int {
	switch {
	case hour >= 5 && hour < 12:
		return 0
	case hour >= 12 && hour < 18:
		return 1
	case hour >= 18 && hour < 22:
		return 2
	default:
		return 3
	}
}
