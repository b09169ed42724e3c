package fuzzy

import "time"

// TimeSample is the slice of wall-clock time the formatter needs.
type TimeSample struct {
	Hour    int
	Minute  int
	Weekday time.Weekday
	Day     int
	Month   time.Month
}

// SampleOf captures t in its own location.
func SampleOf(t time.Time) TimeSample {
	return TimeSample{
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Weekday: t.Weekday(),
		Day:     t.Day(),
		Month:   t.Month(),
	}
}

// RowCount is the number of animated time rows on the face.
const RowCount = 3

// FormattedText is everything the face shows for one minute.
// Rows[0] carries the hour phrase, Rows[1] and Rows[2] the minute idiom.
type FormattedText struct {
	Rows   [RowCount]string
	Period string
	Footer string
}
