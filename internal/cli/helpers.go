package cli

import (
	"fmt"
	"time"
)

func resolveDate(dateFlag string, now time.Time) (time.Time, error) {
	if dateFlag == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

func resolveTime(date, now time.Time, timeFlag string) (time.Time, error) {
	if timeFlag == "" {
		return time.Date(date.Year(), date.Month(), date.Day(), now.Hour(), now.Minute(), 0, 0, date.Location()), nil
	}

	parsed, err := time.ParseInLocation("15:04", timeFlag, date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// resolveMoment combines --date and --time, each defaulting to now.
func resolveMoment(dateFlag, timeFlag string, now time.Time) (time.Time, error) {
	date, err := resolveDate(dateFlag, now)
	if err != nil {
		return time.Time{}, err
	}
	return resolveTime(date, now, timeFlag)
}
