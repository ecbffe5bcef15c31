package tracker

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDayLayout is the canonical stored form of break and clock times
const TimeOfDayLayout = "15:04:05"

var timeOfDayLayouts = []string{TimeOfDayLayout, "15:04"}

// ParseTimeOfDay parses HH:MM:SS or HH:MM (24h) and returns the offset from
// midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (use HH:MM or HH:MM:SS)", ErrInvalidTime, s)
}

// NormalizeTimeOfDay rewrites a parseable time of day as HH:MM:SS
func NormalizeTimeOfDay(s string) (string, error) {
	d, err := ParseTimeOfDay(s)
	if err != nil {
		return "", err
	}
	return formatOffset(d), nil
}

func splitOffset(d time.Duration) (h, m, sec int) {
	return int(d / time.Hour), int(d % time.Hour / time.Minute), int(d % time.Minute / time.Second)
}

func formatOffset(d time.Duration) string {
	h, m, sec := splitOffset(d)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// OnDate combines a calendar date (YYYY-MM-DD) and a time of day into an
// instant in loc.
func OnDate(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	offset, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	h, m, sec := splitOffset(offset)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, sec, 0, loc), nil
}
