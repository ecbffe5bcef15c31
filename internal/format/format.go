package format

import (
	"fmt"
	"time"

	"github.com/balkashynov/shiftr/internal/tracker"
)

// Placeholder is shown for values that do not exist yet
const Placeholder = "---"

const clock12 = "03:04:05 PM"

// Minutes renders a minute count as "5h 30m"
func Minutes(m tracker.Minutes) string {
	h, min := m.Hours()
	return fmt.Sprintf("%dh %dm", h, min)
}

// Instant renders t as a 12-hour wall clock time, or the placeholder if nil
func Instant(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.Format(clock12)
}

// TimeOfDay renders a stored HH:MM:SS value as 12-hour time. Unparseable
// values are returned unchanged.
func TimeOfDay(s string) string {
	d, err := tracker.ParseTimeOfDay(s)
	if err != nil {
		return s
	}
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Add(d).Format(clock12)
}

// Duration renders a break length the way it is exported
func Duration(minutes int) string {
	return fmt.Sprintf("%d mins", minutes)
}
