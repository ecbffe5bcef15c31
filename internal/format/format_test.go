package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/shiftr/internal/tracker"
)

func TestMinutes(t *testing.T) {
	assert.Equal(t, "0h 0m", Minutes(0))
	assert.Equal(t, "5h 30m", Minutes(330))
	assert.Equal(t, "9h 0m", Minutes(540))
	assert.Equal(t, "12h 5m", Minutes(tracker.Minutes(725)))
}

func TestInstant(t *testing.T) {
	assert.Equal(t, Placeholder, Instant(nil))
	end := time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "06:30:00 PM", Instant(&end))
}

func TestTimeOfDay(t *testing.T) {
	assert.Equal(t, "12:00:00 PM", TimeOfDay("12:00:00"))
	assert.Equal(t, "09:05:00 AM", TimeOfDay("9:05"))
	assert.Equal(t, "bogus", TimeOfDay("bogus"))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "30 mins", Duration(30))
}
