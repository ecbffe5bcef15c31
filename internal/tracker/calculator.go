package tracker

import (
	"math"
	"time"

	"github.com/balkashynov/shiftr/internal/models"
)

// Minutes is the only unit derived times are expressed in
type Minutes int

// Hours splits m into whole hours and the leftover minutes
func (m Minutes) Hours() (int, int) {
	return int(m) / 60, int(m) % 60
}

// Policy holds optional calculation rules that vary between users
type Policy struct {
	// FixedLunchMinutes is deducted from worked time and added to the
	// expected end once the user has clocked in. Zero disables it.
	FixedLunchMinutes Minutes
}

// GrossMinutes returns elapsed whole minutes from clock-in to clock-out, or
// to now while still clocked in. Never negative.
func GrossMinutes(session models.WorkSession, now time.Time) Minutes {
	if session.ClockIn == nil {
		return 0
	}
	end := now
	if session.ClockOut != nil {
		end = *session.ClockOut
	}
	return clamp(Minutes(end.Sub(*session.ClockIn) / time.Minute))
}

// WorkedMinutes subtracts the breaks recorded on date from gross
func WorkedMinutes(gross Minutes, breaks []models.BreakInterval, date string) Minutes {
	return clamp(gross - breakMinutesOn(breaks, date))
}

// RemainingMinutes is the effective time still owed on the shift
func RemainingMinutes(worked, shift Minutes) Minutes {
	return clamp(shift - worked)
}

// OvertimeMinutes is the effective time worked beyond the shift
func OvertimeMinutes(worked, shift Minutes) Minutes {
	return clamp(worked - shift)
}

// ExpectedEnd projects the clock-out instant. Breaks push the end out because
// the shift target counts effective time only.
func ExpectedEnd(clockIn *time.Time, shift, totalBreak Minutes) *time.Time {
	if clockIn == nil {
		return nil
	}
	end := clockIn.Add(time.Duration(shift+totalBreak) * time.Minute)
	return &end
}

// IsClockedIn reports whether a session is open
func IsClockedIn(session models.WorkSession) bool {
	return session.ClockIn != nil && session.ClockOut == nil
}

// ShiftMinutes converts the configured shift length, rounding down to a
// whole minute.
func ShiftMinutes(hours float64) Minutes {
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0
	}
	return Minutes(math.Floor(hours * 60))
}

// ToggleClock clocks in when no session is open (starting a fresh one and
// discarding any previous clock-out) and clocks out otherwise.
func ToggleClock(session models.WorkSession, now time.Time) models.WorkSession {
	t := now
	if IsClockedIn(session) {
		return models.WorkSession{ClockIn: session.ClockIn, ClockOut: &t}
	}
	return models.WorkSession{ClockIn: &t}
}

func breakMinutesOn(breaks []models.BreakInterval, date string) Minutes {
	var total Minutes
	for _, b := range breaks {
		if b.Date == date {
			total += Minutes(b.DurationMinutes)
		}
	}
	return total
}

func breakMinutes(breaks []models.BreakInterval) Minutes {
	var total Minutes
	for _, b := range breaks {
		total += Minutes(b.DurationMinutes)
	}
	return total
}

func clamp(m Minutes) Minutes {
	if m < 0 {
		return 0
	}
	return m
}
