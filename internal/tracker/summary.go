package tracker

import "time"

// Summary is the set of derived values shown to the user
type Summary struct {
	ClockedIn    bool
	Gross        Minutes
	Worked       Minutes
	Remaining    Minutes
	Overtime     Minutes
	ShiftMinutes Minutes
	BreakMinutes Minutes // breaks on the active date
	ExpectedEnd  *time.Time
}

// Summarize derives every displayed value from s at now
func Summarize(s AppState, now time.Time, policy Policy) Summary {
	shift := s.ShiftMinutes()
	gross := GrossMinutes(s.Session, now)
	worked := WorkedMinutes(gross, s.Breaks.breaks, s.Date)

	extension := s.Breaks.TotalMinutes()
	if s.Session.ClockIn != nil && policy.FixedLunchMinutes > 0 {
		worked = clamp(worked - policy.FixedLunchMinutes)
		extension += policy.FixedLunchMinutes
	}

	return Summary{
		ClockedIn:    IsClockedIn(s.Session),
		Gross:        gross,
		Worked:       worked,
		Remaining:    RemainingMinutes(worked, shift),
		Overtime:     OvertimeMinutes(worked, shift),
		ShiftMinutes: shift,
		BreakMinutes: s.Breaks.TotalMinutesForDate(s.Date),
		ExpectedEnd:  ExpectedEnd(s.Session.ClockIn, shift, extension),
	}
}
