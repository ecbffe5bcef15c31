package tracker

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/balkashynov/shiftr/internal/models"
)

// AppState is everything the tracker knows about the active day. It is a
// value: every operation returns the next state and leaves the receiver as
// it was.
type AppState struct {
	Session          models.WorkSession
	ShiftLengthHours float64
	Breaks           Registry
	DarkMode         bool

	// Date is the active calendar day (YYYY-MM-DD). New breaks and manual
	// clock edits are placed on it.
	Date string

	// Edit is non-nil while a break is being edited
	Edit *EditState
}

// NewAppState builds the initial state from whatever was loaded at startup.
// A nil saved state, or one with an unusable shift length, falls back to
// defaultShiftHours. Invalid saved breaks are dropped.
func NewAppState(saved *models.SavedState, today string, defaultShiftHours float64) AppState {
	if defaultShiftHours <= 0 {
		defaultShiftHours = models.DefaultShiftLengthHours
	}
	if saved == nil {
		d := models.DefaultSavedState()
		d.ShiftLengthHours = defaultShiftHours
		saved = &d
	}

	shift := saved.ShiftLengthHours
	if !validShiftLength(shift) {
		shift = defaultShiftHours
	}
	kept, _ := SanitizeBreaks(saved.Breaks)

	return AppState{
		Session:          models.WorkSession{ClockIn: saved.ClockIn, ClockOut: saved.ClockOut},
		ShiftLengthHours: shift,
		Breaks:           NewRegistry(kept),
		DarkMode:         saved.DarkMode,
		Date:             today,
	}
}

// Snapshot returns the persisted form of s
func (s AppState) Snapshot() models.SavedState {
	return models.SavedState{
		ClockIn:          s.Session.ClockIn,
		ClockOut:         s.Session.ClockOut,
		ShiftLengthHours: s.ShiftLengthHours,
		Breaks:           s.Breaks.All(),
		DarkMode:         s.DarkMode,
	}
}

// ShiftMinutes is the configured shift length in whole minutes
func (s AppState) ShiftMinutes() Minutes {
	return ShiftMinutes(s.ShiftLengthHours)
}

// ClockedIn reports whether the session is open
func (s AppState) ClockedIn() bool {
	return IsClockedIn(s.Session)
}

func (s AppState) ToggleClock(now time.Time) AppState {
	s.Session = ToggleClock(s.Session, now)
	return s
}

// SetClockIn overrides the clock-in time with a time of day on s.Date
func (s AppState) SetClockIn(timeOfDay string, loc *time.Location) (AppState, error) {
	t, err := OnDate(s.Date, timeOfDay, loc)
	if err != nil {
		return s, err
	}
	s.Session.ClockIn = &t
	return s, nil
}

// SetClockOut overrides the clock-out time with a time of day on s.Date.
// A clock-out earlier than clock-in is stored as given; derived values
// clamp to zero.
func (s AppState) SetClockOut(timeOfDay string, loc *time.Location) (AppState, error) {
	t, err := OnDate(s.Date, timeOfDay, loc)
	if err != nil {
		return s, err
	}
	s.Session.ClockOut = &t
	return s, nil
}

// ClearClockIn removes the clock-in time. Without one nothing is derived
// until the next clock-in.
func (s AppState) ClearClockIn() AppState {
	s.Session.ClockIn = nil
	return s
}

// ClearClockOut reopens a completed session
func (s AppState) ClearClockOut() AppState {
	s.Session.ClockOut = nil
	return s
}

func (s AppState) SetShiftLength(hours float64) (AppState, error) {
	if !validShiftLength(hours) {
		return s, fmt.Errorf("%w: %v", ErrInvalidShiftLength, hours)
	}
	s.ShiftLengthHours = hours
	return s, nil
}

// AddBreak records a break on the active date
func (s AppState) AddBreak(start, end string, now time.Time) (AppState, models.BreakInterval, error) {
	reg, b, err := s.Breaks.AddBreak(start, end, s.Date, now)
	if err != nil {
		return s, models.BreakInterval{}, err
	}
	s.Breaks = reg
	return s, b, nil
}

// DeleteBreak removes a break. Deleting the break under edit also ends the
// edit.
func (s AppState) DeleteBreak(id int64) AppState {
	s.Breaks = s.Breaks.DeleteBreak(id)
	if s.Edit != nil && s.Edit.ID == id {
		s.Edit = nil
	}
	return s
}

// BeginEdit starts editing id, replacing any edit already in progress.
// Unknown ids leave the state unchanged.
func (s AppState) BeginEdit(id int64) AppState {
	edit, ok := s.Breaks.BeginEdit(id)
	if !ok {
		return s
	}
	s.Edit = &edit
	return s
}

// SaveEdit applies the edited times. Validation failures keep the edit open
// so the user can correct it; a vanished target closes it.
func (s AppState) SaveEdit(start, end string) (AppState, error) {
	if s.Edit == nil {
		return s, ErrNotEditing
	}
	reg, err := s.Breaks.SaveEdit(*s.Edit, start, end)
	if err != nil {
		if errors.Is(err, ErrBreakNotFound) {
			s.Edit = nil
		}
		return s, err
	}
	s.Breaks = reg
	s.Edit = nil
	return s, nil
}

func (s AppState) CancelEdit() AppState {
	s.Edit = nil
	return s
}

// Reset clears the day: session, breaks and any edit. Shift length and theme
// are settings and survive.
func (s AppState) Reset() AppState {
	s.Session = models.WorkSession{}
	s.Breaks = Registry{}
	s.Edit = nil
	return s
}

func (s AppState) ToggleDarkMode() AppState {
	s.DarkMode = !s.DarkMode
	return s
}

func validShiftLength(hours float64) bool {
	return hours > 0 && !math.IsNaN(hours) && !math.IsInf(hours, 0)
}
