package models

import "time"

// DefaultShiftLengthHours is used when nothing has been saved yet
const DefaultShiftLengthHours = 9.0

// SavedState is the flat, JSON-serialisable form of everything that persists
// between runs.
type SavedState struct {
	ClockIn          *time.Time      `json:"clockIn,omitempty"`
	ClockOut         *time.Time      `json:"clockOut,omitempty"`
	ShiftLengthHours float64         `json:"shiftLengthHours"`
	Breaks           []BreakInterval `json:"breaks"`
	DarkMode         bool            `json:"darkMode"`
}

// DefaultSavedState returns the state a fresh install starts from
func DefaultSavedState() SavedState {
	return SavedState{
		ShiftLengthHours: DefaultShiftLengthHours,
		Breaks:           []BreakInterval{},
		DarkMode:         true,
	}
}
