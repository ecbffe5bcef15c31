package models

import "time"

// WorkSession is the single clock-in/clock-out pair for the active day.
// A nil ClockIn means not clocked in; a nil ClockOut with ClockIn set means
// the user is currently on the clock.
type WorkSession struct {
	ClockIn  *time.Time `json:"clockIn,omitempty"`
	ClockOut *time.Time `json:"clockOut,omitempty"`
}

// ShiftStateRecord is the single-row table holding the session and settings
type ShiftStateRecord struct {
	ID        uint      `gorm:"primarykey"`
	UpdatedAt time.Time

	ClockIn          *time.Time
	ClockOut         *time.Time
	ShiftLengthHours float64 `gorm:"not null"`
	DarkMode         bool
}

// TableName pins the table name
func (ShiftStateRecord) TableName() string {
	return "shift_state"
}
