package clock

import "time"

// DateLayout is the ISO calendar date format used for break dates
const DateLayout = "2006-01-02"

// Clock supplies the current instant and calendar date. Pure tracker code
// never reads the wall clock itself; callers pass values obtained here.
type Clock interface {
	Now() time.Time
	Today() string
}

// System reads the local wall clock
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Today() string { return time.Now().Format(DateLayout) }

// Fixed always reports the same instant. Used by tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

func (f Fixed) Today() string { return f.T.Format(DateLayout) }
