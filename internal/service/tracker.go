package service

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/shiftr/internal/clock"
	"github.com/balkashynov/shiftr/internal/export"
	"github.com/balkashynov/shiftr/internal/models"
	"github.com/balkashynov/shiftr/internal/storage"
	"github.com/balkashynov/shiftr/internal/tracker"
)

var (
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("not clocked in")
)

// Options tune a Tracker
type Options struct {
	DefaultShiftHours float64
	Policy            tracker.Policy
	SaveDebounce      time.Duration
	Location          *time.Location // zone for manual clock edits, defaults to Local
}

// Tracker owns the in-memory state for one run of the program. Every change
// replaces the state wholesale and schedules a background save; reads never
// go through the store.
type Tracker struct {
	state  tracker.AppState
	clock  clock.Clock
	policy tracker.Policy
	loc    *time.Location
	writer *storage.Writer
	logger logrus.FieldLogger
}

// New loads the saved state once and builds the tracker around it
func New(store storage.Store, clk clock.Clock, opts Options, logger logrus.FieldLogger) *Tracker {
	saved := storage.LoadOrDefault(store, logger)
	if saved != nil {
		_, dropped := tracker.SanitizeBreaks(saved.Breaks)
		for _, b := range dropped {
			logger.WithFields(logrus.Fields{
				"id":       b.ID,
				"date":     b.Date,
				"start":    b.Start,
				"end":      b.End,
				"duration": b.DurationMinutes,
			}).Warn("Dropping invalid saved break")
		}
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	t := &Tracker{
		state:  tracker.NewAppState(saved, clk.Today(), opts.DefaultShiftHours),
		clock:  clk,
		policy: opts.Policy,
		loc:    loc,
		writer: storage.NewWriter(store, opts.SaveDebounce, logger),
		logger: logger,
	}

	logger.WithFields(logrus.Fields{
		"date":        t.state.Date,
		"shift_hours": t.state.ShiftLengthHours,
		"restored":    saved != nil,
	}).Debug("Tracker initialized")

	return t
}

// State returns the current state
func (t *Tracker) State() tracker.AppState {
	return t.state
}

// Summary derives the displayed values at the current instant
func (t *Tracker) Summary() tracker.Summary {
	return tracker.Summarize(t.state, t.clock.Now(), t.policy)
}

// Today returns the active date's breaks ordered by start time
func (t *Tracker) Today() []models.BreakInterval {
	return t.state.Breaks.ListForDate(t.state.Date)
}

// ToggleClock clocks in or out depending on the current session
func (t *Tracker) ToggleClock() models.WorkSession {
	now := t.clock.Now()
	next := t.state.ToggleClock(now)
	t.commit(next)

	if next.ClockedIn() {
		t.logger.WithField("clock_in", now.Format("15:04:05")).Info("Clocked in")
	} else {
		t.logger.WithField("clock_out", now.Format("15:04:05")).Info("Clocked out")
	}
	return next.Session
}

// ClockIn starts a fresh session. Fails if one is already open.
func (t *Tracker) ClockIn() (models.WorkSession, error) {
	if t.state.ClockedIn() {
		t.logger.Warn("Clock in requested while already clocked in")
		return t.state.Session, ErrAlreadyClockedIn
	}
	return t.ToggleClock(), nil
}

// ClockOut closes the open session. Fails if there is none.
func (t *Tracker) ClockOut() (models.WorkSession, error) {
	if !t.state.ClockedIn() {
		t.logger.Warn("Clock out requested while not clocked in")
		return t.state.Session, ErrNotClockedIn
	}
	return t.ToggleClock(), nil
}

// SetClockIn overrides the clock-in time of day
func (t *Tracker) SetClockIn(timeOfDay string) error {
	next, err := t.state.SetClockIn(timeOfDay, t.loc)
	if err != nil {
		t.logger.WithError(err).Warn("Invalid clock-in time")
		return err
	}
	t.commit(next)
	t.logger.WithField("clock_in", timeOfDay).Info("Clock-in time set")
	return nil
}

// SetClockOut overrides the clock-out time of day
func (t *Tracker) SetClockOut(timeOfDay string) error {
	next, err := t.state.SetClockOut(timeOfDay, t.loc)
	if err != nil {
		t.logger.WithError(err).Warn("Invalid clock-out time")
		return err
	}
	t.commit(next)
	t.logger.WithField("clock_out", timeOfDay).Info("Clock-out time set")
	return nil
}

func (t *Tracker) ClearClockIn() {
	t.commit(t.state.ClearClockIn())
	t.logger.Info("Clock-in cleared")
}

func (t *Tracker) ClearClockOut() {
	t.commit(t.state.ClearClockOut())
	t.logger.Info("Clock-out cleared")
}

func (t *Tracker) SetShiftLength(hours float64) error {
	next, err := t.state.SetShiftLength(hours)
	if err != nil {
		t.logger.WithError(err).Warn("Invalid shift length")
		return err
	}
	t.commit(next)
	t.logger.WithField("shift_hours", hours).Info("Shift length set")
	return nil
}

// AddBreak records a break on the active date
func (t *Tracker) AddBreak(start, end string) (models.BreakInterval, error) {
	next, b, err := t.state.AddBreak(start, end, t.clock.Now())
	if err != nil {
		t.logger.WithFields(logrus.Fields{
			"start": start,
			"end":   end,
		}).WithError(err).Warn("Break rejected")
		return models.BreakInterval{}, err
	}
	t.commit(next)

	t.logger.WithFields(logrus.Fields{
		"id":       b.ID,
		"start":    b.Start,
		"end":      b.End,
		"duration": b.DurationMinutes,
	}).Info("Break added")
	return b, nil
}

// DeleteBreak removes a break and reports whether it existed
func (t *Tracker) DeleteBreak(id int64) bool {
	if _, ok := t.state.Breaks.Get(id); !ok {
		t.logger.WithField("id", id).Debug("Delete of unknown break ignored")
		return false
	}
	t.commit(t.state.DeleteBreak(id))
	t.logger.WithField("id", id).Info("Break deleted")
	return true
}

// BeginEdit puts a break into edit mode. Edit mode is not persisted.
func (t *Tracker) BeginEdit(id int64) (tracker.EditState, bool) {
	t.state = t.state.BeginEdit(id)
	if t.state.Edit == nil || t.state.Edit.ID != id {
		return tracker.EditState{}, false
	}
	return *t.state.Edit, true
}

// SaveEdit applies new times to the break being edited
func (t *Tracker) SaveEdit(start, end string) error {
	next, err := t.state.SaveEdit(start, end)
	if err != nil {
		// validation failures keep the edit open; a vanished target closes it
		t.state = next
		t.logger.WithFields(logrus.Fields{
			"start": start,
			"end":   end,
		}).WithError(err).Warn("Break update rejected")
		return err
	}

	id := t.state.Edit.ID
	t.commit(next)
	t.logger.WithField("id", id).Info("Break updated")
	return nil
}

// EditBreak is BeginEdit followed by SaveEdit
func (t *Tracker) EditBreak(id int64, start, end string) error {
	if _, ok := t.BeginEdit(id); !ok {
		return tracker.ErrBreakNotFound
	}
	return t.SaveEdit(start, end)
}

func (t *Tracker) CancelEdit() {
	t.state = t.state.CancelEdit()
}

// Reset clears the day while keeping settings
func (t *Tracker) Reset() {
	t.commit(t.state.Reset())
	t.logger.Info("Reset complete")
}

func (t *Tracker) ToggleDarkMode() bool {
	t.commit(t.state.ToggleDarkMode())
	return t.state.DarkMode
}

// Export writes every recorded break to dir as breaks_<date>.csv. Returns an
// empty path when there is nothing to export.
func (t *Tracker) Export(dir string) (string, error) {
	breaks := t.state.Breaks.All()
	path, err := export.ExportFile(dir, t.state.Date, breaks)
	if err != nil {
		t.logger.WithError(err).Error("Export failed")
		return "", err
	}
	if path != "" {
		t.logger.WithFields(logrus.Fields{
			"path":   path,
			"breaks": len(breaks),
		}).Info("Breaks exported")
	}
	return path, nil
}

// Flush writes any pending change now
func (t *Tracker) Flush() {
	t.writer.Flush()
}

// Close flushes pending changes and stops background writes
func (t *Tracker) Close() {
	t.writer.Close()
}

func (t *Tracker) commit(next tracker.AppState) {
	t.state = next
	t.writer.Schedule(next.Snapshot())
}
