package storage

import (
	"github.com/sirupsen/logrus"

	"github.com/balkashynov/shiftr/internal/models"
)

// Store persists the tracker state between runs
type Store interface {
	// Load returns (nil, nil) when nothing has been saved yet
	Load() (*models.SavedState, error)
	Save(state models.SavedState) error
}

// LoadOrDefault loads saved state, treating any failure as "nothing saved".
// A broken store must never keep the tracker from starting.
func LoadOrDefault(store Store, log logrus.FieldLogger) *models.SavedState {
	state, err := store.Load()
	if err != nil {
		log.WithError(err).Warn("Saved state unreadable, starting fresh")
		return nil
	}
	if state == nil {
		log.Debug("No saved state found")
		return nil
	}

	log.WithFields(logrus.Fields{
		"breaks":      len(state.Breaks),
		"clocked_in":  state.ClockIn != nil && state.ClockOut == nil,
		"shift_hours": state.ShiftLengthHours,
	}).Info("Data restored")
	return state
}
