package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/shiftr/internal/models"
)

// stateRowID is the primary key of the one shift_state row
const stateRowID = 1

// StateStore persists the tracker state in SQLite: one shift_state row for
// the session and settings, one breaks row per break.
type StateStore struct {
	db *gorm.DB
}

func NewStateStore(db *gorm.DB) *StateStore {
	return &StateStore{db: db}
}

// Load returns the saved state, or nil if nothing has been saved yet
func (s *StateStore) Load() (*models.SavedState, error) {
	var record models.ShiftStateRecord
	err := s.db.First(&record, stateRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load shift state: %w", err)
	}

	breaks := []models.BreakInterval{}
	if err := s.db.Order("id ASC").Find(&breaks).Error; err != nil {
		return nil, fmt.Errorf("failed to load breaks: %w", err)
	}

	return &models.SavedState{
		ClockIn:          localTime(record.ClockIn),
		ClockOut:         localTime(record.ClockOut),
		ShiftLengthHours: record.ShiftLengthHours,
		Breaks:           breaks,
		DarkMode:         record.DarkMode,
	}, nil
}

// Save replaces the stored state in a single transaction
func (s *StateStore) Save(state models.SavedState) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		record := models.ShiftStateRecord{
			ID:               stateRowID,
			ClockIn:          state.ClockIn,
			ClockOut:         state.ClockOut,
			ShiftLengthHours: state.ShiftLengthHours,
			DarkMode:         state.DarkMode,
		}
		if err := tx.Save(&record).Error; err != nil {
			return fmt.Errorf("failed to save shift state: %w", err)
		}

		if err := tx.Where("1 = 1").Delete(&models.BreakInterval{}).Error; err != nil {
			return fmt.Errorf("failed to clear breaks: %w", err)
		}
		if len(state.Breaks) == 0 {
			return nil
		}
		if err := tx.Create(&state.Breaks).Error; err != nil {
			return fmt.Errorf("failed to save breaks: %w", err)
		}
		return nil
	})
}

// sqlite hands timestamps back in UTC; the tracker works in local time
func localTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	local := t.Local()
	return &local
}
