package db

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/shiftr/internal/models"
	"github.com/balkashynov/shiftr/internal/tracker"
)

func newTestStore(t *testing.T) *StateStore {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "shiftr.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		Close(database)
	})
	return NewStateStore(database)
}

func TestStateStore_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)
	state, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestStateStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	day := "2026-10-19"
	clockIn := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s := tracker.NewAppState(nil, day, 9).ToggleClock(clockIn).ToggleDarkMode()
	s, _, err := s.AddBreak("12:00", "12:30", clockIn.Add(3*time.Hour))
	require.NoError(t, err)
	s, _, err = s.AddBreak("10:00", "10:10", clockIn.Add(3*time.Hour))
	require.NoError(t, err)

	require.NoError(t, store.Save(s.Snapshot()))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.False(t, loaded.DarkMode)
	assert.Equal(t, 9.0, loaded.ShiftLengthHours)
	assert.Nil(t, loaded.ClockOut)
	require.NotNil(t, loaded.ClockIn)
	assert.True(t, clockIn.Equal(*loaded.ClockIn))
	assert.Equal(t, time.Local, loaded.ClockIn.Location(), "loaded as local time")
	assert.Equal(t, s.Breaks.All(), loaded.Breaks, "breaks keep insertion order")

	restored := tracker.NewAppState(loaded, day, 9)
	now := clockIn.Add(5 * time.Hour)
	want := tracker.Summarize(s, now, tracker.Policy{})
	got := tracker.Summarize(restored, now, tracker.Policy{})
	assert.Equal(t, want.Gross, got.Gross)
	assert.Equal(t, want.Worked, got.Worked)
	assert.Equal(t, want.Remaining, got.Remaining)
	assert.Equal(t, want.Overtime, got.Overtime)
	require.NotNil(t, got.ExpectedEnd)
	assert.True(t, want.ExpectedEnd.Equal(*got.ExpectedEnd))
}

func TestStateStore_SaveReplacesBreaks(t *testing.T) {
	store := newTestStore(t)

	first := models.DefaultSavedState()
	first.Breaks = []models.BreakInterval{
		{ID: 1, Date: "2026-10-19", Start: "10:00:00", End: "10:15:00", DurationMinutes: 15},
		{ID: 2, Date: "2026-10-19", Start: "12:00:00", End: "12:30:00", DurationMinutes: 30},
	}
	require.NoError(t, store.Save(first))

	second := models.DefaultSavedState()
	second.ShiftLengthHours = 7.5
	second.Breaks = []models.BreakInterval{first.Breaks[1]}
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 7.5, loaded.ShiftLengthHours)
	assert.Equal(t, second.Breaks, loaded.Breaks)

	require.NoError(t, store.Save(models.DefaultSavedState()))
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Breaks)
}

func TestOpenOrRecover_MovesCorruptFileAside(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shiftr.db")
	garbage := bytes.Repeat([]byte("this is not a sqlite database\n"), 20)
	require.NoError(t, os.WriteFile(path, garbage, 0644))

	log, hook := logtest.NewNullLogger()
	database, err := OpenOrRecover(path, log)
	require.NoError(t, err)
	t.Cleanup(func() { Close(database) })

	state, err := NewStateStore(database).Load()
	require.NoError(t, err)
	assert.Nil(t, state, "starts from defaults")

	moved, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)
	require.Len(t, moved, 1)
	kept, err := os.ReadFile(moved[0])
	require.NoError(t, err)
	assert.Equal(t, garbage, kept, "bad file is kept for inspection")

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "Database unreadable, starting fresh", hook.LastEntry().Message)
}

func TestOpenOrRecover_HealthyDatabaseUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shiftr.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, NewStateStore(first).Save(models.DefaultSavedState()))
	require.NoError(t, Close(first))

	log, hook := logtest.NewNullLogger()
	database, err := OpenOrRecover(path, log)
	require.NoError(t, err)
	t.Cleanup(func() { Close(database) })

	state, err := NewStateStore(database).Load()
	require.NoError(t, err)
	assert.NotNil(t, state)
	assert.Empty(t, hook.AllEntries())

	moved, _ := filepath.Glob(path + ".corrupt-*")
	assert.Empty(t, moved)
}
