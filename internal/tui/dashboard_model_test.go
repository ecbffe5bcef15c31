package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/shiftr/internal/clock"
	"github.com/balkashynov/shiftr/internal/service"
	"github.com/balkashynov/shiftr/internal/storage"
)

func newTestDashboard(t *testing.T) (DashboardModel, *service.Tracker) {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	clk := clock.Fixed{T: time.Date(2026, 10, 19, 13, 0, 0, 0, time.UTC)}
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "state.json"))
	tr := service.New(store, clk, service.Options{DefaultShiftHours: 9, Location: time.UTC}, log)
	t.Cleanup(tr.Close)

	m := NewDashboardModel(tr, t.TempDir())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(DashboardModel), tr
}

func press(m DashboardModel, keys ...string) DashboardModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(DashboardModel)
	}
	return m
}

func TestDashboard_ToggleClock(t *testing.T) {
	m, tr := newTestDashboard(t)

	m = press(m, "c")
	assert.True(t, tr.State().ClockedIn())
	assert.Contains(t, m.status, "Clocked in")

	m = press(m, "c")
	assert.False(t, tr.State().ClockedIn())
	assert.Contains(t, m.status, "Clocked out")
}

func TestDashboard_AddBreak(t *testing.T) {
	m, tr := newTestDashboard(t)

	m = press(m, "a")
	require.Equal(t, ModeAddBreak, m.mode)
	m = press(m, "12:00:00", "enter", "12:30:00", "enter")

	assert.Equal(t, ModeNormal, m.mode)
	require.Len(t, tr.Today(), 1)
	assert.Equal(t, 30, tr.Today()[0].DurationMinutes)
	assert.True(t, m.statusOK)
}

func TestDashboard_AddBreakValidation(t *testing.T) {
	m, tr := newTestDashboard(t)

	m = press(m, "a", "13:00", "enter", "12:00", "enter")
	assert.Equal(t, ModeAddBreak, m.mode, "form stays open")
	assert.Equal(t, "Invalid break times", m.status)
	assert.Empty(t, tr.Today())

	m = press(m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestDashboard_EditAndDelete(t *testing.T) {
	m, tr := newTestDashboard(t)
	_, err := tr.AddBreak("10:00", "10:15")
	require.NoError(t, err)

	m = press(m, "e")
	require.Equal(t, ModeEditBreak, m.mode)
	require.NotNil(t, tr.State().Edit)

	m.inputs[1].SetValue("10:45:00")
	m = press(m, "tab", "enter")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Nil(t, tr.State().Edit)
	assert.Equal(t, 45, tr.Today()[0].DurationMinutes)

	m = press(m, "e", "esc")
	assert.Nil(t, tr.State().Edit, "esc cancels the edit")

	m = press(m, "d")
	assert.Empty(t, tr.Today())
}

func TestDashboard_ShiftLengthAndReset(t *testing.T) {
	m, tr := newTestDashboard(t)

	m = press(m, "s")
	require.Equal(t, ModeShiftLength, m.mode)
	m.inputs[0].SetValue("7.5")
	m = press(m, "enter")
	assert.Equal(t, 7.5, tr.State().ShiftLengthHours)

	m = press(m, "c", "R")
	assert.Equal(t, ModeConfirmReset, m.mode)
	m = press(m, "n")
	assert.True(t, tr.State().ClockedIn(), "anything but y cancels")

	m = press(m, "R", "y")
	assert.False(t, tr.State().ClockedIn())
	assert.Equal(t, 7.5, tr.State().ShiftLengthHours)
}

func TestDashboard_ViewRenders(t *testing.T) {
	m, tr := newTestDashboard(t)
	tr.ToggleClock()
	_, err := tr.AddBreak("12:00", "12:30")
	require.NoError(t, err)

	out := m.View()
	assert.Contains(t, out, "Effective Hours")
	assert.Contains(t, out, "12:00:00 PM → 12:30:00 PM | 30 mins")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.Contains(t, next.(DashboardModel).View(), "Breaks")
}

func TestDashboard_Quit(t *testing.T) {
	m, _ := newTestDashboard(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
