package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/shiftr/internal/service"
	"github.com/balkashynov/shiftr/internal/tracker"
)

// Mode is what the dashboard is currently doing with key presses
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddBreak
	ModeEditBreak
	ModeShiftLength
	ModeConfirmReset
)

// DashboardModel is the interactive view over a Tracker
type DashboardModel struct {
	width  int
	height int

	tracker   *service.Tracker
	exportDir string

	// UI state
	mode     Mode
	selected int // index into the active date's breaks
	inputs   []textinput.Model
	focus    int
	status   string
	statusOK bool
	quitting bool
}

// tickMsg is sent every second to refresh the derived values
type tickMsg struct{}

// NewDashboardModel creates the dashboard for tr
func NewDashboardModel(tr *service.Tracker, exportDir string) DashboardModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 12
		inputs[i].CharLimit = 8
	}
	inputs[0].Placeholder = "HH:MM:SS"
	inputs[1].Placeholder = "HH:MM:SS"

	m := DashboardModel{
		tracker:   tr,
		exportDir: exportDir,
		inputs:    inputs,
	}
	m.applyInputTheme()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Init starts the refresh ticker
func (m DashboardModel) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddBreak, ModeEditBreak, ModeShiftLength:
			return m.handleInputKeys(msg)
		case ModeConfirmReset:
			return m.handleConfirmKeys(msg)
		default:
			return m.handleNormalKeys(msg)
		}
	}

	return m, nil
}

func (m DashboardModel) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	breaks := m.tracker.Today()

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "c", " ":
		session := m.tracker.ToggleClock()
		if session.ClockOut == nil {
			m.setStatus(true, "✅ Clocked in at %s", session.ClockIn.Format("15:04:05"))
		} else {
			m.setStatus(true, "🛑 Clocked out at %s", session.ClockOut.Format("15:04:05"))
		}

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(breaks)-1 {
			m.selected++
		}

	case "a":
		m.mode = ModeAddBreak
		cmd := m.startInput("", "")
		return m, cmd

	case "e", "enter":
		if len(breaks) == 0 {
			return m, nil
		}
		edit, ok := m.tracker.BeginEdit(breaks[m.selected].ID)
		if !ok {
			return m, nil
		}
		m.mode = ModeEditBreak
		cmd := m.startInput(edit.Start, edit.End)
		return m, cmd

	case "d", "delete":
		if len(breaks) == 0 {
			return m, nil
		}
		m.tracker.DeleteBreak(breaks[m.selected].ID)
		if m.selected >= len(breaks)-1 && m.selected > 0 {
			m.selected--
		}
		m.setStatus(true, "🗑 Break deleted")

	case "s":
		m.mode = ModeShiftLength
		cmd := m.startInput(strconv.FormatFloat(m.tracker.State().ShiftLengthHours, 'f', -1, 64), "")
		return m, cmd

	case "x":
		path, err := m.tracker.Export(m.exportDir)
		switch {
		case err != nil:
			m.setStatus(false, "Export failed: %v", err)
		case path == "":
			m.setStatus(false, "No breaks to export")
		default:
			m.setStatus(true, "📄 Exported to %s", path)
		}

	case "t":
		m.tracker.ToggleDarkMode()
		m.applyInputTheme()

	case "R":
		m.mode = ModeConfirmReset
	}

	return m, nil
}

func (m DashboardModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.fieldCount()

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.mode == ModeEditBreak {
			m.tracker.CancelEdit()
		}
		m.endInput()
		return m, nil

	case "tab", "shift+tab":
		if fields > 1 {
			cmd := m.focusField((m.focus + 1) % fields)
			return m, cmd
		}
		return m, nil

	case "enter":
		if m.focus < fields-1 {
			cmd := m.focusField(m.focus + 1)
			return m, cmd
		}
		m.submitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m DashboardModel) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.tracker.Reset()
		m.selected = 0
		m.setStatus(true, "🔁 Reset complete")
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	m.mode = ModeNormal
	return m, nil
}

// submitInput applies the form for the current mode. Validation errors keep
// the form open with the message shown.
func (m *DashboardModel) submitInput() {
	start := strings.TrimSpace(m.inputs[0].Value())
	end := strings.TrimSpace(m.inputs[1].Value())

	switch m.mode {
	case ModeAddBreak:
		if _, err := m.tracker.AddBreak(start, end); err != nil {
			m.setStatus(false, "%s", inputError(err))
			return
		}
		m.setStatus(true, "✅ Break added")

	case ModeEditBreak:
		err := m.tracker.SaveEdit(start, end)
		if errors.Is(err, tracker.ErrBreakNotFound) || errors.Is(err, tracker.ErrNotEditing) {
			m.setStatus(false, "Break no longer exists")
			m.endInput()
			return
		}
		if err != nil {
			m.setStatus(false, "%s", inputError(err))
			return
		}
		m.setStatus(true, "✅ Break updated")

	case ModeShiftLength:
		hours, err := strconv.ParseFloat(start, 64)
		if err == nil {
			err = m.tracker.SetShiftLength(hours)
		}
		if err != nil {
			m.setStatus(false, "Shift length must be a positive number of hours")
			return
		}
		m.setStatus(true, "Shift length set to %sh", start)
	}

	m.endInput()
}

// inputError maps validation errors to the messages shown to the user
func inputError(err error) string {
	switch {
	case errors.Is(err, tracker.ErrMissingField):
		return "Start and End time required"
	case errors.Is(err, tracker.ErrInvalidInterval):
		return "Invalid break times"
	default:
		return err.Error()
	}
}

func (m *DashboardModel) startInput(first, second string) tea.Cmd {
	m.inputs[0].SetValue(first)
	m.inputs[1].SetValue(second)
	if m.mode == ModeShiftLength {
		m.inputs[0].Placeholder = "hours"
	} else {
		m.inputs[0].Placeholder = "HH:MM:SS"
	}
	m.status = ""
	return tea.Batch(m.focusField(0), textinput.Blink)
}

func (m *DashboardModel) endInput() {
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].SetValue("")
	}
	m.focus = 0
	m.mode = ModeNormal
}

func (m *DashboardModel) focusField(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[i].Focus()
}

func (m DashboardModel) fieldCount() int {
	if m.mode == ModeShiftLength {
		return 1
	}
	return 2
}

func (m *DashboardModel) setStatus(ok bool, f string, args ...any) {
	m.statusOK = ok
	m.status = fmt.Sprintf(f, args...)
}

func (m *DashboardModel) applyInputTheme() {
	p := m.palette()
	for i := range m.inputs {
		m.inputs[i].TextStyle = lipgloss.NewStyle().Foreground(p.PrimaryText)
		m.inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Placeholder)
		m.inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(p.AccentBright)
	}
}

func (m DashboardModel) palette() Palette {
	return PaletteFor(m.tracker.State().DarkMode)
}

// Quitting reports whether the user asked to leave
func (m DashboardModel) Quitting() bool {
	return m.quitting
}
