package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/shiftr/internal/service"
)

// RunDashboard runs the dashboard until the user quits, then flushes any
// pending save.
func RunDashboard(tr *service.Tracker, exportDir string) error {
	model := NewDashboardModel(tr, exportDir)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	tr.Flush()
	return err
}
