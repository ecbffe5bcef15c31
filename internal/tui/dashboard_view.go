package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/shiftr/internal/format"
	"github.com/balkashynov/shiftr/internal/tracker"
)

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	p := m.palette()
	sum := m.tracker.Summary()

	helpBar := m.renderHelpBar(p)
	contentHeight := m.height - 2

	// Narrow view: stack the panels
	if m.width < 90 {
		content := lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderClockPanel(p, sum, m.width),
			m.renderSummaryPanel(p, sum, m.width),
			m.renderBreaksPanel(p, m.width),
		)
		return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatus(p), helpBar)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2 // -2 for gap

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(contentHeight-1).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			m.renderClockPanel(p, sum, leftWidth),
			m.renderSummaryPanel(p, sum, leftWidth),
		))

	right := m.renderBreaksPanel(p, rightWidth)

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatus(p), helpBar)
}

// renderClockPanel shows worked time as a big clock with the session state
func (m DashboardModel) renderClockPanel(p Palette, sum tracker.Summary, width int) string {
	state := m.tracker.State()
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	header := "○  OFF THE CLOCK  ○"
	headerColor := p.SecondaryText
	if sum.ClockedIn {
		header = "⏱  ON THE CLOCK  ⏱"
		headerColor = p.AccentBright
	}

	h, min := sum.Worked.Hours()
	clockColor := p.AccentBright
	if sum.Overtime > 0 {
		clockColor = p.Warning
	}

	var sessionInfo string
	switch {
	case state.Session.ClockIn == nil:
		sessionInfo = "Press c to clock in"
	case state.Session.ClockOut == nil:
		sessionInfo = fmt.Sprintf("Clocked in at %s", format.Instant(state.Session.ClockIn))
	default:
		sessionInfo = fmt.Sprintf("%s → %s", format.Instant(state.Session.ClockIn), format.Instant(state.Session.ClockOut))
	}

	lines := []string{
		center.Foreground(headerColor).Bold(true).Render(header),
		center.Render(renderBigClock(fmt.Sprintf("%02d:%02d", h, min), clockColor)),
		center.Foreground(p.SecondaryText).Italic(true).Render(sessionInfo),
	}
	return strings.Join(lines, "\n\n")
}

func (m DashboardModel) renderSummaryPanel(p Palette, sum tracker.Summary, width int) string {
	label := lipgloss.NewStyle().Foreground(p.SecondaryText)
	value := lipgloss.NewStyle().Foreground(p.PrimaryText).Bold(true)

	overtime := value
	if sum.Overtime > 0 {
		overtime = overtime.Foreground(p.Warning)
	}

	rows := []string{
		label.Render("🧱 Gross Hours:     ") + value.Render(format.Minutes(sum.Gross)),
		label.Render("✅ Effective Hours: ") + value.Render(format.Minutes(sum.Worked)),
		label.Render("🧮 Remaining:       ") + value.Render(format.Minutes(sum.Remaining)),
		label.Render("🔥 Overtime:        ") + overtime.Render(format.Minutes(sum.Overtime)),
		label.Render("📆 Expected End:    ") + value.Render(format.Instant(sum.ExpectedEnd)),
		label.Render("⏳ Shift Length:    ") + value.Render(format.Minutes(sum.ShiftMinutes)),
	}

	if m.mode == ModeShiftLength {
		rows = append(rows, "", label.Render("Shift length (hrs): ")+m.inputs[0].View())
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2).
		Width(min(width-4, 48))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(box.Render(strings.Join(rows, "\n")))
}

func (m DashboardModel) renderBreaksPanel(p Palette, width int) string {
	var b strings.Builder
	state := m.tracker.State()
	breaks := m.tracker.Today()

	title := lipgloss.NewStyle().Foreground(p.AccentMain).Bold(true)
	b.WriteString(title.Render(fmt.Sprintf("☕ Breaks · %s", state.Date)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", min(width-4, 44))))
	b.WriteString("\n")

	if len(breaks) == 0 && m.mode != ModeAddBreak {
		b.WriteString(lipgloss.NewStyle().Foreground(p.DisabledText).Italic(true).Render("No breaks recorded"))
		b.WriteString("\n")
	}

	for i, br := range breaks {
		cursor := "  "
		rowStyle := lipgloss.NewStyle().Foreground(p.PrimaryText)
		if i == m.selected && m.mode == ModeNormal {
			cursor = "▸ "
			rowStyle = rowStyle.Foreground(p.AccentBright).Bold(true)
		}

		if m.mode == ModeEditBreak && state.Edit != nil && state.Edit.ID == br.ID {
			b.WriteString("✏️  " + m.inputs[0].View() + " → " + m.inputs[1].View())
			b.WriteString("\n")
			continue
		}

		line := fmt.Sprintf("%s → %s | %s",
			format.TimeOfDay(br.Start), format.TimeOfDay(br.End), format.Duration(br.DurationMinutes))
		b.WriteString(cursor + rowStyle.Render(line))
		b.WriteString("\n")
	}

	if m.mode == ModeAddBreak {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(p.AccentBright).Render("New break: "))
		b.WriteString(m.inputs[0].View() + " → " + m.inputs[1].View())
		b.WriteString("\n")
	}

	total := m.tracker.Summary().BreakMinutes
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.SecondaryText).Render("Total: " + format.Duration(int(total))))

	return lipgloss.NewStyle().
		Width(width-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.AccentMain).
		Padding(1, 2).
		Render(b.String())
}

func (m DashboardModel) renderStatus(p Palette) string {
	if m.mode == ModeConfirmReset {
		return lipgloss.NewStyle().Foreground(p.Warning).Bold(true).Width(m.width).Align(lipgloss.Center).
			Render("Reset clock and breaks for today? (y/N)")
	}
	color := p.Error
	if m.statusOK {
		color = p.Success
	}
	return lipgloss.NewStyle().Foreground(color).Width(m.width).Align(lipgloss.Center).Render(m.status)
}

// renderHelpBar renders the help bar at the bottom
func (m DashboardModel) renderHelpBar(p Palette) string {
	helpStyle := lipgloss.NewStyle().
		Foreground(p.HelpText).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var helpText string
	switch m.mode {
	case ModeAddBreak, ModeEditBreak:
		helpText = "tab next field · enter save · esc cancel"
	case ModeShiftLength:
		helpText = "enter save · esc cancel"
	case ModeConfirmReset:
		helpText = "y confirm · any other key cancel"
	default:
		helpText = "c clock in/out · a add · e edit · d delete · s shift · x export · t theme · R reset · q quit"
	}

	return helpStyle.Render(helpText)
}
