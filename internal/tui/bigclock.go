package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ASCII art for digits (5x5 characters each)
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock draws text (digits and colons) five rows tall
func renderBigClock(text string, color lipgloss.Color) string {
	var lines [5]strings.Builder

	for _, char := range text {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ") // Space between digits
		}
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)

	rows := make([]string, 5)
	for i := range lines {
		rows[i] = style.Render(lines[i].String())
	}
	return strings.Join(rows, "\n")
}
