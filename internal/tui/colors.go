package tui

import "github.com/charmbracelet/lipgloss"

// Palette is one colour theme for the dashboard
type Palette struct {
	Card          lipgloss.Color
	Border        lipgloss.Color
	PrimaryText   lipgloss.Color
	SecondaryText lipgloss.Color
	DisabledText  lipgloss.Color
	Placeholder   lipgloss.Color
	HelpText      lipgloss.Color
	AccentMain    lipgloss.Color
	AccentBright  lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
}

// DarkPalette is the default purple-on-dark theme
var DarkPalette = Palette{
	Card:          "#1B1530", // Dark purple
	Border:        "#3A3F55", // Grey-blue
	PrimaryText:   "#E6EAF2",
	SecondaryText: "#B1B8C7", // Subtle purple-tinted grey
	DisabledText:  "#6D7383",
	Placeholder:   "#B1B8C7",
	HelpText:      "240",
	AccentMain:    "#7C3AED",
	AccentBright:  "#A78BFA",
	Error:         "#EF4444",
	Success:       "#22C55E",
	Warning:       "#F59E0B",
}

// LightPalette keeps the same accents on a light terminal
var LightPalette = Palette{
	Card:          "#F3F4F6",
	Border:        "#D1D5DB",
	PrimaryText:   "#111827",
	SecondaryText: "#4B5563",
	DisabledText:  "#9CA3AF",
	Placeholder:   "#6B7280",
	HelpText:      "245",
	AccentMain:    "#6D28D9",
	AccentBright:  "#7C3AED",
	Error:         "#DC2626",
	Success:       "#16A34A",
	Warning:       "#D97706",
}

// PaletteFor picks the theme matching the dark mode setting
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}
