package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorBorder   = "243" // Border gray
	ColorPrimary  = "33"  // Blue for primary actions
)

// Tone accents for coach cards
const (
	ColorToneStructure = "33"  // Blue
	ColorToneClarity   = "170" // Purple
	ColorToneEvidence  = "214" // Orange
	ColorToneFlow      = "78"  // Green
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive)).
			PaddingLeft(1)

	StatusEditingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning)).
				Bold(true)

	StatusSavedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess)).
				Bold(true)

	PriorityHighStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger)).
				Bold(true)

	PriorityMidStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning))

	PriorityLowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive)).
			Italic(true)
)

// toneColor maps a coach tone to its accent color.
func toneColor(tone string) lipgloss.Color {
	switch tone {
	case "structure":
		return lipgloss.Color(ColorToneStructure)
	case "clarity":
		return lipgloss.Color(ColorToneClarity)
	case "evidence":
		return lipgloss.Color(ColorToneEvidence)
	case "flow":
		return lipgloss.Color(ColorToneFlow)
	}
	return lipgloss.Color(ColorNormal)
}
