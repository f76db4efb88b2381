package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	accentCyan   = lipgloss.Color("#00FFFF")
	accentGreen  = lipgloss.Color("#39FF14")
	accentOrange = lipgloss.Color("#FF6700")
	accentRed    = lipgloss.Color("#FF0000")
	dimWhite     = lipgloss.Color("#AAAAAA")

	baseStyle = lipgloss.NewStyle()

	titleStyle = lipgloss.NewStyle().
			Foreground(accentCyan).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentCyan).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(accentGreen).
			Bold(true)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(dimWhite)

	statValueStyle = lipgloss.NewStyle().
			Foreground(accentGreen).
			Bold(true)

	fileOkStyle = lipgloss.NewStyle().
			Foreground(accentGreen)

	fileFailStyle = lipgloss.NewStyle().
			Foreground(accentRed)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimWhite).
			Italic(true)
)
