package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	deviceStyle = lipgloss.NewStyle().Foreground(colorGray)
	statusStyle = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
	promptStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)
