package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorMuted  = lipgloss.Color("#71717a")
	colorText   = lipgloss.Color("#d4d4d8")
	colorAccent = lipgloss.Color("#a78bfa")
	colorGreen  = lipgloss.Color("#a6e3a1")
	colorRed    = lipgloss.Color("#f38ba8")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	dayStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Width(4).
			Align(lipgloss.Center)

	dayMutedStyle = dayStyle.
			Foreground(colorMuted)

	dayCursorStyle = dayStyle.
			Foreground(lipgloss.Color("#1e1e2e")).
			Background(colorAccent).
			Bold(true)

	dayBoundaryStyle = dayStyle.
				Foreground(colorAccent).
				Bold(true).
				Underline(true)

	dayInRangeStyle = dayStyle.
			Foreground(colorAccent)
)
