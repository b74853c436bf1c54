package tui

import "github.com/charmbracelet/lipgloss"

// Shared palette for the feed page.
var (
	ColorNavy   = lipgloss.Color("17")
	ColorWhite  = lipgloss.Color("255")
	ColorGray   = lipgloss.Color("240")
	ColorGreen  = lipgloss.Color("42")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("196")
)

var (
	titleStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite).
			Bold(true).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	statusBarStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	statusPagingStyle = lipgloss.NewStyle().
				Background(ColorNavy).
				Foreground(ColorYellow)

	statusDoneStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	entryTitleStyle = lipgloss.NewStyle().Foreground(ColorWhite)
	entryMetaStyle  = lipgloss.NewStyle().Foreground(ColorGray)
	entryTagStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
)
