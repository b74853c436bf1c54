package scrolltrigger

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the boundary slot.
type Styles struct {
	Spinner     lipgloss.Style
	LoadingText lipgloss.Style
	EndText     lipgloss.Style
}

// DefaultStyles returns the default boundary styling.
func DefaultStyles() Styles {
	return Styles{
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		LoadingText: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		EndText:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
	}
}
