package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is one top-level screen. A page returning a non-nil PageNav from
// Update asks the App to switch to the named page.
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav requests a switch to the page with the given ID.
type PageNav struct {
	PageID string
}
