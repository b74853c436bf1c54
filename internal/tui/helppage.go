package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpPage lists the key bindings. Esc or q returns to the feed.
type HelpPage struct {
	keys   KeyMap
	width  int
	height int
}

// NewHelpPage creates the help screen.
func NewHelpPage() *HelpPage {
	return &HelpPage{keys: DefaultKeyMap()}
}

func (p *HelpPage) ID() string { return "help" }

func (p *HelpPage) Init() tea.Cmd { return nil }

func (p *HelpPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.ForceQuit):
			return tea.Quit, nil
		case key.Matches(msg, p.keys.Back), key.Matches(msg, p.keys.Quit):
			return nil, &PageNav{PageID: "feed"}
		}
	}
	return nil, nil
}

func (p *HelpPage) View(width, height int) string {
	if width > 0 {
		p.width = width
		p.height = height
	}

	bindings := []key.Binding{
		p.keys.Top,
		p.keys.Bottom,
		p.keys.Retry,
		p.keys.Help,
		p.keys.Back,
		p.keys.Quit,
		p.keys.ForceQuit,
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Key Bindings"))
	b.WriteString("\n\n")
	for _, binding := range bindings {
		h := binding.Help()
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			entryTitleStyle.Width(10).Render(h.Key),
			entryMetaStyle.Render(h.Desc)))
	}
	b.WriteString("\n")
	b.WriteString(countStyle.Render("  Scrolling uses the standard viewport keys (↑/↓, PgUp/PgDn)."))

	return lipgloss.Place(max(p.width, 1), max(p.height, 1), lipgloss.Left, lipgloss.Top, b.String())
}
