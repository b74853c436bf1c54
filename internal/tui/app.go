package tui

import tea "github.com/charmbracelet/bubbletea"

// App is the top-level Bubble Tea model. It routes messages to the
// active page and switches pages when one requests navigation. The
// first page passed to NewApp is the start page.
type App struct {
	pages  []Page
	byID   map[string]Page
	active Page
	width  int
	height int
}

// NewApp creates an App over the given pages.
func NewApp(pages ...Page) *App {
	byID := make(map[string]Page, len(pages))
	for _, p := range pages {
		byID[p.ID()] = p
	}
	a := &App{pages: pages, byID: byID}
	if len(pages) > 0 {
		a.active = pages[0]
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.active == nil {
		return nil
	}
	return a.active.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Window sizes go to every page, so a page entered later already
	// knows its dimensions.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
		var cmds []tea.Cmd
		for _, p := range a.pages {
			cmd, _ := p.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}

	if a.active == nil {
		return a, nil
	}

	cmd, nav := a.active.Update(msg)
	if nav != nil {
		if next, ok := a.byID[nav.PageID]; ok && next != a.active {
			a.active = next
			return a, tea.Batch(cmd, next.Init())
		}
	}
	return a, cmd
}

func (a *App) View() string {
	if a.active == nil {
		return ""
	}
	return a.active.View(a.width, a.height)
}
