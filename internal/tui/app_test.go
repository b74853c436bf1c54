package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAppNavigatesToHelpAndBack(t *testing.T) {
	t.Parallel()

	fetch := &countingFetch{total: 45}
	feedPage := NewFeedPage(fetch.fetch, 20, 0)
	app := NewApp(feedPage, NewHelpPage())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	pump(t, feedPage, runCmd(app.Init()))

	if !strings.Contains(app.View(), "Scrollfeed") {
		t.Fatalf("start page is not the feed:\n%s", app.View())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !strings.Contains(app.View(), "Key Bindings") {
		t.Fatalf("help key did not switch to the help page:\n%s", app.View())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(app.View(), "Scrollfeed") {
		t.Fatalf("esc did not return to the feed:\n%s", app.View())
	}

	// Returning to the feed re-runs its Init; the first page must not be
	// fetched again.
	if got, want := fetch.calls, 1; got != want {
		t.Fatalf("fetch calls after round trip = %d, want %d", got, want)
	}
	if got, want := feedPage.state.Len(), 20; got != want {
		t.Fatalf("feed items after round trip = %d, want %d", got, want)
	}
}

func TestAppIgnoresUnknownNavTarget(t *testing.T) {
	t.Parallel()

	fetch := &countingFetch{total: 5}
	feedPage := NewFeedPage(fetch.fetch, 20, 0)
	app := NewApp(feedPage)

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	pump(t, feedPage, runCmd(app.Init()))

	// The help page is not registered; the nav request must be dropped.
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !strings.Contains(app.View(), "Scrollfeed") {
		t.Fatalf("unknown nav target switched pages:\n%s", app.View())
	}
}

func TestHelpPageQuitKey(t *testing.T) {
	t.Parallel()

	p := NewHelpPage()
	cmd, nav := p.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if nav != nil {
		t.Fatal("ctrl+c on help page returned a nav, want quit command")
	}
	if cmd == nil {
		t.Fatal("ctrl+c on help page returned nil command, want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c on help page did not produce a quit message")
	}
}
