package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jander96/bloc-scroll-paging/internal/feed"
	"github.com/jander96/bloc-scroll-paging/pkg/asyncvalue"
	"github.com/jander96/bloc-scroll-paging/pkg/paging"
	"github.com/jander96/bloc-scroll-paging/pkg/scrolltrigger"
)

// chrome is the number of non-list lines: header plus status bar.
const chrome = 2

// pageLoadedMsg carries one fetched page (or its failure) back into Update.
type pageLoadedMsg struct {
	page    int
	entries []feed.Entry
	err     error
}

// FeedPage is the infinite-scroll feed screen. It owns the paged state
// and advances it exclusively through the pager; the scroll-trigger list
// only reads items and raises load requests.
type FeedPage struct {
	keys     KeyMap
	list     scrolltrigger.Model[feed.Entry]
	state    paging.PagedState[feed.Entry]
	gate     *paging.Gate
	fetch    paging.FetchFunc[feed.Entry]
	pageSize int

	// lastRequested is the page number of the most recent fetch, used
	// to retry after a failure.
	lastRequested int

	started bool

	width  int
	height int
}

// NewFeedPage creates the feed screen. The page model fetches page 1
// itself on Init, so the scroll trigger starts counting at page 2.
func NewFeedPage(fetch paging.FetchFunc[feed.Entry], pageSize int, debounce time.Duration) *FeedPage {
	if pageSize <= 0 {
		pageSize = feed.DefaultPageSize
	}
	return &FeedPage{
		keys:     DefaultKeyMap(),
		list:     scrolltrigger.New(0, 0, renderEntry, scrolltrigger.WithInitialPage[feed.Entry](2)),
		state:    paging.NewPagedState[feed.Entry](),
		gate:     paging.NewGate(debounce),
		fetch:    fetch,
		pageSize: pageSize,
	}
}

func (p *FeedPage) ID() string { return "feed" }

// Init requests the first page. Re-entering the page only restarts the
// spinner; the fetch happens once.
func (p *FeedPage) Init() tea.Cmd {
	if p.started || !p.gate.TryAcquire() {
		return p.list.Init()
	}
	p.started = true
	p.state = paging.Begin(p.state)
	p.lastRequested = 1
	return tea.Batch(p.list.Init(), p.fetchPageCmd(1))
}

// Update handles messages.
func (p *FeedPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.list.SetSize(msg.Width, max(1, msg.Height-chrome))
		return nil, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit), key.Matches(msg, p.keys.ForceQuit):
			return tea.Quit, nil
		case key.Matches(msg, p.keys.Retry):
			return p.retryFailedPage(), nil
		case key.Matches(msg, p.keys.Help):
			return nil, &PageNav{PageID: "help"}
		case key.Matches(msg, p.keys.Top):
			p.list.Viewport.GotoTop()
			return nil, nil
		case key.Matches(msg, p.keys.Bottom):
			// GotoBottom crosses the threshold; route the message through
			// the list so its trigger check runs.
			p.list.Viewport.GotoBottom()
		}
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return cmd, nil

	case scrolltrigger.LoadPageMsg:
		return p.startPageLoad(msg.Page), nil

	case pageLoadedMsg:
		p.applyPageLoaded(msg)
		return nil, nil

	default:
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return cmd, nil
	}
}

// startPageLoad begins fetching the given page, unless the request gate
// drops it. A dropped request clears the list latch so a later scroll
// can raise the request again.
func (p *FeedPage) startPageLoad(page int) tea.Cmd {
	if !p.gate.TryAcquire() {
		p.list.PageFailed()
		return nil
	}
	p.state = paging.Begin(p.state)
	p.lastRequested = page
	return p.fetchPageCmd(page)
}

// retryFailedPage re-requests the last page after a fetch failure.
func (p *FeedPage) retryFailedPage() tea.Cmd {
	if !p.state.Items.IsError() || p.lastRequested == 0 {
		return nil
	}
	if !p.gate.TryAcquire() {
		return nil
	}
	p.state = paging.Begin(p.state)
	return p.fetchPageCmd(p.lastRequested)
}

// applyPageLoaded folds a fetch outcome into the paged state and
// notifies the list.
func (p *FeedPage) applyPageLoaded(msg pageLoadedMsg) {
	p.gate.Release()
	p.state = paging.Resolve(p.state, msg.entries, msg.err, p.pageSize)
	if msg.err != nil {
		p.list.PageFailed()
		return
	}
	p.list.PageCompleted(msg.entries, !p.state.Status.Exhausted())
}

// fetchPageCmd runs the fetch off the update loop. In-flight fetches run
// to completion; there is no cancellation.
func (p *FeedPage) fetchPageCmd(page int) tea.Cmd {
	fetch := p.fetch
	pageSize := p.pageSize
	return func() tea.Msg {
		entries, err := fetch(context.Background(), pageSize, page)
		return pageLoadedMsg{page: page, entries: entries, err: err}
	}
}

func (p *FeedPage) View(width, height int) string {
	if width > 0 && (width != p.width || height != p.height) {
		p.width = width
		p.height = height
		p.list.SetSize(width, max(1, height-chrome))
	}

	body := asyncvalue.Match(p.state.Items, asyncvalue.Cases[[]feed.Entry, string]{
		Initial: func() string {
			return p.centeredNotice("Starting…")
		},
		Loading: func(*asyncvalue.Value[[]feed.Entry]) string {
			if len(p.list.Items()) > 0 {
				return p.list.View()
			}
			return p.centeredNotice("Loading feed…")
		},
		Data: func([]feed.Entry) string {
			return p.list.View()
		},
		Error: func(err error) string {
			if len(p.list.Items()) > 0 {
				return p.list.View()
			}
			return p.centeredNotice(errorStyle.Render(fmt.Sprintf("load failed: %v", err)) + "\n\nPress r to retry, q to quit")
		},
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		p.renderHeader(),
		body,
		p.renderStatusLine(),
	)
}

func (p *FeedPage) renderHeader() string {
	title := titleStyle.Render("Scrollfeed")
	count := countStyle.Render(fmt.Sprintf("  %d entries loaded", p.state.Len()))
	return title + count
}

// renderStatusLine renders the status/help line at the bottom of the screen.
func (p *FeedPage) renderStatusLine() string {
	w := max(p.width, 1)

	var text string
	style := statusBarStyle
	switch {
	case p.state.Items.IsError():
		text = errorStyle.Render(fmt.Sprintf("page %d failed", p.lastRequested)) +
			statusBarStyle.Render(" • r: retry • q: quit")
		return statusBarStyle.Width(w).Render(text)
	case p.state.Status == paging.StatusPaginating:
		style = statusPagingStyle
		text = fmt.Sprintf("fetching page %d…", p.lastRequested)
	case p.state.Status.Exhausted():
		style = statusDoneStyle
		text = fmt.Sprintf("all %d entries loaded", p.state.Len())
	default:
		text = "↑/↓ scroll • PgUp/PgDn page • end: bottom • ?: help • q: quit"
	}
	return style.Width(w).Render(text)
}

func (p *FeedPage) centeredNotice(text string) string {
	h := max(1, p.height-chrome)
	return lipgloss.Place(max(p.width, 1), h, lipgloss.Center, lipgloss.Center, text)
}

// renderEntry renders one feed entry as a single list line.
func renderEntry(_ int, e feed.Entry) string {
	var b strings.Builder
	b.WriteString(entryMetaStyle.Render(fmt.Sprintf("%4d ", e.ID)))
	b.WriteString(entryTitleStyle.Render(e.Title))
	b.WriteString(entryMetaStyle.Render(" · " + e.Author + " · " + e.PostedAt.Format("Jan 02 15:04")))
	if len(e.Tags) > 0 {
		b.WriteString(" " + entryTagStyle.Render("["+strings.Join(e.Tags, ", ")+"]"))
	}
	return b.String()
}
