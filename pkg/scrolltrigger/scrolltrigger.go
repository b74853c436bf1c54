// Package scrolltrigger provides an infinite-scroll Bubble Tea component:
// a viewport-backed item list that emits a load-next-page message when
// the scroll position nears the bottom of the content.
//
// The component owns a single-flight latch, so a second threshold
// crossing while a page is already loading is a no-op, and a monotonic
// page counter handed to the emitted message. It renders the items plus
// one trailing boundary slot: a spinner line while more pages may exist,
// an end-of-list line once the source is exhausted.
package scrolltrigger

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultThreshold is the fraction of the maximum scroll extent at which
// the next page load triggers.
const DefaultThreshold = 0.9

// LoadPageMsg requests that the caller fetch the given page. The caller
// is expected to run the fetch and report back via PageCompleted or
// PageFailed.
type LoadPageMsg struct {
	Page int
}

// Model is the infinite-scroll list component. Create one with New and
// drive it like any other Bubble Tea component.
type Model[T any] struct {
	// Viewport is the underlying scroll surface. Exposed so callers can
	// tune key bindings or mouse wheel behavior.
	Viewport viewport.Model

	// RenderItem renders one item to a line (or block) of text.
	RenderItem func(index int, item T) string
	// RenderLoading renders the trailing boundary while more pages may
	// exist. When nil, a spinner line is used.
	RenderLoading func() string
	// RenderEnd renders the trailing boundary once the source is
	// exhausted. When nil, a styled end-of-list line is used.
	RenderEnd func() string

	styles    Styles
	spinner   spinner.Model
	items     []T
	hasMore   bool
	isPaging  bool
	page      int
	threshold float64
}

// Option configures a Model.
type Option[T any] func(*Model[T])

// WithInitialPage sets the first page number the trigger will request.
// The default is 1.
func WithInitialPage[T any](page int) Option[T] {
	return func(m *Model[T]) {
		m.page = page
	}
}

// WithThreshold sets the trigger fraction of the maximum scroll extent.
// Values outside (0, 1] fall back to DefaultThreshold.
func WithThreshold[T any](fraction float64) Option[T] {
	return func(m *Model[T]) {
		if fraction > 0 && fraction <= 1 {
			m.threshold = fraction
		}
	}
}

// WithStyles overrides the default boundary styles.
func WithStyles[T any](s Styles) Option[T] {
	return func(m *Model[T]) {
		m.styles = s
	}
}

// New creates a scroll-trigger list with the given viewport dimensions.
// The component starts with no items and assumes more pages exist.
func New[T any](width, height int, renderItem func(index int, item T) string, opts ...Option[T]) Model[T] {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := Model[T]{
		Viewport:   viewport.New(width, height),
		RenderItem: renderItem,
		styles:     styles,
		spinner:    sp,
		hasMore:    true,
		page:       1,
		threshold:  DefaultThreshold,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refreshContent()
	return m
}

// Init starts the boundary spinner.
func (m Model[T]) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles scroll input and spinner ticks. Any message that moves
// the viewport may emit a LoadPageMsg command.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	var cmds []tea.Cmd

	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		if m.hasMore {
			cmds = append(cmds, cmd)
			m.refreshContent()
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if trigger := m.maybeTrigger(); trigger != nil {
		cmds = append(cmds, trigger)
	}
	return m, tea.Batch(cmds...)
}

// View renders the scroll surface.
func (m Model[T]) View() string {
	return m.Viewport.View()
}

// SetSize resizes the viewport and re-renders content.
func (m *Model[T]) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
	m.refreshContent()
}

// SetItems replaces the item list, typically after the first page load.
// hasMore reports whether further pages may exist.
func (m *Model[T]) SetItems(items []T, hasMore bool) {
	m.items = append([]T(nil), items...)
	m.hasMore = hasMore
	m.isPaging = false
	m.refreshContent()
}

// PageCompleted appends a fetched page, records whether more pages may
// exist, and clears the single-flight latch so the next threshold
// crossing can trigger another fetch.
func (m *Model[T]) PageCompleted(page []T, hasMore bool) {
	m.items = append(m.items, page...)
	m.hasMore = hasMore
	m.isPaging = false
	m.refreshContent()
}

// PageFailed clears the latch without touching the items, so the user
// can scroll to retrigger the failed page.
func (m *Model[T]) PageFailed() {
	m.isPaging = false
}

// Items returns the accumulated items.
func (m Model[T]) Items() []T {
	return m.items
}

// Page returns the next page number the trigger will request.
func (m Model[T]) Page() int {
	return m.page
}

// IsPaging reports whether a triggered page load is still outstanding.
func (m Model[T]) IsPaging() bool {
	return m.isPaging
}

// HasMore reports whether further pages may exist.
func (m Model[T]) HasMore() bool {
	return m.hasMore
}

// SlotCount returns the number of rendered slots: the item count, plus
// the trailing boundary slot while the source is not exhausted.
func (m Model[T]) SlotCount() int {
	if !m.hasMore {
		return len(m.items)
	}
	return len(m.items) + 1
}

// maybeTrigger fires the page request when the scroll position has
// reached the threshold and no request is outstanding. The page counter
// increments at trigger time, so Page always names the next page to
// request.
func (m *Model[T]) maybeTrigger() tea.Cmd {
	if m.isPaging || !m.hasMore {
		return nil
	}

	offset := float64(m.Viewport.YOffset)
	maxExtent := float64(m.Viewport.TotalLineCount() - m.Viewport.Height)
	if !thresholdReached(offset, maxExtent, m.threshold) {
		return nil
	}

	m.isPaging = true
	page := m.page
	m.page++
	return func() tea.Msg {
		return LoadPageMsg{Page: page}
	}
}

// thresholdReached reports whether offset has reached the trigger
// fraction of the maximum scroll extent. A non-positive extent means the
// surface has no measurable scroll range yet, which never counts as
// "at the bottom".
func thresholdReached(offset, maxExtent, fraction float64) bool {
	if maxExtent <= 0 {
		return false
	}
	return offset >= fraction*maxExtent
}

// refreshContent re-renders items plus the boundary slot into the
// viewport, preserving the scroll offset.
func (m *Model[T]) refreshContent() {
	var b strings.Builder
	for i, item := range m.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderItem(i, item))
	}

	if len(m.items) > 0 {
		b.WriteByte('\n')
	}
	if m.hasMore {
		b.WriteString(m.renderLoadingBoundary())
	} else {
		b.WriteString(m.renderEndBoundary())
	}

	offset := m.Viewport.YOffset
	m.Viewport.SetContent(b.String())
	m.Viewport.SetYOffset(offset)
}

func (m *Model[T]) renderItem(index int, item T) string {
	if m.RenderItem == nil {
		return ""
	}
	return m.RenderItem(index, item)
}

func (m *Model[T]) renderLoadingBoundary() string {
	if m.RenderLoading != nil {
		return m.RenderLoading()
	}
	return m.spinner.View() + m.styles.LoadingText.Render("Loading more…")
}

func (m *Model[T]) renderEndBoundary() string {
	if m.RenderEnd != nil {
		return m.RenderEnd()
	}
	return m.styles.EndText.Render("— end of list —")
}
