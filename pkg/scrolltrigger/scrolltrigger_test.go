package scrolltrigger

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func renderLine(_ int, item string) string { return item }

func testItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("row-%03d", i)
	}
	return items
}

func TestThresholdReached(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		offset    float64
		maxExtent float64
		want      bool
	}{
		{"exactly 90 percent", 900, 1000, true},
		{"one short of threshold", 899, 1000, false},
		{"past threshold", 950, 1000, true},
		{"at bottom", 1000, 1000, true},
		{"top", 0, 1000, false},
		{"no measurable extent", 0, 0, false},
		{"content fits", 5, -3, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := thresholdReached(tc.offset, tc.maxExtent, DefaultThreshold); got != tc.want {
				t.Fatalf("thresholdReached(%v, %v) = %v, want %v", tc.offset, tc.maxExtent, got, tc.want)
			}
		})
	}
}

func TestTriggerFiresNearBottom(t *testing.T) {
	t.Parallel()

	m := New(40, 10, renderLine)
	m.SetItems(testItems(50), true)
	m.Viewport.GotoBottom()

	cmd := m.maybeTrigger()
	if cmd == nil {
		t.Fatal("expected trigger at bottom of content")
	}
	msg, ok := cmd().(LoadPageMsg)
	if !ok {
		t.Fatalf("trigger msg = %T, want LoadPageMsg", cmd())
	}
	if msg.Page != 1 {
		t.Fatalf("triggered page = %d, want 1", msg.Page)
	}
	if !m.IsPaging() {
		t.Fatal("latch should be set after trigger")
	}
	if m.Page() != 2 {
		t.Fatalf("next page counter = %d, want 2 (incremented at trigger)", m.Page())
	}
}

func TestLatchPreventsDuplicateTrigger(t *testing.T) {
	t.Parallel()

	m := New(40, 10, renderLine)
	m.SetItems(testItems(50), true)
	m.Viewport.GotoBottom()

	if cmd := m.maybeTrigger(); cmd == nil {
		t.Fatal("expected first trigger")
	}
	// Still at the bottom: the latch must swallow this crossing.
	if cmd := m.maybeTrigger(); cmd != nil {
		t.Fatal("second trigger fired while page load outstanding")
	}

	m.PageCompleted(testItems(10), true)
	m.Viewport.GotoBottom()
	cmd := m.maybeTrigger()
	if cmd == nil {
		t.Fatal("expected trigger after page completion cleared the latch")
	}
	if msg := cmd().(LoadPageMsg); msg.Page != 2 {
		t.Fatalf("second triggered page = %d, want 2", msg.Page)
	}
}

func TestNoTriggerWithoutMeasurableExtent(t *testing.T) {
	t.Parallel()

	// Three items in a ten-line viewport: content fits, nothing to scroll.
	m := New(40, 10, renderLine)
	m.SetItems(testItems(3), true)

	if cmd := m.maybeTrigger(); cmd != nil {
		t.Fatal("trigger fired on a surface with no scroll extent")
	}
}

func TestNoTriggerWhenExhausted(t *testing.T) {
	t.Parallel()

	m := New(40, 10, renderLine)
	m.SetItems(testItems(50), false)
	m.Viewport.GotoBottom()

	if cmd := m.maybeTrigger(); cmd != nil {
		t.Fatal("trigger fired on an exhausted source")
	}
}

func TestPageFailedClearsLatch(t *testing.T) {
	t.Parallel()

	m := New(40, 10, renderLine)
	m.SetItems(testItems(50), true)
	m.Viewport.GotoBottom()

	if cmd := m.maybeTrigger(); cmd == nil {
		t.Fatal("expected trigger")
	}
	m.PageFailed()
	if m.IsPaging() {
		t.Fatal("latch should clear after PageFailed")
	}
	// The counter does not rewind; the caller decides which page to retry.
	if m.Page() != 2 {
		t.Fatalf("page counter = %d, want 2", m.Page())
	}
}

func TestSlotCount(t *testing.T) {
	t.Parallel()

	m := New(40, 10, renderLine)
	m.SetItems(testItems(5), true)
	if got := m.SlotCount(); got != 6 {
		t.Fatalf("slot count with more pages = %d, want 6", got)
	}
	m.SetItems(testItems(5), false)
	if got := m.SlotCount(); got != 5 {
		t.Fatalf("slot count when exhausted = %d, want 5", got)
	}
}

func TestWithInitialPage(t *testing.T) {
	t.Parallel()

	m := New(40, 10, renderLine, WithInitialPage[string](5))
	m.SetItems(testItems(50), true)
	m.Viewport.GotoBottom()

	cmd := m.maybeTrigger()
	if cmd == nil {
		t.Fatal("expected trigger")
	}
	if msg := cmd().(LoadPageMsg); msg.Page != 5 {
		t.Fatalf("triggered page = %d, want 5", msg.Page)
	}
}

func TestViewShowsBoundary(t *testing.T) {
	t.Parallel()

	m := New(40, 10, renderLine)
	m.SetItems(testItems(2), false)
	if view := m.View(); !strings.Contains(view, "end of list") {
		t.Fatalf("exhausted view missing end boundary:\n%s", view)
	}

	m.SetItems(testItems(2), true)
	if view := m.View(); !strings.Contains(view, "Loading more") {
		t.Fatalf("view with more pages missing loading boundary:\n%s", view)
	}
}

func TestUpdateEmitsLoadPageMsg(t *testing.T) {
	t.Parallel()

	m := New(40, 10, renderLine)
	m.SetItems(testItems(50), true)
	m.Viewport.SetYOffset(m.Viewport.TotalLineCount()) // clamped to bottom

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd == nil {
		t.Fatal("expected a command from Update at the bottom")
	}
	if !containsLoadPage(cmd(), 1) {
		t.Fatal("Update command did not carry LoadPageMsg{Page: 1}")
	}
	if !m.IsPaging() {
		t.Fatal("latch should be set after Update triggered a load")
	}
}

// containsLoadPage walks a (possibly batched) message looking for a
// LoadPageMsg with the given page.
func containsLoadPage(msg tea.Msg, page int) bool {
	switch msg := msg.(type) {
	case LoadPageMsg:
		return msg.Page == page
	case tea.BatchMsg:
		for _, cmd := range msg {
			if cmd != nil && containsLoadPage(cmd(), page) {
				return true
			}
		}
	}
	return false
}
