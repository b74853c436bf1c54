package paging

import (
	"testing"
	"time"
)

// fakeClock drives a Gate deterministically.
type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time { return c.at }

func (c *fakeClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func newTestGate(window time.Duration) (*Gate, *fakeClock) {
	clock := &fakeClock{at: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	g := NewGate(window)
	g.now = clock.now
	return g, clock
}

func TestGate_DropsWhileBusy(t *testing.T) {
	t.Parallel()

	g, _ := newTestGate(0)

	if !g.TryAcquire() {
		t.Fatal("first acquisition should succeed")
	}
	if g.TryAcquire() {
		t.Fatal("acquisition while busy should be dropped")
	}
	g.Release()
	if !g.TryAcquire() {
		t.Fatal("acquisition after release should succeed")
	}
}

func TestGate_DebounceWindow(t *testing.T) {
	t.Parallel()

	g, clock := newTestGate(100 * time.Millisecond)

	if !g.TryAcquire() {
		t.Fatal("first acquisition should succeed")
	}
	g.Release()

	clock.advance(50 * time.Millisecond)
	if g.TryAcquire() {
		t.Fatal("acquisition inside the debounce window should be dropped")
	}

	clock.advance(50 * time.Millisecond)
	if !g.TryAcquire() {
		t.Fatal("acquisition after the debounce window should succeed")
	}
}

func TestGate_ZeroWindowOnlyChecksBusy(t *testing.T) {
	t.Parallel()

	g, _ := newTestGate(0)

	for i := 0; i < 3; i++ {
		if !g.TryAcquire() {
			t.Fatalf("acquisition %d should succeed with a zero window", i)
		}
		g.Release()
	}
}

func TestGate_Busy(t *testing.T) {
	t.Parallel()

	g, _ := newTestGate(0)
	if g.Busy() {
		t.Fatal("new gate should not be busy")
	}
	g.TryAcquire()
	if !g.Busy() {
		t.Fatal("gate should be busy after acquisition")
	}
	g.Release()
	if g.Busy() {
		t.Fatal("gate should not be busy after release")
	}
}
