package paging

import "time"

// Gate rate-limits a stream of page requests with a drop-newest policy:
// a request is rejected while a previous one is still being processed,
// or when it arrives within the debounce window of the last accepted
// request. Rejected requests are dropped, never queued.
//
// Gate is caller-visible single-flight state, not a mutex: it is meant
// for the cooperative single-goroutine model of a TUI update loop. An
// accepted request runs to completion; Gate does not cancel.
type Gate struct {
	window time.Duration
	busy   bool
	last   time.Time
	now    func() time.Time
}

// NewGate returns a Gate with the given debounce window. A zero window
// disables debouncing, leaving only the busy check.
func NewGate(window time.Duration) *Gate {
	return &Gate{
		window: window,
		now:    time.Now,
	}
}

// TryAcquire reports whether a new request may start. On success the
// gate is busy until Release is called.
func (g *Gate) TryAcquire() bool {
	if g.busy {
		return false
	}
	now := g.now()
	if g.window > 0 && !g.last.IsZero() && now.Sub(g.last) < g.window {
		return false
	}
	g.busy = true
	g.last = now
	return true
}

// Release marks the in-flight request finished, allowing the next
// acquisition once the debounce window has passed.
func (g *Gate) Release() {
	g.busy = false
}

// Busy reports whether a request is currently being processed.
func (g *Gate) Busy() bool {
	return g.busy
}
