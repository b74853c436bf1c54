// Package paging provides the state machine and orchestration routine
// behind incrementally loaded lists: a pagination status enum, a
// composite paged state holding the accumulated items, the pager routine
// that advances it one fetch at a time, and a request gate implementing
// a drop-newest-while-busy policy.
package paging

// Status tracks the lifecycle of page fetches for one paginated list,
// independent of whether the data fetch itself succeeded or failed.
type Status int

const (
	// StatusIdle means no page request is active.
	StatusIdle Status = iota
	// StatusPaginating means a page request is in flight.
	StatusPaginating
	// StatusCompleted means the last page request finished and more
	// pages may exist.
	StatusCompleted
	// StatusExhausted means the source has no further pages. Terminal:
	// no further fetches should be attempted.
	StatusExhausted
)

var statusName = map[Status]string{
	StatusIdle:       "idle",
	StatusPaginating: "paginating",
	StatusCompleted:  "completed",
	StatusExhausted:  "exhausted",
}

func (s Status) String() string {
	return statusName[s]
}

// Completed reports whether the last page request finished while more
// pages may still exist.
func (s Status) Completed() bool {
	return s == StatusCompleted
}

// Exhausted reports whether the source has no further pages.
func (s Status) Exhausted() bool {
	return s == StatusExhausted
}
