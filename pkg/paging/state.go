package paging

import "github.com/jander96/bloc-scroll-paging/pkg/asyncvalue"

// PagedState is the full view-model for one paginated list: the
// accumulated items wrapped in their async lifecycle, plus the page
// fetch status.
//
// Accumulation only appends: once data exists, successful fetches
// concatenate onto the existing ordered sequence. Only the very first
// successful fetch sets the initial sequence. PagedState is advanced
// exclusively through [Advance] (or the [Begin]/[Resolve] pair); UI
// components read it but never write it directly.
type PagedState[T any] struct {
	Items  asyncvalue.Value[[]T]
	Status Status
}

// NewPagedState returns the starting state: no fetch started, idle.
func NewPagedState[T any]() PagedState[T] {
	return PagedState[T]{
		Items:  asyncvalue.Initial[[]T](),
		Status: StatusIdle,
	}
}

// Len returns the number of accumulated items, looking through the
// carried value of an in-flight or failed fetch. Zero when no data
// exists anywhere.
func (s PagedState[T]) Len() int {
	items, ok := currentItems(s.Items)
	if !ok {
		return 0
	}
	return len(items)
}
