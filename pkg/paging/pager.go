package paging

import (
	"context"

	"github.com/jander96/bloc-scroll-paging/pkg/asyncvalue"
)

// FetchFunc retrieves one page of items. Implementations must be
// idempotent per page number and must return fewer than pageSize items
// (or none) only on the final page; that short page is the exhaustion
// signal.
type FetchFunc[T any] func(ctx context.Context, pageSize, page int) ([]T, error)

// Advance runs one pager step: it decides whether this is the first or a
// subsequent load, invokes fetch, and returns the next state. It never
// returns an error and never panics past the fetch boundary: fetch
// failures land in the Error variant of the returned state's Items.
//
//   - Exhausted state: full no-op, fetch is not invoked.
//   - First-ever load (Items still Initial): success replaces the
//     sequence with the first page and marks Completed; failure marks
//     Error + Completed.
//   - Subsequent load: success appends the page in call order; a short
//     or empty page still has its items appended, then the state is
//     marked Exhausted. Failure marks Error + Completed, with the
//     accumulated sequence carried on the Error variant.
func Advance[T any](ctx context.Context, cur PagedState[T], fetch FetchFunc[T], pageSize, page int) PagedState[T] {
	if cur.Status.Exhausted() {
		return cur
	}
	items := asyncvalue.Guard(ctx, func(ctx context.Context) ([]T, error) {
		return fetch(ctx, pageSize, page)
	})
	fetched, _ := items.ValueOK()
	return Resolve(Begin(cur), fetched, items.Err(), pageSize)
}

// Begin is the emit-before-fetch half of Advance, for message-driven UIs
// that want to render an in-flight state while the fetch runs: it marks
// the state Paginating, and on a first load flips Items to Loading
// carrying the previous value. Exhausted states pass through unchanged.
func Begin[T any](cur PagedState[T]) PagedState[T] {
	if cur.Status.Exhausted() {
		return cur
	}
	next := cur
	next.Status = StatusPaginating
	if cur.Items.IsInitial() {
		next.Items = asyncvalue.LoadingFrom(cur.Items)
	}
	return next
}

// Resolve is the post-fetch half of Advance: it applies a fetch outcome
// (fetched page or error) to a state previously advanced with Begin.
// pageSize is the size that was requested; on a subsequent load a
// fetched page shorter than pageSize marks the source exhausted, after
// its items (if any) have been appended.
func Resolve[T any](cur PagedState[T], fetched []T, err error, pageSize int) PagedState[T] {
	if cur.Status.Exhausted() {
		return cur
	}

	if err != nil {
		// The accumulated sequence survives the failure: the Error
		// variant carries it so a successful retry appends to it.
		items := asyncvalue.Err[[]T](err)
		if existing, ok := currentItems(cur.Items); ok {
			items = asyncvalue.ErrFrom(asyncvalue.Data(existing), err)
		}
		return PagedState[T]{
			Items:  items,
			Status: StatusCompleted,
		}
	}

	if isFirstLoad(cur.Items) {
		// First successful fetch sets the sequence; no exhaustion check
		// here, the next call observes the short page.
		return PagedState[T]{
			Items:  asyncvalue.Data(fetched),
			Status: StatusCompleted,
		}
	}

	existing, _ := currentItems(cur.Items)
	merged := make([]T, 0, len(existing)+len(fetched))
	merged = append(merged, existing...)
	merged = append(merged, fetched...)

	status := StatusCompleted
	if len(fetched) < pageSize {
		status = StatusExhausted
	}
	return PagedState[T]{
		Items:  asyncvalue.Data(merged),
		Status: status,
	}
}

// isFirstLoad reports whether no fetch has ever produced an outcome:
// Items is Initial, or Loading that carries nothing but an Initial.
func isFirstLoad[T any](items asyncvalue.Value[[]T]) bool {
	if items.IsInitial() {
		return true
	}
	if !items.IsLoading() {
		return false
	}
	prev, ok := items.Previous()
	return !ok || prev.IsInitial()
}

// currentItems unwraps the accumulated sequence, looking through the
// carry-over of a Loading or Error variant. Only a truly empty state
// yields a nil sequence.
func currentItems[T any](items asyncvalue.Value[[]T]) ([]T, bool) {
	if v, ok := items.ValueOK(); ok {
		return v, true
	}
	if prev, ok := items.Previous(); ok {
		return prev.ValueOK()
	}
	return nil, false
}
