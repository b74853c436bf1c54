// Package asyncvalue provides a four-variant value type for tracking the
// lifecycle of a single asynchronous fetch: not started, in flight,
// succeeded with a value, or failed with an error.
//
// Exactly one variant is active at a time. Consumers either handle every
// variant with [Match], handle a subset with [MaybeMatch], or use the
// accessor methods, which never silently return a zero value for the
// wrong variant.
package asyncvalue

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
)

type kind uint8

const (
	kindInitial kind = iota
	kindLoading
	kindData
	kindError
)

var kindName = map[kind]string{
	kindInitial: "initial",
	kindLoading: "loading",
	kindData:    "data",
	kindError:   "error",
}

// Value is an async lifecycle value. The zero value is Initial.
type Value[T any] struct {
	kind     kind
	data     T
	prev     *Value[T] // Loading/Error: carried previous value for optimistic UI
	progress *float64  // Loading only: optional progress fraction in [0,1]
	err      error
	stack    []byte // Error only: optional captured stack
}

// Initial returns the not-yet-started variant.
func Initial[T any]() Value[T] {
	return Value[T]{kind: kindInitial}
}

// Loading returns the in-flight variant with no carried previous value.
func Loading[T any]() Value[T] {
	return Value[T]{kind: kindLoading}
}

// LoadingFrom returns the in-flight variant carrying prev, so the UI can
// keep showing the last known value (or error) while a refresh runs.
func LoadingFrom[T any](prev Value[T]) Value[T] {
	return Value[T]{kind: kindLoading, prev: &prev}
}

// LoadingProgress returns the in-flight variant carrying prev and a
// progress fraction. Fraction is clamped to [0,1].
func LoadingProgress[T any](prev Value[T], fraction float64) Value[T] {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return Value[T]{kind: kindLoading, prev: &prev, progress: &fraction}
}

// Data returns the succeeded variant holding v.
func Data[T any](v T) Value[T] {
	return Value[T]{kind: kindData, data: v}
}

// Err returns the failed variant holding err.
func Err[T any](err error) Value[T] {
	return Value[T]{kind: kindError, err: err}
}

// ErrTrace returns the failed variant holding err and a captured stack.
func ErrTrace[T any](err error, stack []byte) Value[T] {
	return Value[T]{kind: kindError, err: err, stack: stack}
}

// ErrFrom returns the failed variant holding err and carrying prev as
// the last value seen before the failure, so the UI can keep showing it.
func ErrFrom[T any](prev Value[T], err error) Value[T] {
	return Value[T]{kind: kindError, err: err, prev: &prev}
}

// IsInitial reports whether no fetch has started.
func (v Value[T]) IsInitial() bool { return v.kind == kindInitial }

// IsLoading reports whether a fetch is in flight.
func (v Value[T]) IsLoading() bool { return v.kind == kindLoading }

// IsData reports whether the fetch succeeded.
func (v Value[T]) IsData() bool { return v.kind == kindData }

// IsError reports whether the fetch failed.
func (v Value[T]) IsError() bool { return v.kind == kindError }

// NotLoadedError reports unchecked access to the Data payload of a value
// that is not in the Data variant.
type NotLoadedError struct {
	// State is the name of the variant that was active at access time.
	State string
}

func (e *NotLoadedError) Error() string {
	return fmt.Sprintf("asyncvalue: value not loaded (state %s)", e.State)
}

// Value returns the Data payload. Accessing any other variant returns a
// *NotLoadedError rather than a silent zero value.
func (v Value[T]) Value() (T, error) {
	if v.kind != kindData {
		var zero T
		return zero, &NotLoadedError{State: kindName[v.kind]}
	}
	return v.data, nil
}

// ValueOK is the optional-access accessor: it returns the Data payload
// and true, or the zero value and false for any other variant.
func (v Value[T]) ValueOK() (T, bool) {
	if v.kind != kindData {
		var zero T
		return zero, false
	}
	return v.data, true
}

// Err returns the carried error for the Error variant, nil otherwise.
func (v Value[T]) Err() error {
	if v.kind != kindError {
		return nil
	}
	return v.err
}

// Stack returns the captured stack for the Error variant, if any.
func (v Value[T]) Stack() []byte {
	if v.kind != kindError {
		return nil
	}
	return v.stack
}

// Previous returns the value carried by a Loading or Error variant and
// true, or false when the variant carries nothing.
func (v Value[T]) Previous() (Value[T], bool) {
	if (v.kind != kindLoading && v.kind != kindError) || v.prev == nil {
		return Value[T]{}, false
	}
	return *v.prev, true
}

// Progress returns the Loading progress fraction and true when one was
// supplied.
func (v Value[T]) Progress() (float64, bool) {
	if v.kind != kindLoading || v.progress == nil {
		return 0, false
	}
	return *v.progress, true
}

// String renders the value for debug output.
func (v Value[T]) String() string {
	switch v.kind {
	case kindLoading:
		if v.prev != nil {
			return fmt.Sprintf("Loading(prev=%s)", v.prev.String())
		}
		return "Loading"
	case kindData:
		return fmt.Sprintf("Data(%v)", v.data)
	case kindError:
		return fmt.Sprintf("Error(%v)", v.err)
	default:
		return "Initial"
	}
}

// Equal reports structural per-variant equality: Data compares payloads
// by deep value equality, Loading compares carried previous values, and
// Error compares errors with errors.Is in both directions.
func (v Value[T]) Equal(o Value[T]) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case kindData:
		return reflect.DeepEqual(v.data, o.data)
	case kindLoading:
		if (v.prev == nil) != (o.prev == nil) {
			return false
		}
		if v.prev != nil && !v.prev.Equal(*o.prev) {
			return false
		}
		return true
	case kindError:
		return errors.Is(v.err, o.err) || errors.Is(o.err, v.err)
	default:
		return true
	}
}

// Cases holds one handler per variant for an exhaustive [Match]. All
// four handlers are required; leaving one nil is a programming error.
type Cases[T, R any] struct {
	Initial func() R
	Loading func(prev *Value[T]) R
	Data    func(v T) R
	Error   func(err error) R
}

// Match performs exhaustive case analysis over v. It panics if any
// handler in c is nil, so a forgotten variant fails loudly rather than
// silently falling through.
func Match[T, R any](v Value[T], c Cases[T, R]) R {
	if c.Initial == nil || c.Loading == nil || c.Data == nil || c.Error == nil {
		panic("asyncvalue: Match requires handlers for all four variants")
	}
	switch v.kind {
	case kindLoading:
		return c.Loading(v.prev)
	case kindData:
		return c.Data(v.data)
	case kindError:
		return c.Error(v.err)
	default:
		return c.Initial()
	}
}

// PartialCases holds optional per-variant handlers for [MaybeMatch].
type PartialCases[T, R any] struct {
	Initial func() R
	Loading func(prev *Value[T]) R
	Data    func(v T) R
	Error   func(err error) R
	// OrElse handles every variant without a handler above. Required.
	OrElse func() R
}

// MaybeMatch performs partial case analysis over v, falling back to
// OrElse for variants without a handler. It panics if OrElse is nil.
func MaybeMatch[T, R any](v Value[T], c PartialCases[T, R]) R {
	if c.OrElse == nil {
		panic("asyncvalue: MaybeMatch requires an OrElse fallback")
	}
	switch v.kind {
	case kindLoading:
		if c.Loading != nil {
			return c.Loading(v.prev)
		}
	case kindData:
		if c.Data != nil {
			return c.Data(v.data)
		}
	case kindError:
		if c.Error != nil {
			return c.Error(v.err)
		}
	default:
		if c.Initial != nil {
			return c.Initial()
		}
	}
	return c.OrElse()
}

// Guard runs f and converts its outcome to a Value: Data on success,
// Error on failure. A panic inside f is recovered and converted to an
// Error carrying the panic value and its stack. Guard never propagates
// an error or panic to the caller.
func Guard[T any](ctx context.Context, f func(ctx context.Context) (T, error)) (out Value[T]) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", r)
			}
			out = ErrTrace[T](err, debug.Stack())
		}
	}()
	v, err := f(ctx)
	if err != nil {
		return ErrTrace[T](err, nil)
	}
	return Data(v)
}

// MapData applies f to the Data payload, producing a new Data value. A
// panic inside f is converted to Error with the captured stack. The
// other variants pass through re-typed only: a mapped Loading does not
// carry a previous value, since transforming it would require value
// access.
func MapData[T, U any](v Value[T], f func(T) U) (out Value[U]) {
	switch v.kind {
	case kindData:
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				out = ErrTrace[U](err, debug.Stack())
			}
		}()
		return Data(f(v.data))
	case kindLoading:
		if v.progress != nil {
			return Value[U]{kind: kindLoading, progress: v.progress}
		}
		return Loading[U]()
	case kindError:
		return ErrTrace[U](v.err, v.stack)
	default:
		return Initial[U]()
	}
}
