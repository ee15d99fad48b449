// Package screen holds headless view-models for the client screens. Each
// loads its data on Mount and exposes a loading, loaded, empty or error
// state; results that arrive after Unmount or a newer Mount are dropped.
package screen

import (
	"context"
	"sync"
)

// Status is the load state of a screen section.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusEmpty
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusEmpty:
		return "empty"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// View is what a screen section renders.
type View[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Loader runs a fetch per mount and keeps the latest result. A generation
// counter discards results from superseded mounts.
type Loader[T any] struct {
	fetch func(ctx context.Context) (T, error)
	empty func(T) bool

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	view   View[T]
}

// NewLoader creates an idle loader. empty may be nil, in which case a
// successful fetch is always StatusLoaded.
func NewLoader[T any](fetch func(ctx context.Context) (T, error), empty func(T) bool) *Loader[T] {
	return &Loader[T]{fetch: fetch, empty: empty}
}

// Mount starts a load and blocks until it finishes. It returns the view
// after the load; if the load was superseded meanwhile, the returned view is
// whatever the newer mount left.
func (l *Loader[T]) Mount(ctx context.Context) View[T] {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.view = View[T]{Status: StatusLoading}
	l.mu.Unlock()

	data, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return l.view
	}
	l.cancel = nil
	switch {
	case err != nil:
		l.view = View[T]{Status: StatusError, Err: err}
	case l.empty != nil && l.empty(data):
		l.view = View[T]{Status: StatusEmpty, Data: data}
	default:
		l.view = View[T]{Status: StatusLoaded, Data: data}
	}
	return l.view
}

// Unmount cancels any running load and resets the view to idle.
func (l *Loader[T]) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	l.view = View[T]{}
}

// Update applies fn to loaded data, for local changes such as a new post.
// It reports false when nothing is loaded.
func (l *Loader[T]) Update(fn func(T) T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.view.Status != StatusLoaded && l.view.Status != StatusEmpty {
		return false
	}
	data := fn(l.view.Data)
	status := StatusLoaded
	if l.empty != nil && l.empty(data) {
		status = StatusEmpty
	}
	l.view = View[T]{Status: status, Data: data}
	return true
}

// View returns the current view.
func (l *Loader[T]) View() View[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view
}

func emptySlice[E any](s []E) bool { return len(s) == 0 }
