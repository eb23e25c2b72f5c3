// Package fetch provides small state machines for loading remote
// collections and single records.
//
// A ListController tracks one remote collection through the states
// Idle -> Loading -> Loaded/Failed. Every Reload is stamped with a
// monotonically increasing sequence number and only the most recent
// reload may apply its result, so overlapping reloads can never publish
// a stale collection over a fresh one. A DetailController tracks a
// single record with a distinct NotFound terminal state and an optional
// secondary collection whose failure never takes down the primary.
package fetch

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound signals that the requested record does not exist. Fetch
// functions return it (possibly wrapped) to drive a DetailController
// into the NotFound state instead of Failed.
var ErrNotFound = errors.New("not found")

// State enumerates the lifecycle of a controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	case StateNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// ListFunc loads a collection.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// ListController manages one remote collection.
type ListController[T any] struct {
	mu    sync.Mutex
	fn    ListFunc[T]
	seq   uint64
	state State
	items []T
	err   error
}

// NewListController returns an idle controller that loads via fn.
func NewListController[T any](fn ListFunc[T]) *ListController[T] {
	return &ListController[T]{fn: fn, state: StateIdle}
}

// Reload runs the fetch function and applies the result if no newer
// reload has started in the meantime. A stale completion, whether it
// succeeded or failed, is discarded without touching the state. On
// failure the collection is emptied; consumers never see stale rows
// next to an error.
func (c *ListController[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = StateLoading
	fn := c.fn
	c.mu.Unlock()

	items, err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// A newer reload owns the state now.
		return nil
	}

	if err != nil {
		c.state = StateFailed
		c.items = nil
		c.err = err
		return err
	}

	c.state = StateLoaded
	c.items = items
	c.err = nil
	return nil
}

// State returns the current lifecycle state.
func (c *ListController[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns the current collection. Empty unless the state is Loaded.
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Err returns the error from the most recent failed reload, or nil.
func (c *ListController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// DetailFunc loads a single record.
type DetailFunc[P any] func(ctx context.Context) (P, error)

// SecondaryFunc loads a related collection for a loaded primary record.
// Returning (nil, nil) is valid when the primary carries no join key.
type SecondaryFunc[P, S any] func(ctx context.Context, primary P) ([]S, error)

// DetailController manages a single remote record plus an optional
// related collection.
type DetailController[P, S any] struct {
	mu        sync.Mutex
	primary   DetailFunc[P]
	secondary SecondaryFunc[P, S]
	state     State
	value     P
	related   []S
	err       error
}

// NewDetailController returns an idle controller for a single record.
func NewDetailController[P, S any](primary DetailFunc[P]) *DetailController[P, S] {
	return &DetailController[P, S]{primary: primary, state: StateIdle}
}

// WithSecondary attaches a related-collection fetch that runs after the
// primary loads. Its failure degrades to an empty collection.
func (c *DetailController[P, S]) WithSecondary(fn SecondaryFunc[P, S]) *DetailController[P, S] {
	c.secondary = fn
	return c
}

// Load fetches the record. Loaded and NotFound are terminal: a second
// Load returns immediately. A failed load may be retried.
func (c *DetailController[P, S]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateLoaded || c.state == StateNotFound || c.state == StateLoading {
		c.mu.Unlock()
		return nil
	}
	c.state = StateLoading
	primary := c.primary
	secondary := c.secondary
	c.mu.Unlock()

	value, err := primary(ctx)
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if errors.Is(err, ErrNotFound) {
			c.state = StateNotFound
			c.err = nil
			return nil
		}
		c.state = StateFailed
		c.err = err
		return err
	}

	var related []S
	if secondary != nil {
		// Tolerated: a broken related lookup must not fail the record.
		if items, serr := secondary(ctx, value); serr == nil {
			related = items
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateLoaded
	c.value = value
	c.related = related
	c.err = nil
	return nil
}

// State returns the current lifecycle state.
func (c *DetailController[P, S]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Value returns the loaded record. Meaningful only in the Loaded state.
func (c *DetailController[P, S]) Value() P {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Related returns the secondary collection, empty when the secondary
// fetch failed or never ran.
func (c *DetailController[P, S]) Related() []S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.related
}

// Err returns the error from the most recent failed load, or nil.
func (c *DetailController[P, S]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
