package gallery

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/ytget/art-gallery/internal/model"
)

// ErrBusy is returned by LoadMore while another page is loading
var ErrBusy = errors.New("feed is busy")

// Page is one fetched page. Total is the number of items the source reports
// (0 if unknown); Last marks the final page. Items may be filtered, so a page
// can be empty while more pages remain.
type Page[T any] struct {
	Items []T
	Total int
	Last  bool
}

// PageFunc fetches the given 1-based page
type PageFunc[T any] func(ctx context.Context, page int) (Page[T], error)

// FeedOptions configure a Feed
type FeedOptions[T any] struct {
	// Key identifies items for de-duplication across pages. Nil disables it.
	Key func(T) string
	// OnChange is invoked after every state transition, outside the lock
	OnChange func()
}

// Feed is a paginated list loader. Pages are requested one at a time; the
// page counter only advances when a page loads successfully.
type Feed[T any] struct {
	mu       sync.Mutex
	fetch    PageFunc[T]
	key      func(T) string
	onChange func()

	items []T
	seen  map[string]struct{}
	page  int
	total int
	state model.LoadState
	err   error
	gen   int
}

// NewFeed creates an idle feed
func NewFeed[T any](fetch PageFunc[T], opts FeedOptions[T]) *Feed[T] {
	return &Feed[T]{
		fetch:    fetch,
		key:      opts.Key,
		onChange: opts.OnChange,
		seen:     make(map[string]struct{}),
		state:    model.LoadStateIdle,
	}
}

// SetOnChange replaces the change callback
func (f *Feed[T]) SetOnChange(fn func()) {
	f.mu.Lock()
	f.onChange = fn
	f.mu.Unlock()
}

// Load fetches the first page. It does nothing unless the feed is idle.
func (f *Feed[T]) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.state != model.LoadStateIdle {
		f.mu.Unlock()
		return nil
	}
	gen := f.begin(model.LoadStateLoading)
	f.mu.Unlock()

	f.notify()
	return f.run(ctx, gen, 1)
}

// Refresh drops all items and fetches the first page again. A load already in
// flight is superseded and its result discarded.
func (f *Feed[T]) Refresh(ctx context.Context) error {
	f.mu.Lock()
	f.items = nil
	f.seen = make(map[string]struct{})
	f.page = 0
	f.total = 0
	gen := f.begin(model.LoadStateRefreshing)
	f.mu.Unlock()

	f.notify()
	return f.run(ctx, gen, 1)
}

// LoadMore fetches the next page. It returns ErrBusy while a load is in
// flight and does nothing once the feed is exhausted. After an error it
// retries the page that failed.
func (f *Feed[T]) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	switch {
	case f.state.IsActive():
		f.mu.Unlock()
		return ErrBusy
	case f.state == model.LoadStateExhausted:
		f.mu.Unlock()
		return nil
	case f.state == model.LoadStateIdle:
		f.mu.Unlock()
		return f.Load(ctx)
	}
	gen := f.begin(model.LoadStateLoadingMore)
	next := f.page + 1
	f.mu.Unlock()

	f.notify()
	return f.run(ctx, gen, next)
}

// begin starts a new load generation. Caller holds f.mu.
func (f *Feed[T]) begin(state model.LoadState) int {
	f.gen++
	f.state = state
	f.err = nil
	return f.gen
}

func (f *Feed[T]) run(ctx context.Context, gen, page int) error {
	result, err := f.fetch(ctx, page)

	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return nil
	}

	if err != nil {
		f.state = model.LoadStateError
		f.err = err
		f.mu.Unlock()
		f.notify()
		return err
	}

	f.page = page
	if result.Total > 0 {
		f.total = result.Total
	}
	for _, item := range result.Items {
		if f.key != nil {
			k := f.key(item)
			if _, dup := f.seen[k]; dup {
				continue
			}
			f.seen[k] = struct{}{}
		}
		f.items = append(f.items, item)
	}

	// Sources filter pages, so an empty page only ends a feed without a total
	exhausted := result.Last ||
		(f.total == 0 && len(result.Items) == 0) ||
		(f.total > 0 && len(f.items) >= f.total)
	if exhausted {
		f.state = model.LoadStateExhausted
	} else {
		f.state = model.LoadStateReady
	}
	f.mu.Unlock()

	f.notify()
	return nil
}

func (f *Feed[T]) notify() {
	f.mu.Lock()
	fn := f.onChange
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Items returns a snapshot of the loaded items
func (f *Feed[T]) Items() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items)
}

// Len returns the number of loaded items
func (f *Feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// State returns the current load state
func (f *Feed[T]) State() model.LoadState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Total returns the item count reported by the source, 0 if unknown
func (f *Feed[T]) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// Page returns the last successfully loaded page, 0 before the first
func (f *Feed[T]) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// Err returns the error of the last failed load
func (f *Feed[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
