package repository

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

type trackerCtxKey struct{}

type entryKey struct {
	set string
	id  int
}

type entry struct {
	entity   any
	snapshot []any
	values   func() []any
	flush    func(context.Context) error
}

func (e *entry) dirty() bool {
	return !reflect.DeepEqual(e.snapshot, e.values())
}

// Tracker is a per-request unit of work. Entities read with tracking enabled
// are registered here and written back by Flush when they were modified.
type Tracker struct {
	mu      sync.Mutex
	entries map[entryKey]*entry
	order   []entryKey
}

// NewTracker returns an empty unit of work.
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[entryKey]*entry)}
}

// WithTracker returns a context carrying a fresh Tracker.
func WithTracker(ctx context.Context) context.Context {
	return context.WithValue(ctx, trackerCtxKey{}, NewTracker())
}

// TrackerFrom returns the Tracker attached to ctx, or nil.
func TrackerFrom(ctx context.Context) *Tracker {
	t, _ := ctx.Value(trackerCtxKey{}).(*Tracker)
	return t
}

// Len reports how many entities are tracked.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Tracker) lookup(k entryKey) (*entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[k]
	return e, ok
}

func (t *Tracker) track(k entryKey, e *entry) {
	e.snapshot = e.values()
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[k]; !ok {
		t.order = append(t.order, k)
	}
	t.entries[k] = e
}

func (t *Tracker) forget(k entryKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[k]; !ok {
		return
	}
	delete(t.entries, k)
	for i, o := range t.order {
		if o == k {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Flush writes every modified entity back through its driver, in tracking order.
func (t *Tracker) Flush(ctx context.Context) error {
	t.mu.Lock()
	pending := make([]*entry, 0, len(t.order))
	keys := make([]entryKey, 0, len(t.order))
	for _, k := range t.order {
		if e := t.entries[k]; e.dirty() {
			pending = append(pending, e)
			keys = append(keys, k)
		}
	}
	t.mu.Unlock()

	for i, e := range pending {
		if err := e.flush(ctx); err != nil {
			return fmt.Errorf("flush %s %d: %w", keys[i].set, keys[i].id, err)
		}
		e.snapshot = e.values()
	}
	return nil
}
