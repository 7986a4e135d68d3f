package repository

import (
	"context"
	"errors"
	"testing"
)

func TestTrackerFrom_Empty(t *testing.T) {
	if TrackerFrom(context.Background()) != nil {
		t.Fatalf("expected no tracker on a bare context")
	}
	ctx := WithTracker(context.Background())
	if TrackerFrom(ctx) == nil {
		t.Fatalf("expected tracker")
	}
}

func TestTracker_FlushOnlyDirtyInOrder(t *testing.T) {
	tr := NewTracker()
	vals := map[int]string{1: "a", 2: "b", 3: "c"}
	var flushed []int

	for _, id := range []int{2, 1, 3} {
		id := id
		tr.track(entryKey{set: "s", id: id}, &entry{
			values: func() []any { return []any{vals[id]} },
			flush: func(context.Context) error {
				flushed = append(flushed, id)
				return nil
			},
		})
	}

	vals[3] = "changed"
	vals[2] = "changed"
	if err := tr.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if len(flushed) != 2 || flushed[0] != 2 || flushed[1] != 3 {
		t.Fatalf("unexpected flush order: %v", flushed)
	}

	flushed = nil
	if err := tr.Flush(context.Background()); err != nil {
		t.Fatalf("second flush: %v", err)
	}
	if len(flushed) != 0 {
		t.Fatalf("clean entries flushed again: %v", flushed)
	}
}

func TestTracker_FlushError(t *testing.T) {
	tr := NewTracker()
	v := "x"
	boom := errors.New("boom")
	tr.track(entryKey{set: "villas", id: 1}, &entry{
		values: func() []any { return []any{v} },
		flush:  func(context.Context) error { return boom },
	})
	v = "y"

	if err := tr.Flush(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped flush error, got %v", err)
	}
}

func TestTracker_Forget(t *testing.T) {
	tr := NewTracker()
	k := entryKey{set: "villas", id: 1}
	tr.track(k, &entry{values: func() []any { return nil }})
	tr.forget(k)
	tr.forget(k)
	if tr.Len() != 0 {
		t.Fatalf("expected empty tracker, got %d", tr.Len())
	}
}
