// Package repository implements the generic data-access layer shared by every
// resource: filtered reads, tracked and untracked reads, and immediate-commit
// writes over a pluggable storage Driver.
package repository

import (
	"context"
	"fmt"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/query"
)

// Driver is implemented by each storage backend.
//
// Find returns detached copies ordered by key ascending; limit <= 0 means no
// limit. Insert assigns the key when the schema generates it. Update rewrites
// the mutable columns of the row with the entity's key. Update and Delete
// return domain.ErrNotFound when no row has that key; unique and reference
// violations are reported as domain.ErrConflict.
type Driver[T any] interface {
	Find(ctx context.Context, filter query.Filter, limit int) ([]T, error)
	Insert(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int) error
}

// Repository provides CRUD and filtered queries over one entity type.
type Repository[T any] struct {
	driver Driver[T]
	schema Schema[T]
}

// New builds a Repository for the given driver and schema.
func New[T any](driver Driver[T], schema Schema[T]) *Repository[T] {
	return &Repository[T]{driver: driver, schema: schema}
}

// Schema returns the entity descriptor the repository was built with.
func (r *Repository[T]) Schema() Schema[T] {
	return r.schema
}

// List returns every entity matching filter. A nil filter returns all entities.
func (r *Repository[T]) List(ctx context.Context, filter query.Filter) ([]T, error) {
	items, err := r.driver.Find(ctx, filter, 0)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Name, err)
	}
	return items, nil
}

// Get returns the single entity matching filter, or nil when none matches.
//
// With tracked set and a Tracker in ctx, the entity joins the unit of work:
// later tracked reads of the same key return the same instance and Save
// persists its modifications. Otherwise the result is a detached copy.
func (r *Repository[T]) Get(ctx context.Context, filter query.Filter, tracked bool) (*T, error) {
	items, err := r.driver.Find(ctx, filter, 2)
	if err != nil {
		return nil, fmt.Errorf("get %s where %s: %w", r.schema.Name, filter, err)
	}
	switch len(items) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, fmt.Errorf("get %s where %s: %w", r.schema.Name, filter, domain.ErrAmbiguous)
	}

	found := items[0]
	if !tracked {
		return &found, nil
	}
	t := TrackerFrom(ctx)
	if t == nil {
		return &found, nil
	}
	if e, ok := t.lookup(r.key(&found)); ok {
		return e.entity.(*T), nil
	}
	r.track(t, &found)
	return &found, nil
}

// Create inserts entity and commits. Store-generated keys are assigned by the
// driver and written back into entity; any key set by the caller is ignored.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if r.schema.GeneratedKey {
		r.schema.SetID(entity, 0)
	}
	if err := r.driver.Insert(ctx, entity); err != nil {
		return fmt.Errorf("create %s: %w", r.schema.Name, err)
	}
	if t := TrackerFrom(ctx); t != nil {
		r.track(t, entity)
	}
	return r.Save(ctx)
}

// Remove deletes entity by key and commits.
func (r *Repository[T]) Remove(ctx context.Context, entity *T) error {
	id := r.schema.ID(entity)
	if err := r.driver.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove %s %d: %w", r.schema.Name, id, err)
	}
	if t := TrackerFrom(ctx); t != nil {
		t.forget(r.key(entity))
	}
	return r.Save(ctx)
}

// Save flushes pending modifications of tracked entities.
func (r *Repository[T]) Save(ctx context.Context) error {
	t := TrackerFrom(ctx)
	if t == nil {
		return nil
	}
	return t.Flush(ctx)
}

// replace overwrites the mutable columns of the stored row with entity's
// values, then reloads the row into entity and into any tracked instance.
func (r *Repository[T]) replace(ctx context.Context, entity *T) error {
	id := r.schema.ID(entity)
	if err := r.driver.Update(ctx, entity); err != nil {
		return fmt.Errorf("update %s %d: %w", r.schema.Name, id, err)
	}

	items, err := r.driver.Find(ctx, query.Eq(r.schema.Key, id), 1)
	if err != nil {
		return fmt.Errorf("reload %s %d: %w", r.schema.Name, id, err)
	}
	if len(items) == 0 {
		return fmt.Errorf("reload %s %d: %w", r.schema.Name, id, domain.ErrNotFound)
	}
	*entity = items[0]

	if t := TrackerFrom(ctx); t != nil {
		if e, ok := t.lookup(r.key(entity)); ok {
			if tracked := e.entity.(*T); tracked != entity {
				*tracked = items[0]
			}
			e.snapshot = e.values()
		}
	}
	return nil
}

func (r *Repository[T]) key(e *T) entryKey {
	return entryKey{set: r.schema.Name, id: r.schema.ID(e)}
}

func (r *Repository[T]) track(t *Tracker, e *T) {
	t.track(r.key(e), &entry{
		entity: e,
		values: func() []any { return r.schema.Values(e) },
		flush:  func(ctx context.Context) error { return r.driver.Update(ctx, e) },
	})
}
