// Package memory provides an in-process storage driver used by tests and by
// STORE_DRIVER=memory for ephemeral environments.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/query"
	"github.com/magicvilla/villa-api/internal/core/repository"
)

var _ repository.Driver[domain.Villa] = (*Driver[domain.Villa])(nil)

// Driver keeps rows in a map keyed by identity. Unique columns are enforced
// case-insensitively; references between entity types are not.
type Driver[T any] struct {
	mu     sync.RWMutex
	schema repository.Schema[T]
	rows   map[int]T
	nextID int
}

// NewDriver returns an empty Driver for schema.
func NewDriver[T any](schema repository.Schema[T]) *Driver[T] {
	return &Driver[T]{schema: schema, rows: make(map[int]T)}
}

func (d *Driver[T]) Find(_ context.Context, filter query.Filter, limit int) ([]T, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range d.sortedIDs() {
		row := d.rows[id]
		if !filter.Match(d.schema.Fields(&row)) {
			continue
		}
		out = append(out, row)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (d *Driver[T]) Insert(_ context.Context, entity *T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.schema.GeneratedKey {
		if err := d.checkUnique(entity, 0); err != nil {
			return err
		}
		d.nextID++
		d.schema.SetID(entity, d.nextID)
	} else {
		id := d.schema.ID(entity)
		if _, exists := d.rows[id]; exists {
			return fmt.Errorf("%w: %s %d already exists", domain.ErrConflict, d.schema.Key, id)
		}
		if err := d.checkUnique(entity, id); err != nil {
			return err
		}
	}
	d.rows[d.schema.ID(entity)] = *entity
	return nil
}

func (d *Driver[T]) Update(_ context.Context, entity *T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.schema.ID(entity)
	stored, ok := d.rows[id]
	if !ok {
		return fmt.Errorf("%s %d: %w", d.schema.Name, id, domain.ErrNotFound)
	}
	if err := d.checkUnique(entity, id); err != nil {
		return err
	}

	dst := d.schema.Pointers(&stored)
	src := d.schema.Values(entity)
	for _, i := range d.schema.Mutable() {
		reflect.ValueOf(dst[i]).Elem().Set(reflect.ValueOf(src[i]))
	}
	d.rows[id] = stored
	return nil
}

func (d *Driver[T]) Delete(_ context.Context, id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.rows[id]; !ok {
		return fmt.Errorf("%s %d: %w", d.schema.Name, id, domain.ErrNotFound)
	}
	delete(d.rows, id)
	return nil
}

// Ping always succeeds.
func (d *Driver[T]) Ping(context.Context) error { return nil }

func (d *Driver[T]) sortedIDs() []int {
	ids := make([]int, 0, len(d.rows))
	for id := range d.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// checkUnique reports a conflict when another row (not skipID) shares a
// unique column value with entity.
func (d *Driver[T]) checkUnique(entity *T, skipID int) error {
	if len(d.schema.Unique) == 0 {
		return nil
	}
	fields := d.schema.Fields(entity)
	for id, row := range d.rows {
		if id == skipID {
			continue
		}
		other := d.schema.Fields(&row)
		for _, col := range d.schema.Unique {
			a, _ := fields[col].(string)
			b, _ := other[col].(string)
			if strings.EqualFold(a, b) {
				return fmt.Errorf("%w: %s %q already exists", domain.ErrConflict, col, a)
			}
		}
	}
	return nil
}
