package sqlstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/query"
	"github.com/magicvilla/villa-api/internal/core/repository"
	"github.com/magicvilla/villa-api/internal/infrastructure/db/sqlstore"
)

type drivers struct {
	villas  *sqlstore.Driver[domain.Villa]
	numbers *sqlstore.Driver[domain.VillaNumber]
	users   *sqlstore.Driver[domain.User]
}

func openSQLite(t *testing.T) drivers {
	t.Helper()
	db, err := sqlstore.Open(context.Background(), sqlstore.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return drivers{
		villas:  sqlstore.NewDriver(db, sqlstore.SQLite, repository.VillaSchema),
		numbers: sqlstore.NewDriver(db, sqlstore.SQLite, repository.VillaNumberSchema),
		users:   sqlstore.NewDriver(db, sqlstore.SQLite, repository.UserSchema),
	}
}

func newVilla(name string) *domain.Villa {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	return &domain.Villa{Name: name, Rate: 150.5, Sqft: 800, Occupancy: 4, CreatedAt: now, UpdatedAt: now}
}

func TestDriver_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	d := openSQLite(t)

	v := newVilla("Pool House")
	if err := d.villas.Insert(ctx, v); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if v.ID <= 0 {
		t.Fatalf("expected generated id, got %d", v.ID)
	}

	rows, err := d.villas.Find(ctx, query.Eq(repository.ColVillaID, v.ID), 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got := rows[0]
	if got.Name != "Pool House" || got.Rate != 150.5 || got.Occupancy != 4 {
		t.Fatalf("unexpected row: %+v", got)
	}
	if !got.CreatedAt.Equal(v.CreatedAt) {
		t.Fatalf("created date round trip: got %v want %v", got.CreatedAt, v.CreatedAt)
	}

	rows, err = d.villas.Find(ctx, query.EqFold(repository.ColVillaName, "POOL HOUSE"), 0)
	if err != nil || len(rows) != 1 {
		t.Fatalf("case-insensitive find: rows=%d err=%v", len(rows), err)
	}
}

func TestDriver_FindOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	d := openSQLite(t)
	for _, name := range []string{"c", "a", "b"} {
		if err := d.villas.Insert(ctx, newVilla(name)); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	rows, err := d.villas.Find(ctx, nil, 2)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 2 || rows[0].Name != "c" || rows[1].Name != "a" {
		t.Fatalf("expected first two rows by id, got %+v", rows)
	}
}

func TestDriver_UniqueNameConflict(t *testing.T) {
	ctx := context.Background()
	d := openSQLite(t)
	if err := d.villas.Insert(ctx, newVilla("Pool House")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	err := d.villas.Insert(ctx, newVilla("pool house"))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if err := d.users.Insert(ctx, &domain.User{UserName: "Alice", PasswordHash: "x", Role: "admin"}); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if err := d.users.Insert(ctx, &domain.User{UserName: "alice", PasswordHash: "y"}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected user conflict, got %v", err)
	}
}

func TestDriver_VillaNumberReferences(t *testing.T) {
	ctx := context.Background()
	d := openSQLite(t)
	v := newVilla("Pool House")
	if err := d.villas.Insert(ctx, v); err != nil {
		t.Fatalf("insert villa: %v", err)
	}

	now := time.Now().UTC()
	n := &domain.VillaNumber{VillaNo: 101, VillaID: v.ID, CreatedAt: now, UpdatedAt: now}
	if err := d.numbers.Insert(ctx, n); err != nil {
		t.Fatalf("insert number: %v", err)
	}
	if err := d.numbers.Insert(ctx, &domain.VillaNumber{VillaNo: 101, VillaID: v.ID, CreatedAt: now, UpdatedAt: now}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate villa number: expected ErrConflict, got %v", err)
	}
	if err := d.numbers.Insert(ctx, &domain.VillaNumber{VillaNo: 102, VillaID: 999, CreatedAt: now, UpdatedAt: now}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("unknown villa: expected ErrConflict, got %v", err)
	}

	if err := d.villas.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete villa: %v", err)
	}
	rows, err := d.numbers.Find(ctx, nil, 0)
	if err != nil {
		t.Fatalf("find numbers: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected villa numbers removed with their villa, got %+v", rows)
	}
}

func TestDriver_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	d := openSQLite(t)
	v := newVilla("Pool House")
	if err := d.villas.Insert(ctx, v); err != nil {
		t.Fatalf("insert: %v", err)
	}

	changed := *v
	changed.Details = "renovated"
	changed.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := d.villas.Update(ctx, &changed); err != nil {
		t.Fatalf("update: %v", err)
	}
	rows, _ := d.villas.Find(ctx, query.Eq(repository.ColVillaID, v.ID), 1)
	if rows[0].Details != "renovated" {
		t.Fatalf("update not applied: %+v", rows[0])
	}
	if !rows[0].CreatedAt.Equal(v.CreatedAt) {
		t.Fatalf("created date must not change on update: %v", rows[0].CreatedAt)
	}

	if err := d.villas.Update(ctx, &domain.Villa{ID: 404, Name: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("update missing: expected ErrNotFound, got %v", err)
	}
	if err := d.villas.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := d.villas.Delete(ctx, v.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete missing: expected ErrNotFound, got %v", err)
	}
}

func TestDriver_RepositoryRoundTrip(t *testing.T) {
	ctx := repository.WithTracker(context.Background())
	d := openSQLite(t)
	repo := repository.NewVillaRepository(d.villas)

	v := &domain.Villa{Name: "Pool House", Occupancy: 2}
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}
	tracked, err := repo.Get(ctx, query.Eq(repository.ColVillaID, v.ID), true)
	if err != nil || tracked == nil {
		t.Fatalf("get: %v %v", tracked, err)
	}
	tracked.Occupancy = 6
	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh, err := repo.Get(context.Background(), query.Eq(repository.ColVillaID, v.ID), false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fresh.Occupancy != 6 {
		t.Fatalf("expected flushed occupancy, got %d", fresh.Occupancy)
	}
}

func TestDialectFor(t *testing.T) {
	if d, err := sqlstore.DialectFor("postgres"); err != nil || d.Placeholder(3) != "$3" {
		t.Fatalf("postgres dialect: %v %v", d.Name, err)
	}
	if d, err := sqlstore.DialectFor("sqlite"); err != nil || d.Placeholder(3) != "?" {
		t.Fatalf("sqlite dialect: %v %v", d.Name, err)
	}
	if _, err := sqlstore.DialectFor("oracle"); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}
