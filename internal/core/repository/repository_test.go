package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/query"
	"github.com/magicvilla/villa-api/internal/core/repository"
	"github.com/magicvilla/villa-api/internal/infrastructure/db/memory"
)

func newVillaRepo() *repository.VillaRepository {
	return repository.NewVillaRepository(memory.NewDriver(repository.VillaSchema))
}

func mustCreate(t *testing.T, ctx context.Context, repo *repository.VillaRepository, name string) *domain.Villa {
	t.Helper()
	v := &domain.Villa{Name: name, Sqft: 750, Occupancy: 4, Rate: 200}
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return v
}

func byID(id int) query.Filter { return query.Eq(repository.ColVillaID, id) }

func TestRepository_CreateAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := newVillaRepo()

	v := &domain.Villa{ID: 99, Name: "Pool House"}
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.ID != 1 {
		t.Fatalf("expected store-generated id 1, got %d", v.ID)
	}
	if v.CreatedAt.IsZero() || !v.CreatedAt.Equal(v.UpdatedAt) {
		t.Fatalf("expected created and updated dates to be stamped: %+v", v)
	}

	second := mustCreate(t, ctx, repo, "Beach House")
	if second.ID != 2 {
		t.Fatalf("expected id 2, got %d", second.ID)
	}
}

func TestRepository_GetReturnsPersistedStateAndAbsentAfterRemove(t *testing.T) {
	ctx := context.Background()
	repo := newVillaRepo()
	v := mustCreate(t, ctx, repo, "Pool House")

	got, err := repo.Get(ctx, byID(v.ID), true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Pool House" {
		t.Fatalf("unexpected villa: %+v", got)
	}

	if err := repo.Remove(ctx, got); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got, err = repo.Get(ctx, byID(v.ID), true)
	if err != nil {
		t.Fatalf("get after remove: %v", err)
	}
	if got != nil {
		t.Fatalf("expected absent after remove, got %+v", got)
	}
}

func TestRepository_RemoveMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newVillaRepo()

	err := repo.Remove(ctx, &domain.Villa{ID: 42})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := newVillaRepo()
	mustCreate(t, ctx, repo, "Pool House")
	mustCreate(t, ctx, repo, "Beach House")
	mustCreate(t, ctx, repo, "Cabin")

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 villas, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("list not ordered by id: %v", all)
		}
	}

	some, err := repo.List(ctx, query.EqFold(repository.ColVillaName, "CABIN"))
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(some) != 1 || some[0].Name != "Cabin" {
		t.Fatalf("unexpected filtered list: %+v", some)
	}
}

func TestRepository_GetAmbiguous(t *testing.T) {
	ctx := context.Background()
	repo := newVillaRepo()
	mustCreate(t, ctx, repo, "A")
	mustCreate(t, ctx, repo, "B")

	_, err := repo.Get(ctx, nil, false)
	if !errors.Is(err, domain.ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
}

func TestRepository_UntrackedMutationDoesNotLeak(t *testing.T) {
	ctx := repository.WithTracker(context.Background())
	repo := newVillaRepo()
	v := mustCreate(t, ctx, repo, "Pool House")

	snapshot, err := repo.Get(ctx, byID(v.ID), false)
	if err != nil {
		t.Fatalf("untracked get: %v", err)
	}
	snapshot.Name = "Mutated"
	snapshot.Occupancy = 12

	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	tracked, err := repo.Get(ctx, byID(v.ID), true)
	if err != nil {
		t.Fatalf("tracked get: %v", err)
	}
	if tracked.Name != "Pool House" || tracked.Occupancy != 4 {
		t.Fatalf("untracked mutation leaked: %+v", tracked)
	}

	if _, err := repo.Update(ctx, snapshot); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := repo.Get(ctx, byID(v.ID), true)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if again.Name != "Mutated" || again.Occupancy != 12 {
		t.Fatalf("expected update to be visible to tracked reads: %+v", again)
	}
}

func TestRepository_TrackedReadsShareInstanceAndSaveFlushes(t *testing.T) {
	ctx := repository.WithTracker(context.Background())
	repo := newVillaRepo()
	v := mustCreate(t, ctx, repo, "Pool House")

	first, err := repo.Get(ctx, byID(v.ID), true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := repo.Get(ctx, byID(v.ID), true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first != second {
		t.Fatalf("tracked reads should return the same instance")
	}

	first.Details = "renovated"
	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := repo.Get(context.Background(), byID(v.ID), false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Details != "renovated" {
		t.Fatalf("expected save to flush tracked mutation, got %+v", stored)
	}
}

func TestRepository_TrackedWithoutTrackerIsDetached(t *testing.T) {
	ctx := context.Background()
	repo := newVillaRepo()
	v := mustCreate(t, ctx, repo, "Pool House")

	got, _ := repo.Get(ctx, byID(v.ID), true)
	got.Name = "Changed"
	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, _ := repo.Get(ctx, byID(v.ID), false)
	if stored.Name != "Pool House" {
		t.Fatalf("no unit of work in context, expected nothing flushed: %+v", stored)
	}
}

func TestVillaRepository_UpdatePreservesCreatedDate(t *testing.T) {
	ctx := context.Background()
	repo := newVillaRepo()
	v := mustCreate(t, ctx, repo, "Pool House")
	created := v.CreatedAt

	updated, err := repo.Update(ctx, &domain.Villa{ID: v.ID, Name: "Pool House", Occupancy: 6})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("created date overwritten: got %v want %v", updated.CreatedAt, created)
	}
	if updated.Occupancy != 6 || updated.Sqft != 0 {
		t.Fatalf("expected full overwrite of mutable fields, got %+v", updated)
	}
}

func TestVillaRepository_UpdateMissingIsNotFound(t *testing.T) {
	repo := newVillaRepo()
	_, err := repo.Update(context.Background(), &domain.Villa{ID: 7, Name: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVillaRepository_UpdateRefreshesTrackedInstance(t *testing.T) {
	ctx := repository.WithTracker(context.Background())
	repo := newVillaRepo()
	v := mustCreate(t, ctx, repo, "Pool House")

	tracked, _ := repo.Get(ctx, byID(v.ID), true)
	if _, err := repo.Update(ctx, &domain.Villa{ID: v.ID, Name: "Renamed"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if tracked.Name != "Renamed" {
		t.Fatalf("tracked instance not refreshed: %+v", tracked)
	}
	if err := repo.Save(ctx); err != nil {
		t.Fatalf("save after update: %v", err)
	}
}

func TestRepository_UniqueNameIsConflict(t *testing.T) {
	ctx := context.Background()
	repo := newVillaRepo()
	mustCreate(t, ctx, repo, "Pool House")

	err := repo.Create(ctx, &domain.Villa{Name: "pool house"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestVillaNumberRepository_CallerAssignedKey(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewVillaNumberRepository(memory.NewDriver(repository.VillaNumberSchema))

	n := &domain.VillaNumber{VillaNo: 101, VillaID: 1}
	if err := repo.Create(ctx, n); err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.VillaNo != 101 {
		t.Fatalf("caller-assigned key changed: %d", n.VillaNo)
	}

	err := repo.Create(ctx, &domain.VillaNumber{VillaNo: 101, VillaID: 2})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate villa number, got %v", err)
	}
}
