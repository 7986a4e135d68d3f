package repository

import (
	"context"
	"time"

	"github.com/magicvilla/villa-api/internal/core/domain"
)

// VillaRepository adds villa-specific write rules to the generic repository.
type VillaRepository struct {
	*Repository[domain.Villa]
	now func() time.Time
}

// NewVillaRepository builds a VillaRepository over driver.
func NewVillaRepository(driver Driver[domain.Villa]) *VillaRepository {
	return &VillaRepository{Repository: New(driver, VillaSchema), now: time.Now}
}

// Create stamps the creation and update dates, then inserts villa.
func (r *VillaRepository) Create(ctx context.Context, villa *domain.Villa) error {
	now := stamp(r.now)
	villa.CreatedAt = now
	villa.UpdatedAt = now
	return r.Repository.Create(ctx, villa)
}

// Update replaces every mutable field of the stored villa with villa's values
// and returns the persisted state.
func (r *VillaRepository) Update(ctx context.Context, villa *domain.Villa) (*domain.Villa, error) {
	villa.UpdatedAt = stamp(r.now)
	if err := r.replace(ctx, villa); err != nil {
		return nil, err
	}
	return villa, nil
}

// stamp truncates to milliseconds, the coarsest precision among the stores.
func stamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}
