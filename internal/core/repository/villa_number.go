package repository

import (
	"context"
	"time"

	"github.com/magicvilla/villa-api/internal/core/domain"
)

// VillaNumberRepository adds villa-number write rules to the generic repository.
type VillaNumberRepository struct {
	*Repository[domain.VillaNumber]
	now func() time.Time
}

// NewVillaNumberRepository builds a VillaNumberRepository over driver.
func NewVillaNumberRepository(driver Driver[domain.VillaNumber]) *VillaNumberRepository {
	return &VillaNumberRepository{Repository: New(driver, VillaNumberSchema), now: time.Now}
}

func (r *VillaNumberRepository) Create(ctx context.Context, n *domain.VillaNumber) error {
	now := stamp(r.now)
	n.CreatedAt = now
	n.UpdatedAt = now
	return r.Repository.Create(ctx, n)
}

// Update replaces the mutable fields of the stored villa number.
func (r *VillaNumberRepository) Update(ctx context.Context, n *domain.VillaNumber) (*domain.VillaNumber, error) {
	n.UpdatedAt = stamp(r.now)
	if err := r.replace(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
