package ports

import (
	"context"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/query"
)

// VillaRepository is the persistence contract the villa service relies on.
type VillaRepository interface {
	List(ctx context.Context, filter query.Filter) ([]domain.Villa, error)
	Get(ctx context.Context, filter query.Filter, tracked bool) (*domain.Villa, error)
	Create(ctx context.Context, villa *domain.Villa) error
	Update(ctx context.Context, villa *domain.Villa) (*domain.Villa, error)
	Remove(ctx context.Context, villa *domain.Villa) error
	Save(ctx context.Context) error
}

// VillaNumberRepository is the persistence contract for villa numbers.
type VillaNumberRepository interface {
	List(ctx context.Context, filter query.Filter) ([]domain.VillaNumber, error)
	Get(ctx context.Context, filter query.Filter, tracked bool) (*domain.VillaNumber, error)
	Create(ctx context.Context, n *domain.VillaNumber) error
	Update(ctx context.Context, n *domain.VillaNumber) (*domain.VillaNumber, error)
	Remove(ctx context.Context, n *domain.VillaNumber) error
	Save(ctx context.Context) error
}

// UserRepository stores registered principals.
type UserRepository interface {
	Get(ctx context.Context, filter query.Filter, tracked bool) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
