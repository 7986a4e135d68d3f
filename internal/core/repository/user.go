package repository

import "github.com/magicvilla/villa-api/internal/core/domain"

// NewUserRepository builds the repository for registered principals. Users
// are never updated, so the generic contract is all they need.
func NewUserRepository(driver Driver[domain.User]) *Repository[domain.User] {
	return New(driver, UserSchema)
}
