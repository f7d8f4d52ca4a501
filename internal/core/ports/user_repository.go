package ports

import (
	"context"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user identities.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the mutable profile fields of the identity with the
	// given id and returns the updated record. The role field is preserved.
	Update(ctx context.Context, id string, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// UserCache is a read-through cache for the full user listing.
type UserCache interface {
	// Get returns the cached listing, or (nil, nil) on a miss.
	Get(ctx context.Context) ([]domain.User, error)
	Set(ctx context.Context, users []domain.User) error
	Invalidate(ctx context.Context) error
}
