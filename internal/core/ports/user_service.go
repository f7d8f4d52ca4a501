package ports

import (
	"context"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

// UpsertUserInput carries the profile fields accepted by the user CRUD
// endpoints. The password arrives in plaintext and is hashed before it
// ever reaches the store.
type UpsertUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       int
	Password  string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input UpsertUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpsertUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
