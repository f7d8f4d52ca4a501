package ports

import (
	"context"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

// OrderRepository defines the persistence interface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
