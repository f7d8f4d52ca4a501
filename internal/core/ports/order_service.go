package ports

import (
	"context"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	Product  string
	Quantity int
	Price    float64
}

// CreateOrderInput carries the data needed to place an order. The user is
// resolved from the authenticated email, not from the payload.
type CreateOrderInput struct {
	UserEmail string
	Items     []OrderItemInput
}

type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	ListForUser(ctx context.Context, email string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}
