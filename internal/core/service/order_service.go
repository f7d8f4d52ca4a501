package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

// OrderService implements order placement and retrieval. The purchasing
// user is resolved from the authenticated email, so an order can never
// reference an identity the caller does not hold a token for.
type OrderService struct {
	orders ports.OrderRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, logger: logger}
}

func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	user, err := s.users.FindByEmail(ctx, input.UserEmail)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	total := 0.0
	for _, it := range input.Items {
		items = append(items, domain.OrderItem{
			Product:  it.Product,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
		total += float64(it.Quantity) * it.Price
	}

	order := &domain.Order{
		UserID: user.ID,
		Items:  items,
		Total:  total,
		Date:   time.Now().UTC(),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user", user.ID).Float64("total", created.Total).Msg("order placed")
	return created, nil
}

func (s *OrderService) ListForUser(ctx context.Context, email string) ([]domain.Order, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByUser(ctx, user.ID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}
