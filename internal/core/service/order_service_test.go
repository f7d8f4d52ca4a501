package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders []domain.Order
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	created := *order
	created.ID = fmt.Sprintf("order%d", len(r.orders)+1)
	r.orders = append(r.orders, created)
	return &created, nil
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	return r.orders, nil
}

func (r *stubOrderRepo) FindByUser(_ context.Context, userID string) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func TestOrderService_Create_ComputesTotal(t *testing.T) {
	users := newStubUserRepo()
	orders := &stubOrderRepo{}
	svc := NewOrderService(orders, users, zerolog.Nop())

	buyer, err := users.Create(context.Background(), &domain.User{
		FirstName: "Iris", Email: "iris@example.com", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserEmail: "iris@example.com",
		Items: []ports.OrderItemInput{
			{Product: "keyboard", Quantity: 2, Price: 35.5},
			{Product: "mouse", Quantity: 1, Price: 19.0},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.UserID != buyer.ID {
		t.Fatalf("expected order for user %s, got %s", buyer.ID, order.UserID)
	}
	if order.Total != 2*35.5+19.0 {
		t.Fatalf("unexpected total: %v", order.Total)
	}
	if order.Date.IsZero() {
		t.Fatalf("expected order date to be set")
	}
}

func TestOrderService_Create_UnknownUser(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, newStubUserRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserEmail: "ghost@example.com",
		Items:     []ports.OrderItemInput{{Product: "x", Quantity: 1, Price: 1}},
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestOrderService_ListForUser(t *testing.T) {
	users := newStubUserRepo()
	orders := &stubOrderRepo{}
	svc := NewOrderService(orders, users, zerolog.Nop())

	_, _ = users.Create(context.Background(), &domain.User{FirstName: "Juan", Email: "juan@example.com"})
	_, _ = users.Create(context.Background(), &domain.User{FirstName: "Karla", Email: "karla@example.com"})

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserEmail: "juan@example.com",
		Items:     []ports.OrderItemInput{{Product: "book", Quantity: 1, Price: 10}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	mine, err := svc.ListForUser(context.Background(), "juan@example.com")
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 order, got %d", len(mine))
	}

	theirs, err := svc.ListForUser(context.Background(), "karla@example.com")
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("expected no orders, got %d", len(theirs))
	}
}
