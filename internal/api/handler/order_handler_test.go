package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

type stubOrderService struct {
	createFn func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error)
	listFn   func(ctx context.Context, email string) ([]domain.Order, error)
}

func (s *stubOrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, input)
}

func (s *stubOrderService) ListForUser(ctx context.Context, email string) ([]domain.Order, error) {
	return s.listFn(ctx, email)
}

func (s *stubOrderService) ListAll(_ context.Context) ([]domain.Order, error) {
	return nil, nil
}

func TestOrderHandler_Create(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
			if input.UserEmail != "ana@example.com" {
				t.Fatalf("unexpected user email: %s", input.UserEmail)
			}
			return &domain.Order{
				ID: "o1", UserID: "u1", Total: 71.0, Date: time.Now().UTC(),
				Items: []domain.OrderItem{{Product: "keyboard", Quantity: 2, Price: 35.5}},
			}, nil
		},
	}
	h := NewOrderHandler(stub)

	body := `{"items":[{"product":"keyboard","quantity":2,"price":35.5}]}`
	c, rec := newAuthTestContext(t, http.MethodPost, "/api/orders", body)
	c.Set("claims", domain.TokenClaims{Email: "ana@example.com", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "o1" || resp["total"] != 71.0 {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestOrderHandler_Create_RequiresClaims(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	body := `{"items":[{"product":"keyboard","quantity":1,"price":10}]}`
	c, _ := newAuthTestContext(t, http.MethodPost, "/api/orders", body)
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken without claims, got %v", err)
	}
}

func TestOrderHandler_Create_EmptyItemsRejected(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	c, _ := newAuthTestContext(t, http.MethodPost, "/api/orders", `{"items":[]}`)
	c.Set("claims", domain.TokenClaims{Email: "ana@example.com"})

	var ve *domain.ValidationError
	if err := h.Create(c); !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
}

func TestOrderHandler_List(t *testing.T) {
	stub := &stubOrderService{
		listFn: func(ctx context.Context, email string) ([]domain.Order, error) {
			if email != "ana@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return []domain.Order{{ID: "o1", UserID: "u1", Total: 10}}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/orders", "")
	c.Set("claims", domain.TokenClaims{Email: "ana@example.com", Role: domain.RoleUser})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "o1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
