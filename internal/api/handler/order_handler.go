package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

// OrderHandler handles the authenticated /orders endpoints.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create places an order for the authenticated user. The total is computed
// server-side from the line items.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order line items"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	claims, ok := c.Get("claims").(domain.TokenClaims)
	if !ok {
		return domain.ErrInvalidToken
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{
			Product:  it.Product,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserEmail: claims.Email,
		Items:     items,
	})
	if err != nil {
		return &domain.StoreError{Msg: "Error al crear el pedido", Err: err}
	}
	return c.JSON(http.StatusCreated, order)
}

// List returns the authenticated user's orders.
//
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  map[string]string
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	claims, ok := c.Get("claims").(domain.TokenClaims)
	if !ok {
		return domain.ErrInvalidToken
	}

	orders, err := h.service.ListForUser(c.Request().Context(), claims.Email)
	if err != nil {
		return &domain.StoreError{Msg: "Error al obtener los pedidos", Err: err}
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll returns every order in the store. Admin only.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  map[string]string
// @Router       /orders/all [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return &domain.StoreError{Msg: "Error al obtener los pedidos", Err: err}
	}
	return c.JSON(http.StatusOK, orders)
}
