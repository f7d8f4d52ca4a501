package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

// UserHandler handles the /users CRUD endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns every stored identity.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return &domain.StoreError{Msg: "Error al obtener los usuarios", Err: err}
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single identity by id, or null when no identity matches.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return &domain.StoreError{Msg: "Error al obtener el usuario", Err: err}
	}
	return c.JSON(http.StatusOK, user)
}

// Create stores a new identity with the plain user role.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      upsertUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req upsertUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.UpsertUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       *req.Age,
		Password:  req.Password,
	})
	if err != nil {
		return &domain.StoreError{Msg: "Error al crear el usuario", Err: err}
	}
	return c.JSON(http.StatusCreated, user)
}

// Update replaces the profile fields of an identity and returns the updated
// record, or null when no identity matches.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      upsertUserRequest  true  "User details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req upsertUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpsertUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       *req.Age,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return &domain.StoreError{Msg: "Error al actualizar el usuario", Err: err}
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes an identity by id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return &domain.StoreError{Msg: "Error al eliminar el usuario", Err: err}
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Usuario eliminado"})
}
