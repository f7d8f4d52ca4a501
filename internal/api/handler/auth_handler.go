package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afterclass/ecommerce-api/internal/api/metrics"
	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

const tokenCookie = "token"

type AuthHandler struct {
	authService ports.AuthService
	// cookieTTL bounds the session cookie to the token's own lifetime.
	cookieTTL time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL}
}

// Login authenticates a user and returns a JWT token, also set as an
// httpOnly cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, loginResponse{Message: "Login success", Token: token})
}

// LoginPage answers GET /auth/login, the landing spot for rejected logins.
//
// @Summary      Login landing (always unauthorized)
// @Tags         auth
// @Produce      json
// @Failure      401  {object}  errorResponse
// @Router       /auth/login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       *req.Age,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return &domain.StoreError{Msg: "Error al crear el usuario", Err: err}
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// Current returns the identity claims of the presented token. Claims are
// served as decoded, with no store lookup.
//
// @Summary      Current authenticated identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  currentResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/current [get]
func (h *AuthHandler) Current(c echo.Context) error {
	claims, ok := c.Get("claims").(domain.TokenClaims)
	if !ok {
		return domain.ErrInvalidToken
	}

	return c.JSON(http.StatusOK, currentResponse{Message: "Bienvenido", User: claims})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side revocation.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, messageResponse{Message: "Sesión cerrada"})
}
