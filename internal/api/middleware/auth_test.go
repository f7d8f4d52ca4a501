package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/service"
)

var authTestClaims = domain.TokenClaims{
	FirstName: "Ana",
	LastName:  "García",
	Email:     "ana@example.com",
	Role:      domain.RoleAdmin,
}

func newAuthRequest(t *testing.T, configure func(req *http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(authTestClaims)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newAuthRequest(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	called := false
	handler := Auth(issuer)(func(c echo.Context) error {
		called = true
		claims, ok := c.Get("claims").(domain.TokenClaims)
		if !ok || claims != authTestClaims {
			t.Fatalf("claims not injected: %+v", c.Get("claims"))
		}
		if c.Get("role") != domain.RoleAdmin {
			t.Fatalf("role not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not called")
	}
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(authTestClaims)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newAuthRequest(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	})

	called := false
	handler := Auth(issuer)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not called")
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	c, _ := newAuthRequest(t, nil)

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("next handler must not be called")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	c, _ := newAuthRequest(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Token abc")
	})

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("next handler must not be called")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	c, _ := newAuthRequest(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not.a.token")
	})

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("next handler must not be called")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
