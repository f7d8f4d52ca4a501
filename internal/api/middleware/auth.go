package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/afterclass/ecommerce-api/internal/api/metrics"
	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

// Auth implements the token authentication strategy: the token is taken
// from the Authorization header (Bearer scheme) or, failing that, from the
// "token" cookie. Verified claims are injected into the request context
// under "claims", plus "role" for downstream role checks.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrInvalidToken
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set("claims", claims)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}
