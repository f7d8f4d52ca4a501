package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for simple API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// storeErrorResponse carries the operation message plus the underlying
// driver detail, for diagnostics.
type storeErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// validationResponse lists every failed input rule in one response.
type validationResponse struct {
	Errors []domain.FieldViolation `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders aggregated validation failures as a 400 with the full list.
//   - Maps authentication failures to a uniform 401 envelope that does not
//     distinguish unknown email, wrong password, or bad/expired token.
//   - Maps store failures to 500 with the operation message and the
//     underlying detail.
//   - Logs unexpected errors internally without leaking them to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, validationResponse{Errors: ve.Violations}
	}

	var se *domain.StoreError
	if errors.As(err, &se) {
		log.Error().
			Err(se.Err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg(se.Msg)
		return http.StatusInternalServerError, storeErrorResponse{Error: se.Msg, Details: se.Err.Error()}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, errorResponse{Error: "Unauthorized"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "Usuario no encontrado"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
