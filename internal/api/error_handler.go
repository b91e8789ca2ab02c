package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, middleware denials).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Validation-category errors carry their violated rules.
	var weak *domain.WeakPasswordError
	if errors.As(err, &weak) {
		return http.StatusBadRequest, errorResponse{Error: weak.Error(), Details: weak.Notes}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()}
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusConflict, errorResponse{Error: domain.ErrDuplicateAccount.Error()}
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidRole.Error()}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, errorResponse{Error: domain.ErrInvalidToken.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: domain.ErrForbidden.Error()}
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, errorResponse{Error: domain.ErrTooManyAttempts.Error()}
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, errorResponse{Error: domain.ErrAccountNotFound.Error()}
	case errors.Is(err, domain.ErrOwnerNotFound):
		return http.StatusNotFound, errorResponse{Error: domain.ErrOwnerNotFound.Error()}
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, errorResponse{Error: domain.ErrPetNotFound.Error()}
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, errorResponse{Error: domain.ErrRecordNotFound.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	// Store details, stack traces and driver errors never reach the client.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
