package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/api/metrics"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// Context keys populated by Session for downstream handlers.
const (
	ContextSubject = "subject"
	ContextRole    = "role"
)

// Session validates the bearer token and injects the decoded identity into
// the echo context.
//
// The status split is part of the wire contract: a request with no
// Authorization header at all is 401, while a header that is present but
// fails verification in any way (bad prefix, malformed, expired, wrong
// signature) is 403.
func Session(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied: no token provided")
			}

			// The credential is the second whitespace-separated token of
			// the "Bearer <token>" header value.
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			identity, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextSubject, identity.Subject)
			c.Set(ContextRole, identity.Role)

			return next(c)
		}
	}
}
