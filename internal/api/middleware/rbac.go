package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// RequireAdministrator permits the request only when Session has attached
// the administrator role. It trusts the context identity and does not
// re-verify the token; running it without Session is a caller error and an
// absent identity simply denies.
func RequireAdministrator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role != domain.RoleAdministrator {
				return echo.NewHTTPError(http.StatusForbidden, "access denied: administrator role required")
			}
			return next(c)
		}
	}
}
