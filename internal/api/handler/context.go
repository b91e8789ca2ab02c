package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// fast-fails before any service call: a non-empty subject proves the
// middleware ran. Handlers mounted behind the gate should never see the
// 401, but a miswired route must deny rather than proceed anonymously.
func ctxIdentity(c echo.Context) (subject, role string, err error) {
	subject, _ = c.Get(middleware.ContextSubject).(string)
	role, _ = c.Get(middleware.ContextRole).(string)
	if subject == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, role, nil
}
