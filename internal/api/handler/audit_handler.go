package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// AuditHandler serves the authentication audit trail (administrator-only).
type AuditHandler struct {
	audit ports.AuditService
}

func NewAuditHandler(audit ports.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List returns the most recent auth events, newest first.
//
// @Summary      List recent authentication events
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Maximum events to return (default 100)"
// @Success      200    {array}  domain.AuthEvent
// @Failure      401    {object} errorResponse
// @Failure      403    {object} errorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.audit.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
