package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// AccountHandler serves the administrator-only staff account endpoints.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// List returns every staff account without password hashes.
//
// @Summary      List staff accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   accountView
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]accountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, toAccountView(&accounts[i]))
	}
	return c.JSON(http.StatusOK, views)
}

// Update changes an account's role and/or active flag. Fields absent from
// the body keep their stored value; there is no way to delete an account.
//
// @Summary      Update a staff account's role or active flag
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account ID"
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  accountView
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{err.Error()}})
	}

	account, err := h.accounts.Update(c.Request().Context(), c.Param("id"), req.Role, req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountView(account))
}
