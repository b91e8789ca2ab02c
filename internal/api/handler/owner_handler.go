package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// OwnerHandler serves the owner directory (administrator-only).
type OwnerHandler struct {
	owners ports.OwnerService
}

func NewOwnerHandler(owners ports.OwnerService) *OwnerHandler {
	return &OwnerHandler{owners: owners}
}

// Create registers a new pet owner.
//
// @Summary      Create an owner
// @Tags         owners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ownerRequest  true  "Owner details"
// @Success      201   {object}  domain.Owner
// @Failure      400   {object}  errorResponse
// @Router       /api/owners [post]
func (h *OwnerHandler) Create(c echo.Context) error {
	var req ownerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{err.Error()}})
	}

	owner, err := h.owners.Create(c.Request().Context(), ownerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, owner)
}

// List returns all owners, or a substring search when ?q= is present.
//
// @Summary      List or search owners
// @Tags         owners
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Substring of name, phone or email"
// @Success      200  {array}   domain.Owner
// @Router       /api/owners [get]
func (h *OwnerHandler) List(c echo.Context) error {
	owners, err := h.owners.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owners)
}

// Get returns one owner by id.
//
// @Summary      Get an owner
// @Tags         owners
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Owner ID"
// @Success      200  {object}  domain.Owner
// @Failure      404  {object}  errorResponse
// @Router       /api/owners/{id} [get]
func (h *OwnerHandler) Get(c echo.Context) error {
	owner, err := h.owners.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owner)
}

// Update overwrites an owner's contact details.
//
// @Summary      Update an owner
// @Tags         owners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Owner ID"
// @Param        body  body      ownerRequest  true  "Owner details"
// @Success      200   {object}  domain.Owner
// @Failure      404   {object}  errorResponse
// @Router       /api/owners/{id} [put]
func (h *OwnerHandler) Update(c echo.Context) error {
	var req ownerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{err.Error()}})
	}

	owner, err := h.owners.Update(c.Request().Context(), c.Param("id"), ownerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owner)
}

func ownerInput(req ownerRequest) ports.OwnerInput {
	return ports.OwnerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
}
