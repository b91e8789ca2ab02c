package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// PetHandler serves patient management for authenticated staff; the
// status-toggle and historical listings are additionally admin-gated by
// the router.
type PetHandler struct {
	pets ports.PetService
}

func NewPetHandler(pets ports.PetService) *PetHandler {
	return &PetHandler{pets: pets}
}

// List returns active pets, filtered by ?q= against pet or owner name.
//
// @Summary      List or search active pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Substring of pet or owner name"
// @Success      200  {array}   domain.PetWithOwner
// @Router       /api/pets [get]
func (h *PetHandler) List(c echo.Context) error {
	pets, err := h.pets.ListActive(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

// Create admits a new patient.
//
// @Summary      Create a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPetRequest  true  "Pet details"
// @Success      201   {object}  domain.Pet
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{err.Error()}})
	}

	pet, err := h.pets.Create(c.Request().Context(), ports.CreatePetInput{
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		Species:       req.Species,
		Breed:         req.Breed,
		BirthDate:     req.BirthDate,
		InitialWeight: req.InitialWeight,
		PhotoURL:      req.PhotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pet)
}

// Get returns one pet with its owner summary and medical history.
//
// @Summary      Get a pet with its medical history
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pet ID"
// @Success      200  {object}  ports.PetDetail
// @Failure      404  {object}  errorResponse
// @Router       /api/pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	detail, err := h.pets.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Update applies a partial update; absent fields keep their stored value.
//
// @Summary      Update a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Pet ID"
// @Param        body  body      updatePetRequest  true  "Fields to change"
// @Success      200   {object}  domain.Pet
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/pets/{id} [put]
func (h *PetHandler) Update(c echo.Context) error {
	var req updatePetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{err.Error()}})
	}

	pet, err := h.pets.Update(c.Request().Context(), c.Param("id"), ports.UpdatePetInput{
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		Species:       req.Species,
		Breed:         req.Breed,
		BirthDate:     req.BirthDate,
		InitialWeight: req.InitialWeight,
		PhotoURL:      req.PhotoURL,
		Active:        req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// SetStatus toggles the logical-delete flag (deactivate or restore).
//
// @Summary      Deactivate or restore a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Pet ID"
// @Param        body  body      petStatusRequest  true  "Target active state"
// @Success      200   {object}  domain.Pet
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/pets/{id}/status [put]
func (h *PetHandler) SetStatus(c echo.Context) error {
	var req petStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.Active == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{"active is required"}})
	}

	pet, err := h.pets.SetActive(c.Request().Context(), c.Param("id"), *req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// ListByOwner returns an owner's active pets.
//
// @Summary      List an owner's pets
// @Tags         owners
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Owner ID"
// @Success      200  {array}  domain.PetWithOwner
// @Failure      404  {object} errorResponse
// @Router       /api/owners/{id}/pets [get]
func (h *PetHandler) ListByOwner(c echo.Context) error {
	pets, err := h.pets.ListByOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

// ListInactive returns retired patients (admin).
//
// @Summary      List inactive pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PetWithOwner
// @Router       /api/pets/inactive [get]
func (h *PetHandler) ListInactive(c echo.Context) error {
	pets, err := h.pets.ListInactive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

// ListAll returns every patient, active or not (admin).
//
// @Summary      List all pets including inactive
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PetWithOwner
// @Router       /api/pets/all [get]
func (h *PetHandler) ListAll(c echo.Context) error {
	pets, err := h.pets.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}
