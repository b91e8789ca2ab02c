package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// RecordHandler serves medical record entries for authenticated staff.
type RecordHandler struct {
	records ports.RecordService
}

func NewRecordHandler(records ports.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// Create appends a consultation entry. The authoring veterinarian is the
// session identity, never a body field.
//
// @Summary      Create a medical record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecordRequest  true  "Record details"
// @Success      201   {object}  domain.MedicalRecord
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/records [post]
func (h *RecordHandler) Create(c echo.Context) error {
	subject, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Details: []string{err.Error()}})
	}

	var date time.Time
	if req.Date != "" {
		// Format guaranteed by the datetime validation tag.
		date, _ = time.Parse("2006-01-02", req.Date)
	}

	record, err := h.records.Create(c.Request().Context(), ports.CreateRecordInput{
		PetID:          req.PetID,
		VeterinarianID: subject,
		Date:           date,
		Reason:         req.Reason,
		Diagnosis:      req.Diagnosis,
		Treatment:      req.Treatment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// ListByPet returns a pet's history, newest first.
//
// @Summary      List medical records for a pet
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        petID  path     string  true  "Pet ID"
// @Success      200    {array}  domain.MedicalRecordWithVet
// @Router       /api/records/pet/{petID} [get]
func (h *RecordHandler) ListByPet(c echo.Context) error {
	records, err := h.records.ListByPet(c.Request().Context(), c.Param("petID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get returns one medical record by id.
//
// @Summary      Get a medical record
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  domain.MedicalRecordWithVet
// @Failure      404  {object}  errorResponse
// @Router       /api/records/{id} [get]
func (h *RecordHandler) Get(c echo.Context) error {
	record, err := h.records.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}
