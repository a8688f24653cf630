package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/repository"
	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
)

// DistributorHandler handles distributor catalog requests
type DistributorHandler struct {
	distributors *repository.DistributorRepository
	log          *logger.Logger
}

// NewDistributorHandler creates a new distributor handler
func NewDistributorHandler(distributors *repository.DistributorRepository, log *logger.Logger) *DistributorHandler {
	return &DistributorHandler{distributors: distributors, log: log}
}

type distributorRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=150"`
	Description *string `json:"description"`
	Website     *string `json:"website" validate:"omitempty,url,max=255"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url,max=255"`
}

// List returns every active distributor
// GET /api/v1/distributors
func (h *DistributorHandler) List(c echo.Context) error {
	distributors, err := h.distributors.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}

	if distributors == nil {
		distributors = []*models.Distributor{}
	}
	return c.JSON(http.StatusOK, distributors)
}

// Get returns a single distributor
// GET /api/v1/distributors/:id
func (h *DistributorHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	d, err := h.distributors.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if d == nil {
		return respondError(c, h.log, apperr.NotFound("Distributor not found"))
	}
	return c.JSON(http.StatusOK, d)
}

// Create adds a distributor
// POST /api/v1/distributors
func (h *DistributorHandler) Create(c echo.Context) error {
	var req distributorRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	d := &models.Distributor{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	}
	if err := h.distributors.Insert(c.Request().Context(), d); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, d)
}

// Update replaces the mutable fields of a distributor
// PUT /api/v1/distributors/:id
func (h *DistributorHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req distributorRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	d := &models.Distributor{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	}
	updated, err := h.distributors.Update(c.Request().Context(), d)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !updated {
		return respondError(c, h.log, apperr.NotFound("Distributor not found"))
	}
	return c.JSON(http.StatusOK, d)
}

// Delete soft deletes a distributor
// DELETE /api/v1/distributors/:id
func (h *DistributorHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	deleted, err := h.distributors.SoftDelete(c.Request().Context(), id, time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return respondError(c, h.log, apperr.NotFound("Distributor not found"))
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Distributor deleted successfully"})
}
