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

// PlatformHandler handles platform catalog requests
type PlatformHandler struct {
	platforms *repository.PlatformRepository
	log       *logger.Logger
}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler(platforms *repository.PlatformRepository, log *logger.Logger) *PlatformHandler {
	return &PlatformHandler{platforms: platforms, log: log}
}

type platformRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// List returns every active platform
// GET /api/v1/platforms
func (h *PlatformHandler) List(c echo.Context) error {
	platforms, err := h.platforms.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}

	if platforms == nil {
		platforms = []*models.Platform{}
	}
	return c.JSON(http.StatusOK, platforms)
}

// Get returns a single platform
// GET /api/v1/platforms/:id
func (h *PlatformHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	p, err := h.platforms.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if p == nil {
		return respondError(c, h.log, apperr.NotFound("Platform not found"))
	}
	return c.JSON(http.StatusOK, p)
}

// Create adds a platform
// POST /api/v1/platforms
func (h *PlatformHandler) Create(c echo.Context) error {
	var req platformRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	p := &models.Platform{Name: req.Name}
	if err := h.platforms.Insert(c.Request().Context(), p); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// Update renames a platform
// PUT /api/v1/platforms/:id
func (h *PlatformHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req platformRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	p := &models.Platform{ID: id, Name: req.Name}
	updated, err := h.platforms.Update(c.Request().Context(), p)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !updated {
		return respondError(c, h.log, apperr.NotFound("Platform not found"))
	}
	return c.JSON(http.StatusOK, p)
}

// Delete soft deletes a platform
// DELETE /api/v1/platforms/:id
func (h *PlatformHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	deleted, err := h.platforms.SoftDelete(c.Request().Context(), id, time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return respondError(c, h.log, apperr.NotFound("Platform not found"))
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Platform deleted successfully"})
}
