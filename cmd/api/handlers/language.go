package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/service"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
)

// LanguageHandler handles language catalog requests
type LanguageHandler struct {
	languages *service.LanguageService
	log       *logger.Logger
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(languages *service.LanguageService, log *logger.Logger) *LanguageHandler {
	return &LanguageHandler{languages: languages, log: log}
}

type createLanguageRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	Code    string  `json:"code" validate:"required,min=1,max=10"`
	FlagURL *string `json:"flagUrl" validate:"omitempty,url,max=255"`
}

type updateLanguageRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Code    *string `json:"code" validate:"omitempty,min=1,max=10"`
	FlagURL *string `json:"flagUrl" validate:"omitempty,url,max=255"`
}

// List returns a page of languages with optional sanitized search
// GET /api/v1/languages
func (h *LanguageHandler) List(c echo.Context) error {
	languages, pagination, err := h.languages.List(c.Request().Context(), listParams(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	if languages == nil {
		languages = []*models.Language{}
	}
	return c.JSON(http.StatusOK, listResponse{Data: languages, Pagination: pagination})
}

// ListAll returns every active language ordered by name
// GET /api/v1/languages/all
func (h *LanguageHandler) ListAll(c echo.Context) error {
	languages, err := h.languages.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}

	if languages == nil {
		languages = []*models.Language{}
	}
	return c.JSON(http.StatusOK, languages)
}

// Get returns a single language
// GET /api/v1/languages/:id
func (h *LanguageHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	l, err := h.languages.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, l)
}

// Create adds a language
// POST /api/v1/languages
func (h *LanguageHandler) Create(c echo.Context) error {
	var req createLanguageRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	l := &models.Language{Name: req.Name, Code: req.Code, FlagURL: req.FlagURL}
	created, err := h.languages.Create(c.Request().Context(), l)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial update to a language
// PUT /api/v1/languages/:id
func (h *LanguageHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req updateLanguageRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	patch := service.LanguagePatch{Name: req.Name, Code: req.Code, FlagURL: req.FlagURL}
	updated, err := h.languages.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete soft deletes a language
// DELETE /api/v1/languages/:id
func (h *LanguageHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.languages.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Language deleted successfully"})
}
