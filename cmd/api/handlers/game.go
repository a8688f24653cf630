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

// GameHandler handles game catalog requests. The catalog has no business
// rules beyond existence, so it talks to the repository directly.
type GameHandler struct {
	games *repository.GameRepository
	log   *logger.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *repository.GameRepository, log *logger.Logger) *GameHandler {
	return &GameHandler{games: games, log: log}
}

type gameRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=150"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url,max=255"`
}

// List returns every active game
// GET /api/v1/games
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.games.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}

	if games == nil {
		games = []*models.Game{}
	}
	return c.JSON(http.StatusOK, games)
}

// Get returns a single game
// GET /api/v1/games/:id
func (h *GameHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	g, err := h.games.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if g == nil {
		return respondError(c, h.log, apperr.NotFound("Game not found"))
	}
	return c.JSON(http.StatusOK, g)
}

// Create adds a game
// POST /api/v1/games
func (h *GameHandler) Create(c echo.Context) error {
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	g := &models.Game{Name: req.Name, Description: req.Description, LogoURL: req.LogoURL}
	if err := h.games.Insert(c.Request().Context(), g); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, g)
}

// Update replaces the mutable fields of a game
// PUT /api/v1/games/:id
func (h *GameHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	g := &models.Game{ID: id, Name: req.Name, Description: req.Description, LogoURL: req.LogoURL}
	updated, err := h.games.Update(c.Request().Context(), g)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !updated {
		return respondError(c, h.log, apperr.NotFound("Game not found"))
	}
	return c.JSON(http.StatusOK, g)
}

// Delete soft deletes a game
// DELETE /api/v1/games/:id
func (h *GameHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	deleted, err := h.games.SoftDelete(c.Request().Context(), id, time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return respondError(c, h.log, apperr.NotFound("Game not found"))
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Game deleted successfully"})
}
