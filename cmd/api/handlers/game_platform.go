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

// GamePlatformHandler handles game-platform link requests
type GamePlatformHandler struct {
	links     *repository.GamePlatformRepository
	games     *repository.GameRepository
	platforms *repository.PlatformRepository
	log       *logger.Logger
}

// NewGamePlatformHandler creates a new game-platform handler
func NewGamePlatformHandler(
	links *repository.GamePlatformRepository,
	games *repository.GameRepository,
	platforms *repository.PlatformRepository,
	log *logger.Logger,
) *GamePlatformHandler {
	return &GamePlatformHandler{links: links, games: games, platforms: platforms, log: log}
}

type gamePlatformRequest struct {
	GameID     models.ID `json:"gameId" validate:"required"`
	PlatformID models.ID `json:"platformId" validate:"required"`
}

// List returns every active link
// GET /api/v1/game-platforms
func (h *GamePlatformHandler) List(c echo.Context) error {
	links, err := h.links.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}

	if links == nil {
		links = []*models.GamePlatform{}
	}
	return c.JSON(http.StatusOK, links)
}

// Get returns a single link
// GET /api/v1/game-platforms/:id
func (h *GamePlatformHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	gp, err := h.links.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if gp == nil {
		return respondError(c, h.log, apperr.NotFound("Game platform not found"))
	}
	return c.JSON(http.StatusOK, gp)
}

// Create links a game to a platform
// POST /api/v1/game-platforms
func (h *GamePlatformHandler) Create(c echo.Context) error {
	var req gamePlatformRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.checkEndpoints(c, req.GameID, req.PlatformID); err != nil {
		return respondError(c, h.log, err)
	}

	exists, err := h.links.PairExists(c.Request().Context(), req.GameID, req.PlatformID, 0)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if exists {
		return respondError(c, h.log, apperr.Conflict("Game is already linked to this platform"))
	}

	gp := &models.GamePlatform{GameID: req.GameID, PlatformID: req.PlatformID}
	if err := h.links.Insert(c.Request().Context(), gp); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, gp)
}

// Update repoints a link
// PUT /api/v1/game-platforms/:id
func (h *GamePlatformHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req gamePlatformRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.checkEndpoints(c, req.GameID, req.PlatformID); err != nil {
		return respondError(c, h.log, err)
	}

	exists, err := h.links.PairExists(c.Request().Context(), req.GameID, req.PlatformID, id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if exists {
		return respondError(c, h.log, apperr.Conflict("Game is already linked to this platform"))
	}

	gp := &models.GamePlatform{ID: id, GameID: req.GameID, PlatformID: req.PlatformID}
	updated, err := h.links.Update(c.Request().Context(), gp)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !updated {
		return respondError(c, h.log, apperr.NotFound("Game platform not found"))
	}
	return c.JSON(http.StatusOK, gp)
}

// Delete soft deletes a link
// DELETE /api/v1/game-platforms/:id
func (h *GamePlatformHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	deleted, err := h.links.SoftDelete(c.Request().Context(), id, time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return respondError(c, h.log, apperr.NotFound("Game platform not found"))
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Game platform deleted successfully"})
}

func (h *GamePlatformHandler) checkEndpoints(c echo.Context, gameID, platformID models.ID) error {
	g, err := h.games.GetByID(c.Request().Context(), gameID)
	if err != nil {
		return err
	}
	if g == nil {
		return apperr.NotFound("Game not found")
	}

	p, err := h.platforms.GetByID(c.Request().Context(), platformID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("Platform not found")
	}
	return nil
}
