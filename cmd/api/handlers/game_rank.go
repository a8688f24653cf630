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

// GameRankHandler handles game rank requests
type GameRankHandler struct {
	ranks *repository.GameRankRepository
	games *repository.GameRepository
	log   *logger.Logger
}

// NewGameRankHandler creates a new game rank handler
func NewGameRankHandler(ranks *repository.GameRankRepository, games *repository.GameRepository, log *logger.Logger) *GameRankHandler {
	return &GameRankHandler{ranks: ranks, games: games, log: log}
}

type gameRankRequest struct {
	Name   string    `json:"name" validate:"required,min=1,max=100"`
	Image  string    `json:"image" validate:"required,url,max=255"`
	Order  int       `json:"order" validate:"required,gt=0"`
	GameID models.ID `json:"gameId" validate:"required"`
}

// List returns every active rank, grouped by game in ladder order
// GET /api/v1/game-ranks
func (h *GameRankHandler) List(c echo.Context) error {
	ranks, err := h.ranks.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}

	if ranks == nil {
		ranks = []*models.GameRank{}
	}
	return c.JSON(http.StatusOK, ranks)
}

// ListByGame returns one game's ranks in ladder order
// GET /api/v1/games/:id/ranks
func (h *GameRankHandler) ListByGame(c echo.Context) error {
	gameID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	g, err := h.games.GetByID(c.Request().Context(), gameID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if g == nil {
		return respondError(c, h.log, apperr.NotFound("Game not found"))
	}

	ranks, err := h.ranks.ListByGame(c.Request().Context(), gameID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	if ranks == nil {
		ranks = []*models.GameRank{}
	}
	return c.JSON(http.StatusOK, ranks)
}

// Get returns a single rank
// GET /api/v1/game-ranks/:id
func (h *GameRankHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	gr, err := h.ranks.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if gr == nil {
		return respondError(c, h.log, apperr.NotFound("Game rank not found"))
	}
	return c.JSON(http.StatusOK, gr)
}

// Create adds a rank to a game's ladder
// POST /api/v1/game-ranks
func (h *GameRankHandler) Create(c echo.Context) error {
	var req gameRankRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	g, err := h.games.GetByID(c.Request().Context(), req.GameID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if g == nil {
		return respondError(c, h.log, apperr.NotFound("Game not found"))
	}

	gr := &models.GameRank{Name: req.Name, Image: req.Image, RankOrder: req.Order, GameID: req.GameID}
	if err := h.ranks.Insert(c.Request().Context(), gr); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, gr)
}

// Update replaces the mutable fields of a rank
// PUT /api/v1/game-ranks/:id
func (h *GameRankHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req gameRankRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	g, err := h.games.GetByID(c.Request().Context(), req.GameID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if g == nil {
		return respondError(c, h.log, apperr.NotFound("Game not found"))
	}

	gr := &models.GameRank{ID: id, Name: req.Name, Image: req.Image, RankOrder: req.Order, GameID: req.GameID}
	updated, err := h.ranks.Update(c.Request().Context(), gr)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !updated {
		return respondError(c, h.log, apperr.NotFound("Game rank not found"))
	}
	return c.JSON(http.StatusOK, gr)
}

// Delete soft deletes a rank
// DELETE /api/v1/game-ranks/:id
func (h *GameRankHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	deleted, err := h.ranks.SoftDelete(c.Request().Context(), id, time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return respondError(c, h.log, apperr.NotFound("Game rank not found"))
	}
	return c.NoContent(http.StatusNoContent)
}
