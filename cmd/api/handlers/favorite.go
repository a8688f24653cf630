package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/service"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
)

// FavoriteHandler handles a user's favorite-game links
type FavoriteHandler struct {
	favorites *service.FavoriteService
	log       *logger.Logger
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favorites *service.FavoriteService, log *logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, log: log}
}

type addFavoriteRequest struct {
	GameID models.ID `json:"gameId" validate:"required"`
}

// List returns a user's favorite games
// GET /api/v1/user-profiles/:id/favorite-games
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	favorites, err := h.favorites.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	if favorites == nil {
		favorites = []*models.FavoriteGameDetail{}
	}
	return c.JSON(http.StatusOK, favorites)
}

// Add links a game to a user's favorites
// POST /api/v1/user-profiles/:id/favorite-games
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.log, badBody())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	f, err := h.favorites.Add(c.Request().Context(), userID, req.GameID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, f)
}

// Remove unlinks a game from a user's favorites
// DELETE /api/v1/user-profiles/:id/favorite-games/:gameId
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	gameID, err := pathID(c, "gameId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.favorites.Remove(c.Request().Context(), userID, gameID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
