package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/container"
	"github.com/noobgg-team/noobgg/cmd/api/handlers"
)

// RegisterUserProfileRoutes registers profile and favorite-game routes
func RegisterUserProfileRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewUserProfileHandler(c.UserProfileService, c.Components.Logger)
	fav := handlers.NewFavoriteHandler(c.FavoriteService, c.Components.Logger)

	profiles := e.Group("/api/v1/user-profiles")
	{
		profiles.GET("/:id", h.Get)                             // GET /api/v1/user-profiles/{id}?includeDeleted=
		profiles.GET("/by-username/:username", h.GetByUserName) // GET /api/v1/user-profiles/by-username/{username}
		profiles.POST("", h.Create)                             // POST /api/v1/user-profiles
		profiles.PATCH("/:id", h.Update)                        // PATCH /api/v1/user-profiles/{id}
		profiles.DELETE("/:id", h.Delete)                       // DELETE /api/v1/user-profiles/{id}

		// :id is the user profile id; the segment name must match the
		// profile routes above or echo rebinds the parameter
		profiles.GET("/:id/favorite-games", fav.List)              // GET /api/v1/user-profiles/{id}/favorite-games
		profiles.POST("/:id/favorite-games", fav.Add)              // POST /api/v1/user-profiles/{id}/favorite-games
		profiles.DELETE("/:id/favorite-games/:gameId", fav.Remove) // DELETE /api/v1/user-profiles/{id}/favorite-games/{gameId}
	}
}
