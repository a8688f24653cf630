package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/container"
	"github.com/noobgg-team/noobgg/cmd/api/handlers"
)

// RegisterCatalogRoutes registers games, platforms, distributors, game
// ranks and game-platform links
func RegisterCatalogRoutes(e *echo.Echo, c *container.Container) {
	log := c.Components.Logger

	gh := handlers.NewGameHandler(c.GameRepo, log)
	games := e.Group("/api/v1/games")
	{
		games.GET("", gh.List)
		games.GET("/:id", gh.Get)
		games.POST("", gh.Create)
		games.PUT("/:id", gh.Update)
		games.DELETE("/:id", gh.Delete)
	}

	ph := handlers.NewPlatformHandler(c.PlatformRepo, log)
	platforms := e.Group("/api/v1/platforms")
	{
		platforms.GET("", ph.List)
		platforms.GET("/:id", ph.Get)
		platforms.POST("", ph.Create)
		platforms.PUT("/:id", ph.Update)
		platforms.DELETE("/:id", ph.Delete)
	}

	dh := handlers.NewDistributorHandler(c.DistributorRepo, log)
	distributors := e.Group("/api/v1/distributors")
	{
		distributors.GET("", dh.List)
		distributors.GET("/:id", dh.Get)
		distributors.POST("", dh.Create)
		distributors.PUT("/:id", dh.Update)
		distributors.DELETE("/:id", dh.Delete)
	}

	rh := handlers.NewGameRankHandler(c.GameRankRepo, c.GameRepo, log)
	ranks := e.Group("/api/v1/game-ranks")
	{
		ranks.GET("", rh.List)
		ranks.GET("/:id", rh.Get)
		ranks.POST("", rh.Create)
		ranks.PUT("/:id", rh.Update)
		ranks.DELETE("/:id", rh.Delete)
	}
	games.GET("/:id/ranks", rh.ListByGame) // GET /api/v1/games/{id}/ranks

	lh := handlers.NewGamePlatformHandler(c.GamePlatformRepo, c.GameRepo, c.PlatformRepo, log)
	links := e.Group("/api/v1/game-platforms")
	{
		links.GET("", lh.List)
		links.GET("/:id", lh.Get)
		links.POST("", lh.Create)
		links.PUT("/:id", lh.Update)
		links.DELETE("/:id", lh.Delete)
	}
}
