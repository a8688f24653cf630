package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/container"
	"github.com/noobgg-team/noobgg/cmd/api/handlers"
)

// RegisterLanguageRoutes registers the language catalog routes
func RegisterLanguageRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewLanguageHandler(c.LanguageService, c.Components.Logger)

	languages := e.Group("/api/v1/languages")
	{
		languages.GET("", h.List)          // GET /api/v1/languages?page&limit&search&sortBy&sortOrder
		languages.GET("/all", h.ListAll)   // GET /api/v1/languages/all
		languages.GET("/:id", h.Get)       // GET /api/v1/languages/{id}
		languages.POST("", h.Create)       // POST /api/v1/languages
		languages.PUT("/:id", h.Update)    // PUT /api/v1/languages/{id}
		languages.DELETE("/:id", h.Delete) // DELETE /api/v1/languages/{id}
	}
}
