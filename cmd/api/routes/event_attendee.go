package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/container"
	"github.com/noobgg-team/noobgg/cmd/api/handlers"
)

// RegisterEventAttendeeRoutes registers event attendance routes
func RegisterEventAttendeeRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewEventAttendeeHandler(c.EventAttendeeService, c.Components.Logger)

	attendees := e.Group("/api/v1/event-attendees")
	{
		attendees.GET("", h.List)          // GET /api/v1/event-attendees?page&limit
		attendees.GET("/:id", h.Get)       // GET /api/v1/event-attendees/{id}
		attendees.POST("", h.Create)       // POST /api/v1/event-attendees
		attendees.DELETE("/:id", h.Delete) // DELETE /api/v1/event-attendees/{id}
	}

	e.GET("/api/v1/events/:eventId/attendees", h.ListByEvent) // GET /api/v1/events/{eventId}/attendees?page&limit
}
