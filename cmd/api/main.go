package main

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/noobgg-team/noobgg/cmd/api/container"
	"github.com/noobgg-team/noobgg/cmd/api/middleware"
	"github.com/noobgg-team/noobgg/cmd/api/routes"
	"github.com/noobgg-team/noobgg/common/bootstrap"
	"github.com/noobgg-team/noobgg/common/db"
	"github.com/noobgg-team/noobgg/common/server"
	"github.com/noobgg-team/noobgg/common/validation"
)

func main() {
	ctx := context.Background()

	components, err := bootstrap.Setup(ctx, "api",
		bootstrap.WithDBInitHook(func(d *db.DB) error {
			return d.InitSchema(ctx)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap api: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	c := container.NewContainer(components)

	e := setupEcho()
	setupMiddleware(e, c)
	setupHealthCheck(e, c)
	registerRoutes(e, c)

	srv := server.New("api", components.Config.Service.Port, e, components.Logger)
	if err := srv.Start(); err != nil {
		components.Logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// setupEcho initializes the Echo server with basic configuration
func setupEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	return e
}

// setupMiddleware configures all middleware for the Echo server
func setupMiddleware(e *echo.Echo, c *container.Container) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestID())
	e.Use(middleware.RateLimit(c.Limiter, c.Components.Config.RateLimit))
}

// setupHealthCheck registers the health check endpoint
func setupHealthCheck(e *echo.Echo, c *container.Container) {
	e.GET("/health", func(ec echo.Context) error {
		if err := c.Components.DB.Health(ec.Request().Context()); err != nil {
			return ec.JSON(503, map[string]string{
				"status":  "degraded",
				"service": "api",
			})
		}
		return ec.JSON(200, map[string]string{
			"status":  "ok",
			"service": "api",
		})
	})
}

// registerRoutes registers all application routes using the container
func registerRoutes(e *echo.Echo, c *container.Container) {
	routes.RegisterLanguageRoutes(e, c)
	routes.RegisterUserProfileRoutes(e, c)
	routes.RegisterCatalogRoutes(e, c)
	routes.RegisterEventAttendeeRoutes(e, c)
}
