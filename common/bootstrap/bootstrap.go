package bootstrap

import (
	"context"
	"fmt"

	"github.com/noobgg-team/noobgg/common/config"
	"github.com/noobgg-team/noobgg/common/db"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/redis"
)

// Setup initializes all service components.
// This is the main entry point for every binary in the repo.
func Setup(ctx context.Context, serviceName string, opts ...Option) (*Components, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	components := &Components{
		cleanupFuncs: make([]func() error, 0),
	}

	// 1. Load configuration
	var err error
	if options.customConfig != nil {
		components.Config = options.customConfig
	} else {
		components.Config, err = config.Load(serviceName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// 2. Initialize logger
	if options.customLogger != nil {
		components.Logger = options.customLogger
	} else {
		components.Logger = logger.New(
			components.Config.Service.LogLevel,
			components.Config.Service.LogFormat,
		)
	}

	components.Logger.Info("initializing service",
		"service", serviceName,
		"environment", components.Config.Service.Environment,
	)

	// 3. Initialize database
	if !options.skipDB {
		components.DB, err = db.New(ctx, components.Config, components.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		components.addCleanup(func() error {
			components.DB.Close()
			return nil
		})

		if options.dbInitHook != nil {
			if err := options.dbInitHook(components.DB); err != nil {
				components.Shutdown(ctx)
				return nil, fmt.Errorf("database init hook failed: %w", err)
			}
		}
	}

	// 4. Initialize Redis
	if !options.skipRedis {
		components.Redis, err = redis.New(ctx, components.Config, components.Logger)
		if err != nil {
			components.Shutdown(ctx)
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		components.addCleanup(func() error {
			components.Logger.Info("closing redis connection")
			return components.Redis.Close()
		})
	}

	components.Logger.Info("service initialization complete",
		"service", serviceName,
		"db", components.DB != nil,
		"redis", components.Redis != nil,
	)

	return components, nil
}
