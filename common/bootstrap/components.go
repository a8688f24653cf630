package bootstrap

import (
	"context"
	"fmt"

	"github.com/noobgg-team/noobgg/common/config"
	"github.com/noobgg-team/noobgg/common/db"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/redis"
)

// Components holds all initialized service dependencies
type Components struct {
	Config *config.Config
	Logger *logger.Logger
	DB     *db.DB
	Redis  *redis.Client

	cleanupFuncs []func() error
}

// Shutdown performs graceful shutdown of all components.
// Should be called with defer after Setup().
func (c *Components) Shutdown(ctx context.Context) error {
	c.Logger.Info("shutting down components")

	var errs []error

	// Run cleanup functions in reverse order (LIFO)
	for i := len(c.cleanupFuncs) - 1; i >= 0; i-- {
		if err := c.cleanupFuncs[i](); err != nil {
			errs = append(errs, err)
			c.Logger.Error("cleanup error", "error", err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	c.Logger.Info("shutdown complete")
	return nil
}

func (c *Components) addCleanup(fn func() error) {
	c.cleanupFuncs = append(c.cleanupFuncs, fn)
}
