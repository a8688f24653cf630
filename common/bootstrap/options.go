package bootstrap

import (
	"github.com/noobgg-team/noobgg/common/config"
	"github.com/noobgg-team/noobgg/common/db"
	"github.com/noobgg-team/noobgg/common/logger"
)

// Option customizes Setup
type Option func(*options)

type options struct {
	skipDB       bool
	skipRedis    bool
	customConfig *config.Config
	customLogger *logger.Logger
	dbInitHook   func(*db.DB) error
}

func defaultOptions() *options {
	return &options{}
}

// WithoutDB skips database initialization (tools that only need config/logging)
func WithoutDB() Option {
	return func(o *options) {
		o.skipDB = true
	}
}

// WithoutRedis skips Redis initialization
func WithoutRedis() Option {
	return func(o *options) {
		o.skipRedis = true
	}
}

// WithConfig supplies a pre-built config instead of loading from env
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.customConfig = cfg
	}
}

// WithLogger supplies a pre-built logger
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.customLogger = log
	}
}

// WithDBInitHook runs fn right after the database connects; used to apply
// the schema at startup
func WithDBInitHook(fn func(*db.DB) error) Option {
	return func(o *options) {
		o.dbInitHook = fn
	}
}
