package enum

import (
	"log/slog"
)

// Option configures a Registry.
type Option func(*registryConfig)

// registryConfig holds configuration for a Registry instance.
type registryConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by a Registry.
// If not provided, or nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

func newRegistryConfig(opts []Option) *registryConfig {
	cfg := &registryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}
