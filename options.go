package fadaf

import "log/slog"

type config struct {
	logger *slog.Logger
}

// Option configures a Map.
type Option func(*config)

// WithLogger routes the Map's diagnostics to logger instead of the
// package's stderr handler.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = defaultLogger()
	}
	return c
}
