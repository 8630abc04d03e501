package validate

import (
	"log/slog"
	"time"
)

// Option configures a Validator, the same functional-options pattern
// used throughout this module.
type Option func(*config)

// config holds validator configuration.
type config struct {
	logger    *slog.Logger
	maxDepth  int
	maxErrors int
	timeout   time.Duration
}

// defaultConfig returns the default validator configuration (spec.md
// §4.5's global controls: max_depth, max_errors, timeout_ms; zero/negative
// values mean "unconstrained" except maxDepth, which always needs a floor
// to keep a pathological schema from recursing forever).
func defaultConfig() *config {
	return &config{
		maxDepth:  128,
		maxErrors: 100,
	}
}

// WithLogger stores logger in the Validator's configuration. Validation
// emits no log records, whether or not a logger is set.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMaxDepth sets the recursion depth limit (spec.md §4.5 "max_depth:
// CONSTRAINT_VIOLATION if exceeded"). Non-positive values are ignored.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithMaxErrors caps the number of errors collected before validation
// short-circuits (spec.md §4.5 "max_errors: >0 short-circuits after the
// Nth error"). Zero or negative means unconstrained.
func WithMaxErrors(n int) Option {
	return func(c *config) {
		c.maxErrors = n
	}
}

// WithTimeout bounds validation wall-clock time, measured from session
// start (spec.md §4.5 "timeout_ms: measured from session start"). Zero
// means unconstrained.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// applyOptions applies the given options to a default config.
func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
