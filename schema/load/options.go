package load

import (
	"log/slog"

	"github.com/lambda-lang/core/types"
)

// Option configures a Load call, the same functional-options pattern used
// throughout this module (WithLogger, WithRegistry, etc.), reduced to the
// subset this declarative loader needs: no filesystem
// module roots or import resolution, since spec.md §1 places the full
// Lambda module/import system out of scope.
type Option func(*config)

type config struct {
	registry   *types.Registry
	issueLimit int
	logger     *slog.Logger
}

func defaultConfig() *config {
	return &config{issueLimit: 100}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRegistry loads declarations into an existing registry instead of a
// fresh one, letting several schema sources share one namespace the way a
// validate.Validator's Resolver would expect for a multi-file schema.
func WithRegistry(r *types.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithIssueLimit caps the number of diagnostics collected during loading.
// Zero means unlimited. Default is 100.
func WithIssueLimit(limit int) Option {
	return func(c *config) {
		c.issueLimit = limit
	}
}

// WithLogger provides a structured logger for load diagnostics. If not
// set, no logging is performed.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
