package cli

import (
	"context"

	"github.com/thenoetrevino/winedash/internal/config"
)

type contextKey string

const (
	configKey contextKey = "config"
	cliKey    contextKey = "cli"
)

// WithConfig stores the resolved configuration for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or the
// defaults when none was stored
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// WithCLI stores a ready CLI instance. Commands run under this context use it
// instead of loading the data again.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI or builds one from the
// configuration in ctx
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c, ok := ctx.Value(cliKey).(*CLI); ok && c != nil {
		return c, nil
	}
	return NewCLI(ctx, ConfigFromContext(ctx))
}
