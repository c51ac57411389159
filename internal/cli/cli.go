// Package cli holds what the winedash subcommands share: loading the data
// source into the dashboard service, output formatting and exit codes.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/database"
	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/services/dashboard"
)

// CLI represents the CLI application context
type CLI struct {
	Config  *config.Config
	Service dashboard.Service

	db        *sql.DB
	closeOnce sync.Once
}

// NewCLI loads the configured data source and builds the dashboard service
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &CLI{Config: cfg}

	pair, err := c.loadPair(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	svc, err := dashboard.NewService(pair, dashboard.WithLogger(slog.Default()))
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Service = svc

	return c, nil
}

func (c *CLI) loadPair(ctx context.Context) (*dataset.Pair, error) {
	switch c.Config.Data.Source {
	case config.SourceSQLite:
		db, err := database.InitDB(ctx, c.Config.Data.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.db = db

		pair, err := database.NewRepository(db).LoadPair(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load datasets from store: %w", err)
		}
		return pair, nil

	default:
		slog.Debug("loading datasets", "red", c.Config.Data.Red, "white", c.Config.Data.White)
		return dataset.LoadPair(ctx, c.Config.Data.Red, c.Config.Data.White)
	}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var err error
	c.closeOnce.Do(func() {
		if c.db != nil {
			err = c.db.Close()
		}
	})
	return err
}
