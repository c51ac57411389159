package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/services/dashboard"
)

// Run starts the terminal dashboard and blocks until the user quits or ctx
// is cancelled
func Run(ctx context.Context, svc dashboard.Service, cfg *config.Config) error {
	model := InitialModel(ctx, svc, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
