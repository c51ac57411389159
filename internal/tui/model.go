// Package tui is the terminal variant of the dashboard. Every frame is
// rendered from the shared summary and the current selection.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/services/dashboard"
	"github.com/thenoetrevino/winedash/internal/tui/components"
	"github.com/thenoetrevino/winedash/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	svc     dashboard.Service
	keys    KeyMap
	help    help.Model
	uiState *state.UIState

	// Scrollable glamour table on the summary tab
	summaryView viewport.Model

	// Scatter points of the current selection
	points []models.ScatterPoint
	err    error
}

// InitialModel creates the TUI model over the dashboard service
func InitialModel(ctx context.Context, svc dashboard.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		ctx:     ctx,
		svc:     svc,
		keys:    NewKeyMap(cfg.KeyMappings),
		help:    help.New(),
		uiState: state.NewUIState(),

		summaryView: viewport.New(),
	}
	m.selectWine(models.DefaultSelection)
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Summary returns the summary tables the model renders from
func (m Model) Summary() *models.Summary {
	return m.svc.Summary()
}

// Selection returns the current wine type selection
func (m Model) Selection() models.Selection {
	return m.uiState.Selection()
}

// ActiveTab returns the tab being displayed
func (m Model) ActiveTab() state.Tab {
	return m.uiState.Tab()
}

// Mode returns the current interaction mode
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// Points returns the scatter points of the current selection
func (m Model) Points() []models.ScatterPoint {
	return m.points
}

// Err returns the last selection error, if any
func (m Model) Err() error {
	return m.err
}

// selectWine switches the selection and refilters the scatter points
func (m *Model) selectWine(sel models.Selection) {
	frame, err := m.svc.Select(m.ctx, sel)
	if err != nil {
		slog.Error("failed to select wine type", "selection", sel, "error", err)
		m.err = err
		return
	}

	points, err := frame.ScatterPoints()
	if err != nil {
		slog.Error("failed to project scatter points", "selection", sel, "error", err)
		m.err = err
		return
	}

	m.uiState.SetSelection(sel)
	m.points = points
	m.err = nil
	m.refreshSummaryView()
	slog.Debug("selection changed", "selection", sel, "rows", len(points))
}

// refreshSummaryView re-renders the summary markdown into the viewport for
// the current size and selection
func (m *Model) refreshSummaryView() {
	width, height := m.uiState.Width(), m.uiState.Height()
	if width == 0 {
		return
	}
	m.summaryView.SetWidth(width)
	m.summaryView.SetHeight(bodyHeight(height))
	m.summaryView.SetContent(components.RenderSummary(m.svc.Summary(), m.uiState.Selection(), width))
}
