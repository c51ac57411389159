package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/winedash/internal/tui/components"
	"github.com/thenoetrevino/winedash/internal/tui/state"
)

const (
	tabBarHeight = 3
	footerHeight = 2
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

func (m Model) render() string {
	width, height := m.uiState.Width(), m.uiState.Height()

	if m.uiState.Mode() == state.HelpMode {
		box := components.HelpBoxStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				components.TitleStyle.Render("Keyboard Shortcuts"),
				"",
				m.help.View(m.keys),
			),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	tabNames := make([]string, len(state.Tabs))
	for i, t := range state.Tabs {
		tabNames[i] = t.String()
	}
	tabs := components.RenderTabs(tabNames, int(m.uiState.Tab()), width,
		components.SubtleStyle.Render(string(m.uiState.Selection())))

	available := bodyHeight(height)
	body := m.renderBody(width, available)
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, components.ErrorStyle.Render(m.err.Error()), body)
	}
	body = lipgloss.NewStyle().Height(available).MaxHeight(available).Render(body)

	status := components.RenderStatusBar(components.StatusBarProps{
		Width:     width,
		Selection: m.uiState.Selection(),
		Rows:      len(m.points),
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, status, m.help.View(m.keys))
}

// bodyHeight is the space left for the active chart
func bodyHeight(height int) int {
	return max(height-tabBarHeight-footerHeight, 1)
}

// renderBody draws the active chart. Only the scatter and summary depend on
// the selection.
func (m Model) renderBody(width, height int) string {
	summary := m.svc.Summary()

	switch m.uiState.Tab() {
	case state.CorrelationTab:
		return components.RenderCorrelation(summary, width)
	case state.ScatterTab:
		return components.RenderScatter(m.points, m.uiState.Selection(), width, height)
	case state.SummaryTab:
		return m.summaryView.View()
	default:
		return components.RenderTreemap(summary, width)
	}
}
