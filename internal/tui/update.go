package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/tui/state"
)

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		m.refreshSummaryView()
		return m, nil

	case tea.KeyMsg:
		if m.uiState.Mode() == state.HelpMode {
			return m.handleHelpMode(msg)
		}
		return m.handleNormalMode(msg)
	}

	return m, nil
}

// handleHelpMode closes the help overlay
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShowHelp, m.keys.Quit), msg.String() == "esc":
		m.uiState.SetMode(state.NormalMode)
		m.help.ShowAll = false
	}
	return m, nil
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.uiState.SetMode(state.HelpMode)
		m.help.ShowAll = true

	case key.Matches(msg, m.keys.SelectRed):
		m.selectWine(models.SelectRed)
	case key.Matches(msg, m.keys.SelectWhite):
		m.selectWine(models.SelectWhite)
	case key.Matches(msg, m.keys.SelectBoth):
		m.selectWine(models.SelectBoth)
	case key.Matches(msg, m.keys.CycleSelection):
		m.selectWine(m.uiState.Selection().Next())

	case key.Matches(msg, m.keys.NextTab):
		m.uiState.NextTab()
	case key.Matches(msg, m.keys.PrevTab):
		m.uiState.PrevTab()
	case key.Matches(msg, m.keys.JumpTab):
		m.uiState.SetTab(state.Tab(msg.String()[0] - '1'))

	case m.uiState.Tab() == state.SummaryTab:
		// Remaining keys scroll the summary table
		var cmd tea.Cmd
		m.summaryView, cmd = m.summaryView.Update(msg)
		return m, cmd
	}

	return m, nil
}
