// Package state holds the terminal dashboard's view state. Everything drawn
// on screen is derived from the shared summary plus this state.
package state

import "github.com/thenoetrevino/winedash/internal/models"

// Mode represents the current interaction mode of the TUI
type Mode int

const (
	NormalMode Mode = iota // Charts
	HelpMode               // Key binding overlay
)

// Tab identifies one chart page
type Tab int

const (
	TreemapTab Tab = iota
	CorrelationTab
	ScatterTab
	SummaryTab
)

// Tabs lists every tab in display order
var Tabs = []Tab{TreemapTab, CorrelationTab, ScatterTab, SummaryTab}

// String returns the tab title
func (t Tab) String() string {
	switch t {
	case TreemapTab:
		return "Treemap"
	case CorrelationTab:
		return "Correlation"
	case ScatterTab:
		return "Scatter"
	case SummaryTab:
		return "Summary"
	}
	return "Unknown"
}

// UIState manages the user interface state: active tab, wine type
// selection, terminal dimensions and mode.
type UIState struct {
	tab       Tab
	selection models.Selection
	width     int
	height    int
	mode      Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		tab:       TreemapTab,
		selection: models.DefaultSelection,
		mode:      NormalMode,
	}
}

// Tab returns the active tab
func (s *UIState) Tab() Tab {
	return s.tab
}

// SetTab activates a tab. Out of range values are ignored.
func (s *UIState) SetTab(t Tab) {
	if t < 0 || int(t) >= len(Tabs) {
		return
	}
	s.tab = t
}

// NextTab moves to the next tab, wrapping around
func (s *UIState) NextTab() {
	s.tab = Tab((int(s.tab) + 1) % len(Tabs))
}

// PrevTab moves to the previous tab, wrapping around
func (s *UIState) PrevTab() {
	s.tab = Tab((int(s.tab) + len(Tabs) - 1) % len(Tabs))
}

// Selection returns the current wine type selection
func (s *UIState) Selection() models.Selection {
	return s.selection
}

// SetSelection changes the wine type selection
func (s *UIState) SetSelection(sel models.Selection) {
	s.selection = sel
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
