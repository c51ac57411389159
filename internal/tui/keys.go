package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/winedash/internal/config"
)

// KeyMap holds the dashboard key bindings, built from the configured key
// mappings
type KeyMap struct {
	SelectRed      key.Binding
	SelectWhite    key.Binding
	SelectBoth     key.Binding
	CycleSelection key.Binding
	NextTab        key.Binding
	PrevTab        key.Binding
	JumpTab        key.Binding
	ShowHelp       key.Binding
	Quit           key.Binding
}

// NewKeyMap creates the bindings for the given mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		SelectRed: key.NewBinding(
			key.WithKeys(km.SelectRed),
			key.WithHelp(km.SelectRed, "red wine"),
		),
		SelectWhite: key.NewBinding(
			key.WithKeys(km.SelectWhite),
			key.WithHelp(km.SelectWhite, "white wine"),
		),
		SelectBoth: key.NewBinding(
			key.WithKeys(km.SelectBoth),
			key.WithHelp(km.SelectBoth, "both wines"),
		),
		CycleSelection: key.NewBinding(
			key.WithKeys(km.CycleSelection),
			key.WithHelp(km.CycleSelection, "cycle selection"),
		),
		NextTab: key.NewBinding(
			key.WithKeys(km.NextTab),
			key.WithHelp(km.NextTab, "next chart"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys(km.PrevTab),
			key.WithHelp(km.PrevTab, "previous chart"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to chart"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleSelection, k.NextTab, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SelectRed, k.SelectWhite, k.SelectBoth, k.CycleSelection},
		{k.NextTab, k.PrevTab, k.JumpTab},
		{k.ShowHelp, k.Quit},
	}
}
