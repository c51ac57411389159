package config

// KeyMappings defines the terminal dashboard key bindings
type KeyMappings struct {
	// Selection
	SelectRed      string `yaml:"select_red"`
	SelectWhite    string `yaml:"select_white"`
	SelectBoth     string `yaml:"select_both"`
	CycleSelection string `yaml:"cycle_selection"`

	// Navigation
	NextTab string `yaml:"next_tab"`
	PrevTab string `yaml:"prev_tab"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		SelectRed:      "r",
		SelectWhite:    "w",
		SelectBoth:     "b",
		CycleSelection: "s",

		NextTab: "tab",
		PrevTab: "shift+tab",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.SelectRed == "" {
		k.SelectRed = defaults.SelectRed
	}
	if k.SelectWhite == "" {
		k.SelectWhite = defaults.SelectWhite
	}
	if k.SelectBoth == "" {
		k.SelectBoth = defaults.SelectBoth
	}
	if k.CycleSelection == "" {
		k.CycleSelection = defaults.CycleSelection
	}
	if k.NextTab == "" {
		k.NextTab = defaults.NextTab
	}
	if k.PrevTab == "" {
		k.PrevTab = defaults.PrevTab
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
