package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the active tab and selection)
	Accent string `yaml:"accent"`

	// Series colors
	RedWine   string `yaml:"red_wine"`
	WhiteWine string `yaml:"white_wine"`

	// Chart elements
	Axis     string `yaml:"axis"`
	Positive string `yaml:"positive"` // Bars above the zero line
	Negative string `yaml:"negative"` // Bars below the zero line

	// UI element colors
	Border string `yaml:"border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`

	// Error colors (foreground/background pair)
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// MergeFrom overrides every non-empty field of other onto c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.RedWine, other.RedWine)
	merge(&c.WhiteWine, other.WhiteWine)
	merge(&c.Axis, other.Axis)
	merge(&c.Positive, other.Positive)
	merge(&c.Negative, other.Negative)
	merge(&c.Border, other.Border)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.StatusBarBg, other.StatusBarBg)
	merge(&c.StatusBarText, other.StatusBarText)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	preset.MergeFrom(*c)
	*c = *preset
}
