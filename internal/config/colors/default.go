package colors

// Default returns the default color scheme (wine theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#D75FD7",

		// Series (darkred and gold)
		RedWine:   "#8B0000",
		WhiteWine: "#FFD700",

		// Chart elements
		Axis:     "#585858",
		Positive: "#5FD75F",
		Negative: "#FF5F5F",

		// UI elements
		Border: "#5F87D7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status bar
		StatusBarBg:   "#874BFD",
		StatusBarText: "#D0D0D0",

		// Errors
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
