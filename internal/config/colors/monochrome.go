package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		RedWine:   "#FFFFFF",
		WhiteWine: "#8A8A8A",

		Axis:     "#585858",
		Positive: "#FFFFFF",
		Negative: "#8A8A8A",

		Border: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",

		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",
	}
}
