package config

import "github.com/thenoetrevino/winedash/internal/config/colors"

// ColorScheme is the configurable theme
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (wine theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
