// Package theme holds the terminal dashboard colours, initialized from the
// configured colour scheme.
package theme

import (
	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	RedWine       string
	WhiteWine     string
	Axis          string
	Positive      string
	Negative      string
	Border        string
	Title         string
	Subtle        string
	Normal        string
	StatusBarBg   string
	StatusBarText string
	ErrorFg       string
	ErrorBg       string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	RedWine = colors.RedWine
	WhiteWine = colors.WhiteWine
	Axis = colors.Axis
	Positive = colors.Positive
	Negative = colors.Negative
	Border = colors.Border
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}

// WineColor returns the series colour of a wine type
func WineColor(w models.WineType) string {
	if w == models.WhiteWine {
		return WhiteWine
	}
	return RedWine
}
