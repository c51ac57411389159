// Package styles holds the lipgloss styles used by human-readable command
// output.
package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For row labels like feature names
	ValueStyle    lipgloss.Style // For numeric values
	SectionStyle  lipgloss.Style // For section headers like "Mean Values"

	// Status styles
	SuccessStyle lipgloss.Style

	redWine   string
	whiteWine string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	ValueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Positive))

	redWine = colors.RedWine
	whiteWine = colors.WhiteWine
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// WineText renders text in the series colour of a wine type
func WineText(w models.WineType, text string) string {
	c := redWine
	if w == models.WhiteWine {
		c = whiteWine
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c)).
		Render(text)
}

// FormatStat renders a summary value with four decimals, or n/a when undefined
func FormatStat(s models.Stat) string {
	if !s.Valid() {
		return SubtitleStyle.Render("n/a")
	}
	return ValueStyle.Render(fmt.Sprintf("%.4f", float64(s)))
}
