package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/tui/theme"
)

type StatusBarProps struct {
	Width     int
	Selection models.Selection
	Rows      int
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "Wine Quality Analysis · <selection> (<rows> samples)"
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := fmt.Sprintf("Wine Quality Analysis · %s (%d samples)", props.Selection, props.Rows)
	rightText := "press ? for help"

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := style.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
