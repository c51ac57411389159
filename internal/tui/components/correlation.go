package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/winedash/internal/figures"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/tui/theme"
)

// RenderCorrelation draws a signed horizontal bar per feature and wine type
// around a zero axis. Bars span [-1, 1].
func RenderCorrelation(summary *models.Summary, width int) string {
	labelWidth := 0
	for _, f := range summary.Features {
		labelWidth = max(labelWidth, lipgloss.Width(f))
	}
	typeWidth := 0
	for _, w := range models.WineTypes {
		typeWidth = max(typeWidth, lipgloss.Width(string(w)))
	}

	// label, wine type, two halves, axis, value
	half := max((width-labelWidth-typeWidth-12)/2, 5)

	byWine := make(map[models.WineType][]models.CorrelationRow, len(models.WineTypes))
	for _, w := range models.WineTypes {
		byWine[w] = summary.CorrelationsFor(w)
	}

	lines := []string{TitleStyle.Render(figures.CorrelationTitle), ""}
	for i, feature := range summary.Features {
		for j, wine := range models.WineTypes {
			name := ""
			if j == 0 {
				name = feature
			}

			value := models.Stat(math.NaN())
			if rows := byWine[wine]; i < len(rows) {
				value = rows[i].Correlation
			}

			lines = append(lines, fmt.Sprintf("%-*s  %s %s %s",
				labelWidth, name,
				wineStyle(theme.WineColor(wine)).Render(fmt.Sprintf("%-*s", typeWidth, wine)),
				renderSignedBar(value, half, theme.WineColor(wine)),
				renderCorrelationValue(value),
			))
		}
	}

	axis := fmt.Sprintf("%-*s  %-*s %s", labelWidth, "", typeWidth, "",
		AxisStyle.Render(fmt.Sprintf("%-*s%s%*s", half, "-1", "0", half, "+1")))
	lines = append(lines, axis)

	return strings.Join(lines, "\n")
}

func renderSignedBar(value models.Stat, half int, color string) string {
	axis := AxisStyle.Render("│")
	if !value.Valid() {
		return strings.Repeat(" ", half) + axis + strings.Repeat(" ", half)
	}

	v := math.Max(-1, math.Min(1, float64(value)))
	n := int(math.Round(math.Abs(v) * float64(half)))
	bar := wineStyle(color).Render(strings.Repeat("█", n))

	if v < 0 {
		return strings.Repeat(" ", half-n) + bar + axis + strings.Repeat(" ", half)
	}
	return strings.Repeat(" ", half) + axis + bar + strings.Repeat(" ", half-n)
}

func renderCorrelationValue(value models.Stat) string {
	if !value.Valid() {
		return SubtleStyle.Render("  n/a")
	}
	color := theme.Positive
	if value < 0 {
		color = theme.Negative
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(fmt.Sprintf("%+.2f", float64(value)))
}
