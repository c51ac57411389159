package components

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/winedash/internal/figures"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/tui/theme"
)

const treemapStripHeight = 3

// RenderTreemap draws one strip per wine type in which every feature gets a
// block whose width is proportional to its mean. Features whose label does
// not fit their block are listed under the strip.
func RenderTreemap(summary *models.Summary, width int) string {
	width = max(width, 10)

	sections := []string{TitleStyle.Render(figures.TreemapTitle), ""}
	for _, wine := range models.WineTypes {
		sections = append(sections, renderTreemapStrip(wine, summary.MeansFor(wine), width), "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderTreemapStrip(wine models.WineType, rows []models.MeanRow, width int) string {
	color := theme.WineColor(wine)
	header := wineStyle(color).Bold(true).Render(string(wine))

	// Areas cannot be undefined or negative
	valid := make([]models.MeanRow, 0, len(rows))
	total := 0.0
	for _, row := range rows {
		if row.Value.Valid() && row.Value > 0 {
			valid = append(valid, row)
			total += float64(row.Value)
		}
	}
	if len(valid) == 0 || total == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, SubtleStyle.Render("no data"))
	}

	slices.SortStableFunc(valid, func(a, b models.MeanRow) int {
		return cmp.Compare(b.Value, a.Value)
	})

	widths := make([]int, len(valid))
	used := 0
	for i, row := range valid {
		widths[i] = int(float64(row.Value) / total * float64(width))
		used += widths[i]
	}
	// Rounding leftovers go to the largest block
	widths[0] += width - used

	blockStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(theme.Normal)).
		Height(treemapStripHeight).
		AlignVertical(lipgloss.Center)

	var blocks []string
	var hidden []string
	for i, row := range valid {
		label := treemapLabel(row)
		if widths[i] == 0 {
			hidden = append(hidden, label)
			continue
		}

		sep := ""
		if len(blocks) > 0 {
			sep = "▏"
		}
		text := sep + label
		if ansi.StringWidth(text) > widths[i] {
			hidden = append(hidden, label)
			text = ansi.Truncate(text, widths[i], "…")
		}
		blocks = append(blocks, blockStyle.Width(widths[i]).Render(text))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	parts := []string{header, strip}
	if len(hidden) > 0 {
		parts = append(parts, SubtleStyle.Render(wordwrap.String(strings.Join(hidden, " · "), width)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func treemapLabel(row models.MeanRow) string {
	return fmt.Sprintf("%s: %.2f", row.Feature, float64(row.Value))
}
