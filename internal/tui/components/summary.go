package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/winedash/internal/models"
)

var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	// Check cache first
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	// Create new renderer
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	// Store in cache
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// SummaryMarkdown formats the summary tables of the wine types in a
// selection as Markdown
func SummaryMarkdown(summary *models.Summary, sel models.Selection) string {
	var wines []models.WineType
	for _, w := range models.WineTypes {
		if sel.Includes(w) {
			wines = append(wines, w)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Wine Quality Analysis\n\n")
	fmt.Fprintf(&b, "**Selection:** %s (%d samples)\n\n", sel, summary.Count(sel))

	writeTable := func(heading string, value func(models.WineType, int) models.Stat) {
		fmt.Fprintf(&b, "## %s\n\n| Feature |", heading)
		for _, w := range wines {
			fmt.Fprintf(&b, " %s |", w)
		}
		b.WriteString("\n|---|")
		for range wines {
			b.WriteString("---:|")
		}
		b.WriteString("\n")
		for i, f := range summary.Features {
			fmt.Fprintf(&b, "| %s |", f)
			for _, w := range wines {
				fmt.Fprintf(&b, " %s |", formatStat(value(w, i)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	means := make(map[models.WineType][]models.MeanRow, len(wines))
	corrs := make(map[models.WineType][]models.CorrelationRow, len(wines))
	for _, w := range wines {
		means[w] = summary.MeansFor(w)
		corrs[w] = summary.CorrelationsFor(w)
	}

	writeTable("Mean Values", func(w models.WineType, i int) models.Stat {
		if i < len(means[w]) {
			return means[w][i].Value
		}
		return 0
	})
	writeTable("Correlation with Quality", func(w models.WineType, i int) models.Stat {
		if i < len(corrs[w]) {
			return corrs[w][i].Correlation
		}
		return 0
	})

	return b.String()
}

// RenderSummary renders the summary Markdown for the terminal. Falls back
// to the raw Markdown if rendering fails.
func RenderSummary(summary *models.Summary, sel models.Selection, width int) string {
	md := SummaryMarkdown(summary, sel)

	renderer, err := getRenderer(max(width, 20))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func formatStat(s models.Stat) string {
	if !s.Valid() {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", float64(s))
}
