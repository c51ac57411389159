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

const yLabelWidth = 7

type scatterCell struct {
	glyph rune
	wine  models.WineType
}

// RenderScatter projects the three-dimensional scatter onto the terminal:
// alcohol on the x axis, volatile acidity on the y axis and the quality
// score as the glyph drawn at each point.
func RenderScatter(points []models.ScatterPoint, sel models.Selection, width, height int) string {
	title := TitleStyle.Render(figures.ScatterTitle(sel))
	if len(points) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", SubtleStyle.Render("no samples"))
	}

	plotW := max(width-yLabelWidth-2, 10)
	plotH := max(height-6, 5)

	xMin, xMax := scatterRange(points, func(p models.ScatterPoint) float64 { return p.Alcohol })
	yMin, yMax := scatterRange(points, func(p models.ScatterPoint) float64 { return p.VolatileAcidity })

	grid := make([][]scatterCell, plotH)
	for i := range grid {
		grid[i] = make([]scatterCell, plotW)
	}

	present := make(map[models.WineType]bool, len(models.WineTypes))
	for _, p := range points {
		col := scale(p.Alcohol, xMin, xMax, plotW)
		row := plotH - 1 - scale(p.VolatileAcidity, yMin, yMax, plotH)
		grid[row][col] = scatterCell{glyph: qualityGlyph(p.Quality), wine: p.WineType}
		present[p.WineType] = true
	}

	lines := []string{title, ""}
	for r, cells := range grid {
		label := strings.Repeat(" ", yLabelWidth)
		switch r {
		case 0:
			label = fmt.Sprintf("%*.2f", yLabelWidth, yMax)
		case plotH - 1:
			label = fmt.Sprintf("%*.2f", yLabelWidth, yMin)
		}

		var b strings.Builder
		for _, c := range cells {
			if c.glyph == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(wineStyle(theme.WineColor(c.wine)).Render(string(c.glyph)))
		}
		lines = append(lines, AxisStyle.Render(label+" │")+b.String())
	}

	lines = append(lines,
		AxisStyle.Render(strings.Repeat(" ", yLabelWidth)+" └"+strings.Repeat("─", plotW)),
		AxisStyle.Render(fmt.Sprintf("%*s%-*.2f%*.2f", yLabelWidth+2, "", plotW/2, xMin, plotW-plotW/2, xMax)),
	)

	var legend []string
	for _, w := range models.WineTypes {
		if present[w] {
			legend = append(legend, wineStyle(theme.WineColor(w)).Render("● "+string(w)))
		}
	}
	lines = append(lines, "",
		strings.Join(legend, "  "),
		SubtleStyle.Render(fmt.Sprintf("x: %s · y: %s · glyph: %s",
			figures.AlcoholLabel, figures.VolatileAcidityLabel, figures.QualityLabel)),
	)

	return strings.Join(lines, "\n")
}

func scatterRange(points []models.ScatterPoint, value func(models.ScatterPoint) float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		v := value(p)
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

// scale maps v in [lo, hi] onto a cell index in [0, n)
func scale(v, lo, hi float64, n int) int {
	if math.IsNaN(v) {
		return 0
	}
	i := int((v - lo) / (hi - lo) * float64(n-1))
	return max(0, min(n-1, i))
}

func qualityGlyph(q float64) rune {
	if math.IsNaN(q) {
		return '?'
	}
	v := int(math.Round(q))
	if v < 0 || v > 9 {
		return '*'
	}
	return rune('0' + v)
}
