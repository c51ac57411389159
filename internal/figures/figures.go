// Package figures builds the three dashboard charts as ECharts options.
// The web dashboard sends them to the browser as JSON; the terminal
// dashboard draws from the same values.
package figures

import (
	"fmt"

	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/models"
)

// Chart titles and axis labels
const (
	TreemapTitle     = "Treemap: Mean Values of Independent Variables for Red vs. White Wine"
	CorrelationTitle = "Correlation Strength of Physiochemical Properties with Wine Quality"
	scatterTitleFmt  = "Wine Quality vs. Alcohol & Volatile Acidity (%s)"

	AlcoholLabel         = "Alcohol Content"
	VolatileAcidityLabel = "Volatile Acidity"
	QualityLabel         = "Quality Score"
)

// Figures is the full set of charts for one selection
type Figures struct {
	Selection   models.Selection `json:"selection"`
	Treemap     *TreemapOption   `json:"treemap"`
	Correlation *LineOption      `json:"correlation"`
	Scatter     *Scatter3DOption `json:"scatter"`
}

// ScatterTitle returns the 3D scatter title for a selection
func ScatterTitle(sel models.Selection) string {
	return fmt.Sprintf(scatterTitleFmt, sel)
}

// Treemap builds the mean-value treemap: wine type, then feature. Each leaf
// is labelled "feature: value" with two decimals.
func Treemap(summary *models.Summary) *TreemapOption {
	roots := make([]TreemapNode, 0, len(models.WineTypes))
	for _, wine := range models.WineTypes {
		rows := summary.MeansFor(wine)
		children := make([]TreemapNode, 0, len(rows))
		for _, row := range rows {
			// Treemap areas cannot be undefined or negative
			if !row.Value.Valid() || row.Value < 0 {
				continue
			}
			children = append(children, TreemapNode{
				Name:  row.Feature,
				Value: row.Value,
				Label: &Label{
					Show:      true,
					Position:  "inside",
					Formatter: fmt.Sprintf("%s: %.2f", row.Feature, float64(row.Value)),
				},
			})
		}

		roots = append(roots, TreemapNode{
			Name:      string(wine),
			ItemStyle: &ItemStyle{Color: wine.Color()},
			Children:  children,
		})
	}

	return &TreemapOption{
		Title:   Title{Text: TreemapTitle, Left: "center"},
		Tooltip: Tooltip{Formatter: "{b}: {c}"},
		Series: []TreemapSeries{{
			Type:       "treemap",
			Name:       "Mean Value",
			Roam:       false,
			NodeClick:  false,
			UpperLabel: Label{Show: true},
			Label:      Label{Show: true},
			Data:       roots,
		}},
	}
}

// Correlation builds the correlation line chart: one smoothed line with
// markers per wine type and a dashed reference line at zero.
func Correlation(summary *models.Summary) *LineOption {
	legend := make([]string, 0, len(models.WineTypes))
	series := make([]LineSeries, 0, len(models.WineTypes))

	for i, wine := range models.WineTypes {
		rows := summary.CorrelationsFor(wine)
		data := make([]models.Stat, len(rows))
		for j, row := range rows {
			data[j] = row.Correlation
		}

		s := LineSeries{
			Type:       "line",
			Name:       string(wine),
			Smooth:     true,
			Symbol:     "circle",
			SymbolSize: 8,
			ShowSymbol: true,
			ItemStyle:  ItemStyle{Color: wine.Color()},
			LineStyle:  LineStyle{Color: wine.Color(), Width: 2},
			Data:       data,
		}
		if i == 0 {
			s.MarkLine = &MarkLine{
				Silent:    true,
				Symbol:    "none",
				LineStyle: LineStyle{Color: "black", Width: 2, Type: "dashed"},
				Data:      []MarkLineData{{YAxis: 0}},
			}
		}

		legend = append(legend, string(wine))
		series = append(series, s)
	}

	return &LineOption{
		Title:   Title{Text: CorrelationTitle, Left: "center"},
		Tooltip: Tooltip{Trigger: "axis"},
		Legend:  Legend{Data: legend, Top: 30},
		XAxis:   Axis{Type: "category", Name: "Feature", Data: summary.Features},
		YAxis:   Axis{Type: "value", Name: "Correlation"},
		Series:  series,
	}
}

// Scatter builds the 3D scatter of alcohol, volatile acidity and quality
// for the selected frame, one series per wine type present.
func Scatter(frame *dataset.Frame, sel models.Selection) (*Scatter3DOption, error) {
	points, err := frame.ScatterPoints()
	if err != nil {
		return nil, err
	}

	byType := make(map[models.WineType][][3]float64, len(models.WineTypes))
	for _, p := range points {
		byType[p.WineType] = append(byType[p.WineType], [3]float64{p.Alcohol, p.VolatileAcidity, p.Quality})
	}

	opt := &Scatter3DOption{
		Title:   Title{Text: ScatterTitle(sel), Left: "center"},
		Tooltip: Tooltip{},
		XAxis3D: Axis{Type: "value", Name: AlcoholLabel},
		YAxis3D: Axis{Type: "value", Name: VolatileAcidityLabel},
		ZAxis3D: Axis{Type: "value", Name: QualityLabel},
		Legend:  Legend{Data: []string{}, Top: 30},
		Series:  []Scatter3DSeries{},
	}

	for _, wine := range models.WineTypes {
		data, ok := byType[wine]
		if !ok {
			continue
		}
		opt.Legend.Data = append(opt.Legend.Data, string(wine))
		opt.Series = append(opt.Series, Scatter3DSeries{
			Type:       "scatter3D",
			Name:       string(wine),
			SymbolSize: 4,
			ItemStyle:  ItemStyle{Color: wine.Color(), Opacity: 0.7},
			Data:       data,
		})
	}
	return opt, nil
}
