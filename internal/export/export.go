// Package export renders static PNG versions of the dashboard charts with
// gonum/plot.
package export

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/thenoetrevino/winedash/internal/figures"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/services/dashboard"
)

// ErrNothingToPlot is returned when a chart would have no data
var ErrNothingToPlot = errors.New("nothing to plot")

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch

	scatterTitleFmt = "Wine Quality vs. Alcohol (%s)"
)

// wineColor returns the series colour of a wine type: darkred and gold
func wineColor(w models.WineType) color.NRGBA {
	if w == models.WhiteWine {
		return color.NRGBA{R: 255, G: 215, A: 255}
	}
	return color.NRGBA{R: 139, A: 255}
}

// CorrelationPlot builds the correlation line chart: features along x,
// one line with markers per wine type and a dashed reference at zero.
// Undefined correlations leave a gap in their series.
func CorrelationPlot(summary *models.Summary) (*plot.Plot, error) {
	if len(summary.Features) == 0 {
		return nil, ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = figures.CorrelationTitle
	p.X.Label.Text = "Feature"
	p.Y.Label.Text = "Correlation"
	p.NominalX(summary.Features...)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.XAlign = draw.XRight
	p.Legend.Top = true

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.Black
	zero.Width = vg.Points(1)
	zero.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(zero)

	for _, wine := range models.WineTypes {
		rows := summary.CorrelationsFor(wine)
		pts := make(plotter.XYs, 0, len(rows))
		for i, row := range rows {
			if !row.Correlation.Valid() {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(i), Y: float64(row.Correlation)})
		}
		if len(pts) == 0 {
			continue
		}

		l, s, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s series: %w", wine, err)
		}
		l.Color = wineColor(wine)
		l.Width = vg.Points(2)
		s.Color = wineColor(wine)
		s.Shape = draw.CircleGlyph{}
		s.Radius = vg.Points(3)

		p.Add(l, s)
		p.Legend.Add(string(wine), l, s)
	}

	return p, nil
}

// ScatterPlot builds a two-dimensional alcohol against quality scatter for
// the given points, one series per wine type present.
func ScatterPlot(points []models.ScatterPoint, sel models.Selection) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf(scatterTitleFmt, sel)
	p.X.Label.Text = figures.AlcoholLabel
	p.Y.Label.Text = figures.QualityLabel
	p.Legend.Top = true

	for _, wine := range models.WineTypes {
		pts := make(plotter.XYs, 0, len(points))
		for _, pt := range points {
			if pt.WineType == wine {
				pts = append(pts, plotter.XY{X: pt.Alcohol, Y: pt.Quality})
			}
		}
		if len(pts) == 0 {
			continue
		}

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s scatter: %w", wine, err)
		}
		c := wineColor(wine)
		c.A = 178 // 0.7 opacity
		s.Color = c
		s.Shape = draw.CircleGlyph{}
		s.Radius = vg.Points(2)

		p.Add(s)
		p.Legend.Add(string(wine), s)
	}

	return p, nil
}

// ScatterFileName returns the file name of the scatter export for a selection
func ScatterFileName(sel models.Selection) string {
	slug := strings.ToLower(strings.ReplaceAll(string(sel), " ", "-"))
	return "scatter-" + slug + ".png"
}

// CorrelationFileName is the file name of the correlation chart export
const CorrelationFileName = "correlation.png"

// WriteAll renders the correlation chart and the scatter for sel into dir
// and returns the written paths
func WriteAll(ctx context.Context, svc dashboard.Service, sel models.Selection, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	corr, err := CorrelationPlot(svc.Summary())
	if err != nil {
		return nil, fmt.Errorf("correlation chart: %w", err)
	}

	frame, err := svc.Select(ctx, sel)
	if err != nil {
		return nil, err
	}
	points, err := frame.ScatterPoints()
	if err != nil {
		return nil, err
	}
	scatter, err := ScatterPlot(points, sel)
	if err != nil {
		return nil, fmt.Errorf("scatter chart: %w", err)
	}

	outputs := []struct {
		plot *plot.Plot
		path string
	}{
		{corr, filepath.Join(dir, CorrelationFileName)},
		{scatter, filepath.Join(dir, ScatterFileName(sel))},
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if err := out.plot.Save(plotWidth, plotHeight, out.path); err != nil {
			return paths, fmt.Errorf("failed to save %s: %w", out.path, err)
		}
		slog.Info("saved plot", "path", out.path)
		paths = append(paths, out.path)
	}

	return paths, nil
}
