// Package analysis computes the dashboard's summary tables.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/models"
)

// FeatureValue pairs a feature name with a statistic
type FeatureValue struct {
	Feature string
	Value   float64
}

// Means returns the arithmetic mean of every feature column (quality excluded)
func Means(f *dataset.Frame) ([]FeatureValue, error) {
	if f.Len() == 0 {
		return nil, ErrEmptyFrame
	}

	features := f.Features()
	out := make([]FeatureValue, 0, len(features))
	for _, name := range features {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, FeatureValue{Feature: name, Value: stat.Mean(col, nil)})
	}
	return out, nil
}

// Correlations returns the Pearson correlation of every feature column with
// quality. Quality itself is not included. A constant column yields NaN.
func Correlations(f *dataset.Frame) ([]FeatureValue, error) {
	if f.Len() == 0 {
		return nil, ErrEmptyFrame
	}

	quality, err := f.Column(models.ColumnQuality)
	if err != nil {
		return nil, err
	}

	features := f.Features()
	out := make([]FeatureValue, 0, len(features))
	for _, name := range features {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, FeatureValue{Feature: name, Value: stat.Correlation(col, quality, nil)})
	}
	return out, nil
}

// Summarize builds both summary tables for the pair in long form: every red
// row followed by every white row, features in header order.
func Summarize(p *dataset.Pair) (*models.Summary, error) {
	summary := &models.Summary{
		Features:   p.Red.Features(),
		RedCount:   p.Red.Len(),
		WhiteCount: p.White.Len(),
	}

	frames := []struct {
		wineType models.WineType
		frame    *dataset.Frame
	}{
		{models.RedWine, p.Red},
		{models.WhiteWine, p.White},
	}

	for _, entry := range frames {
		means, err := Means(entry.frame)
		if err != nil {
			return nil, fmt.Errorf("means for %s: %w", entry.wineType, err)
		}
		for _, m := range means {
			summary.Means = append(summary.Means, models.MeanRow{
				Feature:  m.Feature,
				WineType: entry.wineType,
				Value:    models.Stat(m.Value),
			})
		}

		corrs, err := Correlations(entry.frame)
		if err != nil {
			return nil, fmt.Errorf("correlations for %s: %w", entry.wineType, err)
		}
		for _, c := range corrs {
			summary.Correlations = append(summary.Correlations, models.CorrelationRow{
				Feature:     c.Feature,
				WineType:    entry.wineType,
				Correlation: models.Stat(c.Value),
			})
		}
	}

	return summary, nil
}
