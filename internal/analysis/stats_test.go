package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/testutil"
)

func frameOf(t *testing.T, cols []string, values ...[]float64) *dataset.Frame {
	t.Helper()

	labels := make([]models.WineType, len(values[0]))
	for i := range labels {
		labels[i] = models.RedWine
	}
	f, err := dataset.NewFrame(cols, values, labels)
	require.NoError(t, err)
	return f
}

func TestMeans(t *testing.T) {
	f := frameOf(t, []string{"alcohol", "quality", "pH"},
		[]float64{9, 10, 11, 12},
		[]float64{5, 5, 6, 6},
		[]float64{3.0, 3.2, 3.4, 3.6})

	means, err := Means(f)
	require.NoError(t, err)
	require.Len(t, means, 2)

	assert.Equal(t, "alcohol", means[0].Feature)
	assert.InDelta(t, 10.5, means[0].Value, 1e-12)
	assert.Equal(t, "pH", means[1].Feature)
	assert.InDelta(t, 3.3, means[1].Value, 1e-12)
}

func TestCorrelations(t *testing.T) {
	f := frameOf(t, []string{"up", "down", "flat", "quality"},
		[]float64{1, 2, 3, 4},
		[]float64{8, 6, 4, 2},
		[]float64{7, 7, 7, 7},
		[]float64{3, 4, 5, 6})

	corrs, err := Correlations(f)
	require.NoError(t, err)
	require.Len(t, corrs, 3)

	assert.InDelta(t, 1.0, corrs[0].Value, 1e-12)
	assert.InDelta(t, -1.0, corrs[1].Value, 1e-12)
	assert.True(t, math.IsNaN(corrs[2].Value), "constant column should have undefined correlation")
}

func TestCorrelations_RequiresQuality(t *testing.T) {
	f := frameOf(t, []string{"alcohol"}, []float64{1, 2})

	_, err := Correlations(f)
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

func TestMeans_EmptyFrame(t *testing.T) {
	f, err := dataset.NewFrame([]string{"quality"}, [][]float64{{}}, nil)
	require.NoError(t, err)

	_, err = Means(f)
	assert.ErrorIs(t, err, ErrEmptyFrame)
	_, err = Correlations(f)
	assert.ErrorIs(t, err, ErrEmptyFrame)
}

func TestSummarize_OneRowPerFeaturePerWineType(t *testing.T) {
	redPath, whitePath := testutil.WriteWineFiles(t)
	pair, err := dataset.LoadPair(context.Background(), redPath, whitePath)
	require.NoError(t, err)

	summary, err := Summarize(pair)
	require.NoError(t, err)

	assert.Equal(t, testutil.FixtureFeatures, summary.Features)
	assert.Len(t, summary.Means, 2*len(testutil.FixtureFeatures))
	assert.Len(t, summary.Correlations, 2*len(testutil.FixtureFeatures))
	assert.Equal(t, testutil.RedRows, summary.RedCount)
	assert.Equal(t, testutil.WhiteRows, summary.WhiteCount)

	for _, row := range summary.Means {
		assert.NotEqual(t, models.ColumnQuality, row.Feature)
	}
	for _, row := range summary.Correlations {
		assert.NotEqual(t, models.ColumnQuality, row.Feature)
	}

	red := summary.MeansFor(models.RedWine)
	require.Len(t, red, len(testutil.FixtureFeatures))
	assert.Equal(t, "fixed acidity", red[0].Feature)
	assert.InDelta(t, 8.45, float64(red[0].Value), 1e-9)
	assert.InDelta(t, 9.75, float64(red[3].Value), 1e-9)

	white := summary.MeansFor(models.WhiteWine)
	assert.InDelta(t, 28.4/3, float64(white[3].Value), 1e-9)

	// Alcohol rises with quality in the white fixture
	whiteCorr := summary.CorrelationsFor(models.WhiteWine)
	assert.Greater(t, float64(whiteCorr[3].Correlation), 0.9)
}
