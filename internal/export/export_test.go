package export

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/figures"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/services/dashboard"
	"github.com/thenoetrevino/winedash/internal/testutil"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func setupService(t *testing.T) dashboard.Service {
	t.Helper()

	redPath, whitePath := testutil.WriteWineFiles(t)
	pair, err := dataset.LoadPair(context.Background(), redPath, whitePath)
	require.NoError(t, err)

	svc, err := dashboard.NewService(pair)
	require.NoError(t, err)
	return svc
}

func TestWriteAll(t *testing.T) {
	svc := setupService(t)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteAll(context.Background(), svc, models.SelectBoth, dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, CorrelationFileName),
		filepath.Join(dir, "scatter-both.png"),
	}, paths)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a PNG", path)
	}
}

func TestWriteAll_InvalidSelection(t *testing.T) {
	svc := setupService(t)

	_, err := WriteAll(context.Background(), svc, models.Selection("Rose"), t.TempDir())
	assert.ErrorIs(t, err, dashboard.ErrInvalidSelection)
}

func TestCorrelationPlot_SkipsUndefined(t *testing.T) {
	summary := &models.Summary{
		Features: []string{"a", "b"},
		Correlations: []models.CorrelationRow{
			{Feature: "a", WineType: models.RedWine, Correlation: 0.5},
			{Feature: "b", WineType: models.RedWine, Correlation: models.Stat(math.NaN())},
			{Feature: "a", WineType: models.WhiteWine, Correlation: models.Stat(math.NaN())},
			{Feature: "b", WineType: models.WhiteWine, Correlation: models.Stat(math.NaN())},
		},
	}

	p, err := CorrelationPlot(summary)
	require.NoError(t, err)
	assert.Equal(t, figures.CorrelationTitle, p.Title.Text)
}

func TestCorrelationPlot_Empty(t *testing.T) {
	_, err := CorrelationPlot(&models.Summary{})
	assert.ErrorIs(t, err, ErrNothingToPlot)
}

func TestScatterPlot(t *testing.T) {
	points := []models.ScatterPoint{
		{Alcohol: 9.4, VolatileAcidity: 0.7, Quality: 5, WineType: models.RedWine},
		{Alcohol: 10.1, VolatileAcidity: 0.28, Quality: 7, WineType: models.WhiteWine},
	}

	p, err := ScatterPlot(points, models.SelectBoth)
	require.NoError(t, err)
	assert.Equal(t, "Wine Quality vs. Alcohol (Both)", p.Title.Text)
	assert.Equal(t, figures.AlcoholLabel, p.X.Label.Text)
	assert.Equal(t, figures.QualityLabel, p.Y.Label.Text)

	_, err = ScatterPlot(nil, models.SelectRed)
	assert.ErrorIs(t, err, ErrNothingToPlot)
}

func TestScatterFileName(t *testing.T) {
	assert.Equal(t, "scatter-red-wine.png", ScatterFileName(models.SelectRed))
	assert.Equal(t, "scatter-white-wine.png", ScatterFileName(models.SelectWhite))
	assert.Equal(t, "scatter-both.png", ScatterFileName(models.SelectBoth))
}
