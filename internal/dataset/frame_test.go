package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/winedash/internal/models"
)

func buildFrame(t *testing.T, wine models.WineType, cols []string, values ...[]float64) *Frame {
	t.Helper()

	n := 0
	if len(values) > 0 {
		n = len(values[0])
	}
	labels := make([]models.WineType, n)
	for i := range labels {
		labels[i] = wine
	}

	f, err := NewFrame(cols, values, labels)
	require.NoError(t, err)
	return f
}

func TestNewFrame_RaggedColumns(t *testing.T) {
	_, err := NewFrame([]string{"a", "b"}, [][]float64{{1, 2}, {1}}, []models.WineType{models.RedWine, models.RedWine})
	assert.ErrorIs(t, err, ErrRaggedFrame)

	_, err = NewFrame([]string{"a"}, [][]float64{{1}, {2}}, []models.WineType{models.RedWine})
	assert.ErrorIs(t, err, ErrRaggedFrame)
}

func TestFrame_FeaturesExcludeQuality(t *testing.T) {
	f := buildFrame(t, models.RedWine, []string{"alcohol", "quality", "pH"},
		[]float64{1}, []float64{5}, []float64{3.2})

	assert.Equal(t, []string{"alcohol", "pH"}, f.Features())
}

func TestFrame_Require(t *testing.T) {
	f := buildFrame(t, models.RedWine, []string{"alcohol", "quality"}, []float64{1}, []float64{5})

	assert.NoError(t, f.Require("alcohol", "quality"))
	assert.ErrorIs(t, f.Require("volatile acidity"), ErrMissingColumn)
}

func TestFrame_UnknownColumn(t *testing.T) {
	f := buildFrame(t, models.RedWine, []string{"alcohol"}, []float64{1})

	_, err := f.Column("density")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestFrame_Row(t *testing.T) {
	f := buildFrame(t, models.RedWine, []string{"a", "b"}, []float64{1, 2}, []float64{3, 4})

	assert.Equal(t, []float64{2, 4}, f.Row(1))
}

func TestConcat(t *testing.T) {
	cols := []string{"alcohol", "quality"}
	red := buildFrame(t, models.RedWine, cols, []float64{9, 10}, []float64{5, 6})
	white := buildFrame(t, models.WhiteWine, cols, []float64{11}, []float64{7})

	both, err := Concat(red, white)
	require.NoError(t, err)

	assert.Equal(t, 3, both.Len())
	alcohol, _ := both.Column("alcohol")
	assert.Equal(t, []float64{9, 10, 11}, alcohol)
	assert.Equal(t, []models.WineType{models.RedWine, models.RedWine, models.WhiteWine}, both.Labels())
	assert.Equal(t, 2, both.CountOf(models.RedWine))
	assert.Equal(t, 1, both.CountOf(models.WhiteWine))

	// Sources stay untouched
	assert.Equal(t, 2, red.Len())
	assert.Equal(t, 1, white.Len())
}

func TestConcat_ColumnMismatch(t *testing.T) {
	red := buildFrame(t, models.RedWine, []string{"alcohol", "quality"}, []float64{9}, []float64{5})
	white := buildFrame(t, models.WhiteWine, []string{"quality", "alcohol"}, []float64{5}, []float64{9})

	_, err := Concat(red, white)
	assert.ErrorIs(t, err, ErrColumnMismatch)
}

func TestFrame_ScatterPoints(t *testing.T) {
	f := buildFrame(t, models.WhiteWine,
		[]string{"alcohol", "volatile acidity", "quality"},
		[]float64{9.5}, []float64{0.3}, []float64{6})

	points, err := f.ScatterPoints()
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, models.ScatterPoint{
		Alcohol:         9.5,
		VolatileAcidity: 0.3,
		Quality:         6,
		WineType:        models.WhiteWine,
	}, points[0])
}
