package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/testutil"
)

func loadFixturePair(t *testing.T) *Pair {
	t.Helper()

	redPath, whitePath := testutil.WriteWineFiles(t)
	pair, err := LoadPair(context.Background(), redPath, whitePath)
	require.NoError(t, err)
	return pair
}

func TestLoadPair(t *testing.T) {
	pair := loadFixturePair(t)

	assert.Equal(t, testutil.RedRows, pair.Red.Len())
	assert.Equal(t, testutil.WhiteRows, pair.White.Len())
	assert.Equal(t, testutil.RedRows+testutil.WhiteRows, pair.Combined.Len())
}

func TestLoadPair_MissingWhiteFile(t *testing.T) {
	redPath, _ := testutil.WriteWineFiles(t)
	missing := filepath.Join(t.TempDir(), "winequality-white.csv")

	_, err := LoadPair(context.Background(), redPath, missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPair_MissingRequiredColumn(t *testing.T) {
	redPath := testutil.WriteFile(t, "red.csv", "\"alcohol\";\"quality\"\n9.4;5\n")
	_, whitePath := testutil.WriteWineFiles(t)

	_, err := LoadPair(context.Background(), redPath, whitePath)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestPair_SelectRowCounts(t *testing.T) {
	pair := loadFixturePair(t)

	tests := []struct {
		sel  models.Selection
		want int
	}{
		{models.SelectRed, testutil.RedRows},
		{models.SelectWhite, testutil.WhiteRows},
		{models.SelectBoth, testutil.RedRows + testutil.WhiteRows},
	}

	for _, tt := range tests {
		t.Run(string(tt.sel), func(t *testing.T) {
			frame, err := pair.Select(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, frame.Len())
		})
	}
}

func TestPair_SelectInvalid(t *testing.T) {
	pair := loadFixturePair(t)

	_, err := pair.Select(models.Selection("rose"))
	assert.ErrorIs(t, err, models.ErrInvalidSelection)
}
