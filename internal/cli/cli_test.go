package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/database"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/testutil"
)

func TestNewCLI_CSV(t *testing.T) {
	c, err := NewCLI(context.Background(), testutil.WineConfig(t))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	counts := c.Service.Counts()
	assert.Equal(t, testutil.RedRows, counts[models.SelectRed])
	assert.Equal(t, testutil.WhiteRows, counts[models.SelectWhite])
	assert.Equal(t, testutil.RedRows+testutil.WhiteRows, counts[models.SelectBoth])
}

func TestNewCLI_MissingFile(t *testing.T) {
	cfg := testutil.WineConfig(t)
	cfg.Data.Red = filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewCLI(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestNewCLI_InvalidSource(t *testing.T) {
	cfg := testutil.WineConfig(t)
	cfg.Data.Source = "parquet"

	_, err := NewCLI(context.Background(), cfg)
	require.ErrorIs(t, err, config.ErrInvalidSource)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestNewCLI_SQLiteNotImported(t *testing.T) {
	cfg := testutil.WineConfig(t)
	cfg.Data.Source = config.SourceSQLite

	_, err := NewCLI(context.Background(), cfg)
	require.ErrorIs(t, err, database.ErrDatasetNotFound)
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestNewCLI_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := testutil.WineConfig(t)

	csvCLI, err := NewCLI(ctx, cfg)
	require.NoError(t, err)

	db, err := database.InitDB(ctx, cfg.Data.Database)
	require.NoError(t, err)
	repo := database.NewRepository(db)
	frame, err := csvCLI.Service.Select(ctx, models.SelectBoth)
	require.NoError(t, err)
	require.NoError(t, repo.SaveFrame(ctx, models.RedWine, cfg.Data.Red, frame))
	require.NoError(t, repo.SaveFrame(ctx, models.WhiteWine, cfg.Data.White, frame))
	require.NoError(t, db.Close())

	cfg.Data.Source = config.SourceSQLite
	sqliteCLI, err := NewCLI(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = sqliteCLI.Close() }()

	assert.Equal(t, csvCLI.Service.Summary(), sqliteCLI.Service.Summary())
}

func TestCloseIsIdempotent(t *testing.T) {
	cfg := testutil.WineConfig(t)
	cfg.Data.Source = config.SourceSQLite
	c := &CLI{Config: cfg}
	_, _ = c.loadPair(context.Background())

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestGetCLIFromContext(t *testing.T) {
	cfg := testutil.WineConfig(t)

	injected, err := NewCLI(context.Background(), cfg)
	require.NoError(t, err)

	got, err := GetCLIFromContext(WithCLI(context.Background(), injected))
	require.NoError(t, err)
	assert.Same(t, injected, got)

	built, err := GetCLIFromContext(WithConfig(context.Background(), cfg))
	require.NoError(t, err)
	assert.Same(t, cfg, built.Config)
}

func TestConfigFromContextDefaults(t *testing.T) {
	cfg := ConfigFromContext(context.Background())
	assert.Equal(t, config.Default(), cfg)
}
