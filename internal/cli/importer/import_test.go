package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/testutil"
)

func TestImportJSON(t *testing.T) {
	cfg := testutil.WineConfig(t)
	ctx := cli.WithConfig(context.Background(), cfg)

	output, err := testutil.ExecuteCommandContext(t, ctx, ImportCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	data := result["data"].(map[string]interface{})
	datasets := data["datasets"].([]interface{})
	require.Len(t, datasets, 2)

	red := datasets[0].(map[string]interface{})
	assert.Equal(t, "Red Wine", red["wine_type"])
	assert.Equal(t, float64(testutil.RedRows), red["row_count"])
	assert.Equal(t, float64(len(testutil.FixtureFeatures)+1), red["columns"])
	assert.Equal(t, cfg.Data.Red, red["source_path"])

	white := datasets[1].(map[string]interface{})
	assert.Equal(t, "White Wine", white["wine_type"])
	assert.Equal(t, float64(testutil.WhiteRows), white["row_count"])
}

func TestImportThenLoadFromStore(t *testing.T) {
	cfg := testutil.WineConfig(t)
	ctx := context.Background()

	_, err := Import(ctx, cfg)
	require.NoError(t, err)
	// importing twice replaces the previous rows
	datasets, err := Import(ctx, cfg)
	require.NoError(t, err)
	require.Len(t, datasets, 2)

	csvCLI, err := cli.NewCLI(ctx, cfg)
	require.NoError(t, err)

	stored := *cfg
	stored.Data.Source = config.SourceSQLite
	sqliteCLI, err := cli.NewCLI(ctx, &stored)
	require.NoError(t, err)
	defer func() { _ = sqliteCLI.Close() }()

	assert.Equal(t, csvCLI.Service.Counts(), sqliteCLI.Service.Counts())
	assert.Equal(t, testutil.RedRows+testutil.WhiteRows, sqliteCLI.Service.Counts()[models.SelectBoth])
	assert.Equal(t, csvCLI.Service.Summary(), sqliteCLI.Service.Summary())
}

func TestImportQuietAndHuman(t *testing.T) {
	cfg := testutil.WineConfig(t)
	ctx := cli.WithConfig(context.Background(), cfg)

	output, err := testutil.ExecuteCommandContext(t, ctx, ImportCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "7", strings.TrimSpace(output))

	output, err = testutil.ExecuteCommandContext(t, ctx, ImportCmd(), nil)
	require.NoError(t, err)
	plain := ansi.Strip(output)
	assert.Contains(t, plain, "Datasets imported")
	assert.Contains(t, plain, "Red Wine")
	assert.Contains(t, plain, cfg.Data.White)
}

func TestImportMissingFile(t *testing.T) {
	cfg := testutil.WineConfig(t)
	cfg.Data.Red = cfg.Data.Red + ".missing"

	_, err := testutil.ExecuteCommandContext(t, cli.WithConfig(context.Background(), cfg), ImportCmd(), []string{"--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
