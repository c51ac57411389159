package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/testutil"
)

// isolate points the home and config directories at a temp dir so logs and
// config lookups stay inside the test
func isolate(t *testing.T) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("WINEDASH_THEME_FILE", "")
}

func TestRootSelectWithFlags(t *testing.T) {
	isolate(t)
	redPath, whitePath := testutil.WriteWineFiles(t)

	output, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{
		"--red", redPath, "--white", whitePath,
		"select", "--wine", "red", "--quiet",
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(testutil.RedRows), strings.TrimSpace(output))
}

func TestRootConfigFile(t *testing.T) {
	isolate(t)
	redPath, whitePath := testutil.WriteWineFiles(t)
	configPath := testutil.WriteFile(t, "config.yaml", fmt.Sprintf(`data:
  red: %s
  white: %s
`, redPath, whitePath))

	output, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{
		"--config", configPath, "summary", "--quiet",
	})
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(output), "\n"), 2*len(testutil.FixtureFeatures))
}

func TestRootImportThenSQLite(t *testing.T) {
	isolate(t)
	redPath, whitePath := testutil.WriteWineFiles(t)
	dbPath := filepath.Join(t.TempDir(), "wine.db")

	_, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{
		"--red", redPath, "--white", whitePath, "--database", dbPath, "import", "--quiet",
	})
	require.NoError(t, err)

	output, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{
		"--source", "sqlite", "--database", dbPath, "select", "--wine", "both", "--quiet",
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(testutil.RedRows+testutil.WhiteRows), strings.TrimSpace(output))
}

func TestRootInvalidSource(t *testing.T) {
	isolate(t)

	_, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{"--source", "parquet", "summary"})
	require.ErrorIs(t, err, config.ErrInvalidSource)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRootUnknownFlag(t *testing.T) {
	isolate(t)

	_, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{"summary", "--nope"})
	require.ErrorIs(t, err, cli.ErrUsage)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRootMissingData(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "missing.csv")

	_, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{
		"--red", missing, "--white", missing, "select", "--json",
	})
	require.Error(t, err)
	assert.True(t, cli.Reported(err))
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestRootWritesLogFile(t *testing.T) {
	isolate(t)
	redPath, whitePath := testutil.WriteWineFiles(t)

	_, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{
		"--debug", "--red", redPath, "--white", whitePath, "select", "--quiet",
	})
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	data, err := os.ReadFile(filepath.Join(home, ".winedash", "logs", "winedash.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "summary computed")
}
