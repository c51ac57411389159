package serve

import (
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/testutil"
)

func TestServeStopsWhenContextEnds(t *testing.T) {
	cfg := testutil.WineConfig(t)
	ctx := cli.WithConfig(context.Background(), cfg)
	c, err := cli.NewCLI(ctx, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(cli.WithCLI(ctx, c))
	cancel()

	output, err := testutil.ExecuteCommandContext(t, ctx, ServeCmd(), []string{"--addr", "127.0.0.1:0"})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(output), "Dashboard running on http://127.0.0.1:")
}

func TestServeInvalidAddress(t *testing.T) {
	cfg := testutil.WineConfig(t)
	ctx := cli.WithConfig(context.Background(), cfg)
	c, err := cli.NewCLI(ctx, cfg)
	require.NoError(t, err)
	ctx = cli.WithCLI(ctx, c)

	_, err = testutil.ExecuteCommandContext(t, ctx, ServeCmd(), []string{"--addr", "not an address"})
	require.Error(t, err)
}
