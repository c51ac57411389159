// Package serve implements the serve command, which runs the web dashboard.
package serve

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/cli/styles"
	"github.com/thenoetrevino/winedash/internal/web"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web dashboard",
		Long: `Serve the wine quality dashboard over HTTP. The page shows the treemap,
correlation and 3D scatter charts; changing the wine type selection rebuilds
all three from /api/figures.

Stops on SIGINT or SIGTERM.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, "+web.DefaultAddr+")")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	addr := cliInstance.Config.Server.Addr
	if cmd.Flags().Changed("addr") {
		addr, _ = cmd.Flags().GetString("addr")
	}

	server, err := web.NewServer(cliInstance.Service, addr, slog.Default())
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	_, _ = lipgloss.Fprintln(cmd.OutOrStdout(), fmt.Sprintf("%s Dashboard running on %s",
		styles.SuccessStyle.Render("✓"),
		styles.ValueStyle.Render("http://"+server.Addr())))

	if err := server.Start(ctx); err != nil {
		return cli.ReportError(formatter, fmt.Errorf("server error: %w", err))
	}
	return nil
}
