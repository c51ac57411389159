// Package cmd wires the winedash subcommands into one cobra command tree.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/cli/exporter"
	"github.com/thenoetrevino/winedash/internal/cli/importer"
	"github.com/thenoetrevino/winedash/internal/cli/selection"
	"github.com/thenoetrevino/winedash/internal/cli/serve"
	"github.com/thenoetrevino/winedash/internal/cli/styles"
	"github.com/thenoetrevino/winedash/internal/cli/summary"
	"github.com/thenoetrevino/winedash/internal/cli/terminal"
	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/logging"
)

// NewRootCmd builds the winedash command tree
func NewRootCmd() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "winedash",
		Short: "Winedash - wine quality dashboards for the web and the terminal",
		Long: `Winedash loads the red and white wine quality datasets, computes the mean
of every physiochemical property and its correlation with quality, and shows
the results as a web dashboard (serve) or a terminal dashboard (tui).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			closer, err := logging.Init(logging.Options{Debug: debug})
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			logCloser = closer

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			styles.Init(cfg.ColorScheme)
			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			slog.Debug("command starting", "command", cmd.CommandPath(), "source", cfg.Data.Source)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/winedash/config.yaml)")
	flags.String("red", "", "Red wine CSV file (default winequality-red.csv)")
	flags.String("white", "", "White wine CSV file (default winequality-white.csv)")
	flags.String("source", "", "Data source: csv or sqlite (default csv)")
	flags.String("database", "", "SQLite database file (default ~/.winedash/wine.db)")
	flags.Bool("debug", false, "Write debug-level logs")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(terminal.TUICmd())
	rootCmd.AddCommand(summary.SummaryCmd())
	rootCmd.AddCommand(selection.SelectCmd())
	rootCmd.AddCommand(importer.ImportCmd())
	rootCmd.AddCommand(exporter.ExportCmd())

	return rootCmd
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"red", &cfg.Data.Red},
		{"white", &cfg.Data.White},
		{"source", &cfg.Data.Source},
		{"database", &cfg.Data.Database},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.target, _ = cmd.Flags().GetString(o.flag)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Execute() error {
	return NewRootCmd().Execute()
}
