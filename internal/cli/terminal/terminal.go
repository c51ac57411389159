// Package terminal implements the tui command, which runs the terminal
// dashboard.
package terminal

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/tui"
)

// TUICmd returns the tui command
func TUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		Long: `Open the wine quality dashboard in the terminal.

Keys: r/w/b select red, white or both (s cycles), tab and 1-4 switch charts,
? shows help, q quits.`,
		RunE: runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
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

	return tui.Run(ctx, cliInstance.Service, cliInstance.Config)
}
