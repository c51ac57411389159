// Package selection implements the select command, which applies the wine
// type selection and reports the size of the filtered dataset.
package selection

import (
	"fmt"
	"io"
	"log"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/cli/styles"
	"github.com/thenoetrevino/winedash/internal/models"
)

// SelectCmd returns the select command
func SelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Filter the dataset by wine type and print the row count",
		Long: `Apply the dashboard's wine type selection and print how many samples
remain. Accepts red, white or both (or the full labels).

Examples:
  winedash select --wine red
  winedash select --wine both --json
  winedash select --wine white --quiet
`,
		RunE: runSelect,
	}

	cmd.Flags().String("wine", string(models.DefaultSelection), "Wine type: red, white or both")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (row count only)")

	return cmd
}

func runSelect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	wine, _ := cmd.Flags().GetString("wine")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	sel, err := models.ParseSelection(wine)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	frame, err := cliInstance.Service.Select(ctx, sel)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	return formatter.Success(result{
		Selection: sel,
		Rows:      frame.Len(),
		Red:       frame.CountOf(models.RedWine),
		White:     frame.CountOf(models.WhiteWine),
	})
}

type result struct {
	Selection models.Selection `json:"selection"`
	Rows      int              `json:"rows"`
	Red       int              `json:"red_rows"`
	White     int              `json:"white_rows"`
}

// QuietString implements cli.Quieter
func (r result) QuietString() string {
	return fmt.Sprintf("%d", r.Rows)
}

// PrintHuman implements cli.HumanPrinter
func (r result) PrintHuman(w io.Writer) error {
	_, err := lipgloss.Fprintln(w, fmt.Sprintf("%s %s: %s rows (%s %d · %s %d)",
		styles.SuccessStyle.Render("✓"),
		styles.TitleStyle.Render(string(r.Selection)),
		styles.ValueStyle.Render(fmt.Sprintf("%d", r.Rows)),
		styles.WineText(models.RedWine, string(models.RedWine)), r.Red,
		styles.WineText(models.WhiteWine, string(models.WhiteWine)), r.White,
	))
	return err
}
