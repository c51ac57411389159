// Package exporter implements the export command, which renders static PNG
// charts.
package exporter

import (
	"io"
	"log"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/cli/styles"
	"github.com/thenoetrevino/winedash/internal/export"
	"github.com/thenoetrevino/winedash/internal/models"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the correlation and scatter charts to PNG",
		Long: `Write correlation.png and a quality vs. alcohol scatter for the selected
wine type into the output directory.

Examples:
  winedash export --out charts
  winedash export --out charts --wine red --quiet
`,
		RunE: runExport,
	}

	cmd.Flags().String("out", ".", "Output directory")
	cmd.Flags().String("wine", string(models.DefaultSelection), "Wine type for the scatter: red, white or both")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (file paths only)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	out, _ := cmd.Flags().GetString("out")
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

	paths, err := export.WriteAll(ctx, cliInstance.Service, sel, out)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	return formatter.Success(result{Selection: sel, Files: paths})
}

type result struct {
	Selection models.Selection `json:"selection"`
	Files     []string         `json:"files"`
}

// QuietString implements cli.Quieter
func (r result) QuietString() string {
	return strings.Join(r.Files, "\n")
}

// PrintHuman implements cli.HumanPrinter
func (r result) PrintHuman(w io.Writer) error {
	var b strings.Builder
	b.WriteString(styles.SuccessStyle.Render("✓ Charts exported") + "\n")
	for _, f := range r.Files {
		b.WriteString("  " + styles.ValueStyle.Render(f) + "\n")
	}
	_, err := lipgloss.Fprint(w, b.String())
	return err
}
