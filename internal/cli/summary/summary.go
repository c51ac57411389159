// Package summary implements the summary command, which prints the mean and
// correlation tables.
package summary

import (
	"fmt"
	"io"
	"log"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/cli/styles"
	"github.com/thenoetrevino/winedash/internal/models"
)

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the mean and correlation tables",
		Long: `Print the mean of every feature and its correlation with quality,
for red and white wine.

Examples:
  # Tables (human-readable output)
  winedash summary

  # JSON output for scripts
  winedash summary --json

  # Tab-separated rows: wine type, feature, mean, correlation
  winedash summary --quiet
`,
		RunE: runSummary,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (tab-separated rows)")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	return formatter.Success(result{cliInstance.Service.Summary()})
}

// result wraps the summary with its quiet and human forms
type result struct {
	*models.Summary
}

// QuietString implements cli.Quieter
func (r result) QuietString() string {
	var lines []string
	for _, w := range models.WineTypes {
		means := r.MeansFor(w)
		corrs := r.CorrelationsFor(w)
		for i, m := range means {
			corr := "NaN"
			if i < len(corrs) && corrs[i].Correlation.Valid() {
				corr = fmt.Sprintf("%g", float64(corrs[i].Correlation))
			}
			lines = append(lines, fmt.Sprintf("%s\t%s\t%g\t%s", w, m.Feature, float64(m.Value), corr))
		}
	}
	return strings.Join(lines, "\n")
}

// PrintHuman implements cli.HumanPrinter
func (r result) PrintHuman(w io.Writer) error {
	width := len("Feature")
	for _, f := range r.Features {
		width = max(width, len(f))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Wine Quality Analysis") + "\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s: %d samples · %s: %d samples",
		models.RedWine, r.RedCount, models.WhiteWine, r.WhiteCount)) + "\n")

	writeTable(&b, "Mean Values", width, r.Features, func(wine models.WineType) []models.Stat {
		rows := r.MeansFor(wine)
		values := make([]models.Stat, len(rows))
		for i, row := range rows {
			values[i] = row.Value
		}
		return values
	})
	writeTable(&b, "Correlation with Quality", width, r.Features, func(wine models.WineType) []models.Stat {
		rows := r.CorrelationsFor(wine)
		values := make([]models.Stat, len(rows))
		for i, row := range rows {
			values[i] = row.Correlation
		}
		return values
	})

	_, err := lipgloss.Fprint(w, b.String())
	return err
}

const cellWidth = 12

func writeTable(b *strings.Builder, title string, width int, features []string, column func(models.WineType) []models.Stat) {
	b.WriteString(styles.SectionStyle.Render(title) + "\n")
	b.WriteString("  " + fmt.Sprintf("%-*s", width, "Feature"))
	columns := make([][]models.Stat, len(models.WineTypes))
	for i, wine := range models.WineTypes {
		b.WriteString("  " + styles.WineText(wine, fmt.Sprintf("%*s", cellWidth, wine)))
		columns[i] = column(wine)
	}
	b.WriteString("\n")

	for i, f := range features {
		b.WriteString("  " + styles.LabelStyle.Render(fmt.Sprintf("%-*s", width, f)))
		for _, values := range columns {
			cell := styles.SubtitleStyle.Render("n/a")
			if i < len(values) {
				cell = styles.FormatStat(values[i])
			}
			b.WriteString("  " + strings.Repeat(" ", max(cellWidth-lipgloss.Width(cell), 0)) + cell)
		}
		b.WriteString("\n")
	}
}
