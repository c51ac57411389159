// Package importer implements the import command, which copies the CSV
// datasets into the sqlite store.
package importer

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/winedash/internal/cli"
	"github.com/thenoetrevino/winedash/internal/cli/styles"
	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/database"
	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/models"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the CSV datasets into the sqlite store",
		Long: `Load the red and white CSV files and store them in the sqlite database,
replacing any previous import. Afterwards the dashboards can run with
--source sqlite.

Examples:
  winedash import
  winedash import --red data/red.csv --white data/white.csv --database wine.db
`,
		RunE: runImport,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (total rows only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cfg := cli.ConfigFromContext(ctx)
	datasets, err := Import(ctx, cfg)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	return formatter.Success(result{Database: cfg.Data.Database, Datasets: datasets})
}

// Import loads the configured CSV files and writes them to the configured
// database. It returns the stored datasets.
func Import(ctx context.Context, cfg *config.Config) ([]database.DatasetInfo, error) {
	pair, err := dataset.LoadPair(ctx, cfg.Data.Red, cfg.Data.White)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(ctx, cfg.Data.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}(db)

	repo := database.NewRepository(db)
	sources := []struct {
		wine  models.WineType
		path  string
		frame *dataset.Frame
	}{
		{models.RedWine, cfg.Data.Red, pair.Red},
		{models.WhiteWine, cfg.Data.White, pair.White},
	}
	for _, src := range sources {
		if err := repo.SaveFrame(ctx, src.wine, src.path, src.frame); err != nil {
			return nil, fmt.Errorf("failed to import %s: %w", src.wine, err)
		}
		slog.Info("dataset imported", "wine_type", src.wine, "rows", src.frame.Len())
	}

	return repo.ListDatasets(ctx)
}

type result struct {
	Database string                 `json:"database,omitempty"`
	Datasets []database.DatasetInfo `json:"datasets"`
}

// QuietString implements cli.Quieter
func (r result) QuietString() string {
	total := 0
	for _, d := range r.Datasets {
		total += d.RowCount
	}
	return fmt.Sprintf("%d", total)
}

// PrintHuman implements cli.HumanPrinter
func (r result) PrintHuman(w io.Writer) error {
	var b strings.Builder
	b.WriteString(styles.SuccessStyle.Render("✓ Datasets imported") + "\n")
	for _, d := range r.Datasets {
		b.WriteString(fmt.Sprintf("  %s  %s rows, %d columns  %s\n",
			styles.WineText(d.WineType, fmt.Sprintf("%-10s", d.WineType)),
			styles.ValueStyle.Render(fmt.Sprintf("%d", d.RowCount)),
			d.Columns,
			styles.SubtitleStyle.Render(d.SourcePath)))
	}
	_, err := lipgloss.Fprint(w, b.String())
	return err
}
