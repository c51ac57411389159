package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/models"
)

// Repository stores imported datasets in SQLite
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository over an initialized database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var _ DataStore = (*Repository)(nil)

// SaveFrame stores the rows of frame that carry wineType, replacing any
// previous import of that wine type.
func (r *Repository) SaveFrame(ctx context.Context, wineType models.WineType, sourcePath string, frame *dataset.Frame) error {
	columns := frame.Columns()
	labels := frame.Labels()

	rows := make([]int, 0, len(labels))
	for i, l := range labels {
		if l == wineType {
			rows = append(rows, i)
		}
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE wine_type = ?`, string(wineType)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", wineType, err)
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO datasets (wine_type, source_path, row_count) VALUES (?, ?, ?)`,
			string(wineType), sourcePath, len(rows))
		if err != nil {
			return fmt.Errorf("failed to insert dataset: %w", err)
		}
		datasetID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get dataset id: %w", err)
		}

		for pos, name := range columns {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO dataset_columns (dataset_id, position, name) VALUES (?, ?, ?)`,
				datasetID, pos, name); err != nil {
				return fmt.Errorf("failed to insert column %q: %w", name, err)
			}
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO measurements (dataset_id, row_index, position, value) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare measurement insert: %w", err)
		}
		defer func() {
			if err := stmt.Close(); err != nil {
				slog.Error("error closing statement", "error", err)
			}
		}()

		for rowIndex, src := range rows {
			for pos, v := range frame.Row(src) {
				var value sql.NullFloat64
				if !math.IsNaN(v) {
					value = sql.NullFloat64{Float64: v, Valid: true}
				}
				if _, err := stmt.ExecContext(ctx, datasetID, rowIndex, pos, value); err != nil {
					return fmt.Errorf("failed to insert measurement: %w", err)
				}
			}
		}

		slog.Debug("saved dataset", "wine_type", wineType, "rows", len(rows), "columns", len(columns))
		return nil
	})
}

// LoadFrame rebuilds the frame imported for wineType
func (r *Repository) LoadFrame(ctx context.Context, wineType models.WineType) (*dataset.Frame, error) {
	var datasetID int64
	var rowCount int
	err := r.db.QueryRowContext(ctx,
		`SELECT id, row_count FROM datasets WHERE wine_type = ?`, string(wineType),
	).Scan(&datasetID, &rowCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, wineType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}

	columns, err := r.columns(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	values := make([][]float64, len(columns))
	for c := range values {
		values[c] = make([]float64, rowCount)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT row_index, position, value FROM measurements WHERE dataset_id = ?`, datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	for rows.Next() {
		var rowIndex, pos int
		var value sql.NullFloat64
		if err := rows.Scan(&rowIndex, &pos, &value); err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}
		if pos < 0 || pos >= len(columns) || rowIndex < 0 || rowIndex >= rowCount {
			return nil, fmt.Errorf("measurement out of range: row %d position %d", rowIndex, pos)
		}
		if value.Valid {
			values[pos][rowIndex] = value.Float64
		} else {
			values[pos][rowIndex] = math.NaN()
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating measurements: %w", err)
	}

	labels := make([]models.WineType, rowCount)
	for i := range labels {
		labels[i] = wineType
	}

	return dataset.NewFrame(columns, values, labels)
}

func (r *Repository) columns(ctx context.Context, datasetID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM dataset_columns WHERE dataset_id = ? ORDER BY position`, datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

// LoadPair loads both imported datasets
func (r *Repository) LoadPair(ctx context.Context) (*dataset.Pair, error) {
	red, err := r.LoadFrame(ctx, models.RedWine)
	if err != nil {
		return nil, err
	}
	white, err := r.LoadFrame(ctx, models.WhiteWine)
	if err != nil {
		return nil, err
	}
	return dataset.NewPair(red, white)
}

// ListDatasets returns every imported dataset ordered by wine type
func (r *Repository) ListDatasets(ctx context.Context) ([]DatasetInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.wine_type, d.source_path, d.row_count, d.imported_at,
			(SELECT COUNT(*) FROM dataset_columns c WHERE c.dataset_id = d.id)
		FROM datasets d
		ORDER BY d.wine_type
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	var infos []DatasetInfo
	for rows.Next() {
		var info DatasetInfo
		var wineType string
		if err := rows.Scan(&wineType, &info.SourcePath, &info.RowCount, &info.ImportedAt, &info.Columns); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		info.WineType = models.WineType(wineType)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
