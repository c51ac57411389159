package database

import (
	"context"
	"errors"
	"time"

	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/models"
)

// ErrDatasetNotFound indicates no dataset has been imported for a wine type
var ErrDatasetNotFound = errors.New("dataset not imported")

// DatasetInfo describes an imported dataset
type DatasetInfo struct {
	WineType   models.WineType `json:"wine_type"`
	SourcePath string          `json:"source_path"`
	RowCount   int             `json:"row_count"`
	Columns    int             `json:"columns"`
	ImportedAt time.Time       `json:"imported_at"`
}

// DataStore defines the dataset persistence operations
type DataStore interface {
	SaveFrame(ctx context.Context, wineType models.WineType, sourcePath string, frame *dataset.Frame) error
	LoadFrame(ctx context.Context, wineType models.WineType) (*dataset.Frame, error)
	LoadPair(ctx context.Context) (*dataset.Pair, error)
	ListDatasets(ctx context.Context) ([]DatasetInfo, error)
}
