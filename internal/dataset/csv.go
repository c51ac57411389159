package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/thenoetrevino/winedash/internal/models"
)

// LoadCSV reads a semicolon-delimited measurement file and labels every row
// with the given wine type.
func LoadCSV(path string, wineType models.WineType) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Error("error closing dataset file", "path", path, "error", closeErr)
		}
	}()

	frame, err := ReadCSV(file, wineType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("dataset loaded", "path", path, "wine_type", wineType, "rows", frame.Len())
	return frame, nil
}

// ReadCSV parses a measurement file from r. The first record is the header;
// every other cell must parse as a float.
func ReadCSV(r io.Reader, wineType models.WineType) (*Frame, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.Comma = models.DefaultCSVDelimiter
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	values := make([][]float64, len(columns))
	var labels []models.WineType

	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				line, _ := reader.FieldPos(i)
				return nil, fmt.Errorf("%w: line %d column %q: %q",
					ErrInvalidValue, line, columns[i], cell)
			}
			values[i] = append(values[i], v)
		}
		labels = append(labels, wineType)
	}

	// A header-only file still needs non-nil columns
	for i := range values {
		if values[i] == nil {
			values[i] = []float64{}
		}
	}

	return NewFrame(columns, values, labels)
}
