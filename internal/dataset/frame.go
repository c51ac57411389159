// Package dataset loads the wine measurement files into column-major frames
// and implements the wine type selection over them.
package dataset

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/winedash/internal/models"
)

// Frame is an immutable table of numeric columns. Each row carries the
// wine type of the file it was loaded from.
type Frame struct {
	columns []string
	index   map[string]int
	values  [][]float64 // values[col][row]
	labels  []models.WineType
}

// NewFrame builds a frame from column-major values. The slices are owned by
// the frame afterwards.
func NewFrame(columns []string, values [][]float64, labels []models.WineType) (*Frame, error) {
	if len(columns) != len(values) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrRaggedFrame, len(columns), len(values))
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		index[name] = i
	}

	for i, col := range values {
		if len(col) != len(labels) {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				ErrRaggedFrame, columns[i], len(col), len(labels))
		}
	}

	return &Frame{
		columns: columns,
		index:   index,
		values:  values,
		labels:  labels,
	}, nil
}

// Len returns the number of rows
func (f *Frame) Len() int {
	return len(f.labels)
}

// Columns returns the column names in header order
func (f *Frame) Columns() []string {
	return slices.Clone(f.columns)
}

// Has reports whether the frame has a column with the given name
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the values of a column. The returned slice must not be modified.
func (f *Frame) Column(name string) ([]float64, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return f.values[i], nil
}

// Labels returns the wine type of every row. The returned slice must not be modified.
func (f *Frame) Labels() []models.WineType {
	return f.labels
}

// Features returns every column except quality, in header order
func (f *Frame) Features() []string {
	features := make([]string, 0, len(f.columns))
	for _, name := range f.columns {
		if name != models.ColumnQuality {
			features = append(features, name)
		}
	}
	return features
}

// Require checks that all named columns are present
func (f *Frame) Require(names ...string) error {
	for _, name := range names {
		if !f.Has(name) {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return nil
}

// CountOf returns how many rows carry the given wine type
func (f *Frame) CountOf(w models.WineType) int {
	n := 0
	for _, l := range f.labels {
		if l == w {
			n++
		}
	}
	return n
}

// ScatterPoints projects every row onto alcohol, volatile acidity and quality
func (f *Frame) ScatterPoints() ([]models.ScatterPoint, error) {
	alcohol, err := f.Column(models.ColumnAlcohol)
	if err != nil {
		return nil, err
	}
	acidity, err := f.Column(models.ColumnVolatileAcidity)
	if err != nil {
		return nil, err
	}
	quality, err := f.Column(models.ColumnQuality)
	if err != nil {
		return nil, err
	}

	points := make([]models.ScatterPoint, f.Len())
	for i := range points {
		points[i] = models.ScatterPoint{
			Alcohol:         alcohol[i],
			VolatileAcidity: acidity[i],
			Quality:         quality[i],
			WineType:        f.labels[i],
		}
	}
	return points, nil
}

// Row returns the values of one row in column order
func (f *Frame) Row(i int) []float64 {
	row := make([]float64, len(f.columns))
	for c := range f.columns {
		row[c] = f.values[c][i]
	}
	return row
}

// Concat stacks b under a. Both frames must have the same columns in the
// same order.
func Concat(a, b *Frame) (*Frame, error) {
	if !slices.Equal(a.columns, b.columns) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrColumnMismatch, a.columns, b.columns)
	}

	values := make([][]float64, len(a.columns))
	for c := range a.columns {
		col := make([]float64, 0, a.Len()+b.Len())
		col = append(col, a.values[c]...)
		col = append(col, b.values[c]...)
		values[c] = col
	}

	labels := make([]models.WineType, 0, a.Len()+b.Len())
	labels = append(labels, a.labels...)
	labels = append(labels, b.labels...)

	return NewFrame(slices.Clone(a.columns), values, labels)
}
