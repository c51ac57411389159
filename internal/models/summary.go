package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Stat is a summary value. NaN and infinities encode as JSON null, which
// happens when a feature has zero variance.
type Stat float64

// MarshalJSON implements json.Marshaler
func (s Stat) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Stat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Stat(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Stat(f)
	return nil
}

// Valid reports whether the value is a finite number
func (s Stat) Valid() bool {
	f := float64(s)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MeanRow is the mean of one feature for one wine type
type MeanRow struct {
	Feature  string   `json:"feature"`
	WineType WineType `json:"wine_type"`
	Value    Stat     `json:"value"`
}

// CorrelationRow is the Pearson correlation of one feature with quality
// for one wine type
type CorrelationRow struct {
	Feature     string   `json:"feature"`
	WineType    WineType `json:"wine_type"`
	Correlation Stat     `json:"correlation"`
}

// Summary holds the derived tables computed once at startup
type Summary struct {
	Features     []string         `json:"features"`
	Means        []MeanRow        `json:"means"`
	Correlations []CorrelationRow `json:"correlations"`
	RedCount     int              `json:"red_count"`
	WhiteCount   int              `json:"white_count"`
}

// Count returns the number of samples for a selection
func (s *Summary) Count(sel Selection) int {
	switch sel {
	case SelectRed:
		return s.RedCount
	case SelectWhite:
		return s.WhiteCount
	case SelectBoth:
		return s.RedCount + s.WhiteCount
	}
	return 0
}

// MeansFor returns the mean rows of one wine type in feature order
func (s *Summary) MeansFor(w WineType) []MeanRow {
	rows := make([]MeanRow, 0, len(s.Features))
	for _, r := range s.Means {
		if r.WineType == w {
			rows = append(rows, r)
		}
	}
	return rows
}

// CorrelationsFor returns the correlation rows of one wine type in feature order
func (s *Summary) CorrelationsFor(w WineType) []CorrelationRow {
	rows := make([]CorrelationRow, 0, len(s.Features))
	for _, r := range s.Correlations {
		if r.WineType == w {
			rows = append(rows, r)
		}
	}
	return rows
}

// ScatterPoint is one sample projected onto the 3D scatter axes
type ScatterPoint struct {
	Alcohol         float64  `json:"alcohol"`
	VolatileAcidity float64  `json:"volatile_acidity"`
	Quality         float64  `json:"quality"`
	WineType        WineType `json:"wine_type"`
}
