package models

// ============================================================================
// COLUMN NAME CONSTANTS
// ============================================================================

// Column names the dashboard depends on. Headers in the source files are
// matched verbatim.
const (
	ColumnQuality         = "quality"
	ColumnAlcohol         = "alcohol"
	ColumnVolatileAcidity = "volatile acidity"
)

// RequiredColumns lists the columns every loaded dataset must carry
var RequiredColumns = []string{ColumnQuality, ColumnAlcohol, ColumnVolatileAcidity}

// ============================================================================
// DISPLAY CONSTANTS
// ============================================================================

// Chart colors per wine type
const (
	ColorRedWine   = "darkred"
	ColorWhiteWine = "gold"
)

// DefaultCSVDelimiter is the field separator used by the source datasets
const DefaultCSVDelimiter = ';'
