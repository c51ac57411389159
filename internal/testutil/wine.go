package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/winedash/internal/config"
)

// RedCSV is a four-row red wine sample in the source file layout
const RedCSV = `"fixed acidity";"volatile acidity";"citric acid";"alcohol";"quality"
7.4;0.70;0;9.4;5
7.8;0.88;0;9.8;5
11.2;0.28;0.56;9.8;6
7.4;0.66;0;10.0;6
`

// WhiteCSV is a three-row white wine sample with the same header as RedCSV
const WhiteCSV = `"fixed acidity";"volatile acidity";"citric acid";"alcohol";"quality"
7.0;0.27;0.36;8.8;5
6.3;0.30;0.34;9.5;6
8.1;0.28;0.40;10.1;7
`

// Row counts of the fixtures
const (
	RedRows   = 4
	WhiteRows = 3
)

// FixtureFeatures lists the non-quality columns of the fixtures in header order
var FixtureFeatures = []string{"fixed acidity", "volatile acidity", "citric acid", "alcohol"}

// WriteFile writes content under the test's temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteWineFiles writes both fixtures and returns their paths
func WriteWineFiles(t *testing.T) (redPath, whitePath string) {
	t.Helper()

	dir := t.TempDir()
	redPath = filepath.Join(dir, "winequality-red.csv")
	whitePath = filepath.Join(dir, "winequality-white.csv")

	if err := os.WriteFile(redPath, []byte(RedCSV), 0o644); err != nil {
		t.Fatalf("Failed to write red fixture: %v", err)
	}
	if err := os.WriteFile(whitePath, []byte(WhiteCSV), 0o644); err != nil {
		t.Fatalf("Failed to write white fixture: %v", err)
	}
	return redPath, whitePath
}

// WineConfig returns the default config pointed at freshly written fixtures
// and a database file in a temp dir
func WineConfig(t *testing.T) *config.Config {
	t.Helper()

	redPath, whitePath := WriteWineFiles(t)
	cfg := config.Default()
	cfg.Data.Red = redPath
	cfg.Data.White = whitePath
	cfg.Data.Database = filepath.Join(t.TempDir(), "wine.db")
	return cfg
}
