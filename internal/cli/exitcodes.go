package cli

import (
	"errors"
	"os"

	"github.com/thenoetrevino/winedash/internal/analysis"
	"github.com/thenoetrevino/winedash/internal/config"
	"github.com/thenoetrevino/winedash/internal/database"
	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/services/dashboard"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Unknown data source, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Missing CSV files, datasets not yet imported into the store.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Non-numeric cells, missing required columns, mismatched headers.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid wine type selection.
	ExitValidation = 5
)

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// ExitCode maps an error to the exit code the process should end with
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, config.ErrInvalidSource):
		return ExitUsage
	case errors.Is(err, os.ErrNotExist), errors.Is(err, database.ErrDatasetNotFound):
		return ExitNotFound
	case errors.Is(err, dataset.ErrEmptyFile),
		errors.Is(err, analysis.ErrEmptyFrame),
		errors.Is(err, dataset.ErrInvalidValue),
		errors.Is(err, dataset.ErrMissingColumn),
		errors.Is(err, dataset.ErrDuplicateColumn),
		errors.Is(err, dataset.ErrColumnMismatch),
		errors.Is(err, dataset.ErrRaggedFrame):
		return ExitDataErr
	case errors.Is(err, dashboard.ErrInvalidSelection), errors.Is(err, models.ErrInvalidSelection):
		return ExitValidation
	}
	return ExitError
}

// ErrorCode returns the machine-readable code reported in JSON errors
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	}
	return "INTERNAL_ERROR"
}

// suggestion returns a hint for errors users can fix themselves
func suggestion(err error) string {
	switch {
	case errors.Is(err, database.ErrDatasetNotFound):
		return "run 'winedash import' first or use --source csv"
	case errors.Is(err, os.ErrNotExist):
		return "pass the file locations with --red and --white"
	case errors.Is(err, dashboard.ErrInvalidSelection), errors.Is(err, models.ErrInvalidSelection):
		return "use one of: red, white, both"
	}
	return ""
}

// reportedError marks an error that has already been written for the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// ReportError writes err through the formatter and returns it marked as
// reported
func ReportError(f *OutputFormatter, err error) error {
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion(err))
	return &reportedError{err: err}
}

// Reported reports whether err was already written by ReportError
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
