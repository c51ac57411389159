package dataset

import "errors"

// Dataset loading errors
var (
	ErrEmptyFile       = errors.New("file has no header row")
	ErrDuplicateColumn = errors.New("duplicate column in header")
	ErrMissingColumn   = errors.New("required column missing")
	ErrInvalidValue    = errors.New("value is not numeric")
	ErrColumnMismatch  = errors.New("frames have different columns")
	ErrRaggedFrame     = errors.New("column lengths differ")
	ErrUnknownColumn   = errors.New("unknown column")
)
