package models

import "errors"

// Domain-specific errors for parsing user-facing values
var (
	// ErrInvalidSelection indicates a selection outside Red Wine, White Wine and Both
	ErrInvalidSelection = errors.New("invalid wine selection (must be: red, white, both)")

	// ErrInvalidWineType indicates a wine type label that is neither red nor white
	ErrInvalidWineType = errors.New("invalid wine type (must be: red, white)")
)
