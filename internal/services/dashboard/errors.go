package dashboard

import "errors"

// Dashboard-related errors
var (
	// ErrNoData indicates the service was built without datasets
	ErrNoData = errors.New("no datasets loaded")

	// ErrInvalidSelection indicates a selector value outside the three options
	ErrInvalidSelection = errors.New("invalid wine selection")
)
