package analysis

import "errors"

// ErrEmptyFrame indicates a summary was requested over a frame with no rows
var ErrEmptyFrame = errors.New("frame has no rows")
