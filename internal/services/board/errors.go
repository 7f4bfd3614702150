package board

import "errors"

// Board service errors
var (
	// Validation errors
	ErrEmptyPath         = errors.New("document path cannot be empty")
	ErrInvalidBlockIndex = errors.New("invalid block index")
)
