package models

import "errors"

// Domain-specific errors for document and board operations
var (
	// ErrBlockNotFound indicates that the requested kanban block does not exist in the document
	ErrBlockNotFound = errors.New("kanban block not found")

	// ErrInvalidPayload indicates that a drag payload could not be decoded
	ErrInvalidPayload = errors.New("invalid drag payload")
)
