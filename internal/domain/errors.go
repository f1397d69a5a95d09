// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Compilation-related errors
	ErrEmptySource    = errors.New("source is empty")
	ErrSourceTooLarge = errors.New("source exceeds size limit")

	// History-related errors
	ErrHistoryDisabled = errors.New("compilation history is disabled")
)
