package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgPlayerNotFound  = "player not found"
	ErrMsgHiveNotFound    = "hive not found"
	ErrMsgRecipeNotFound  = "recipe not found"
	ErrMsgSlotOutOfBounds = "slot index out of bounds"
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors. Wrap with fmt.Errorf("%w: ...", domain.ErrXxx) for
// additional context and test with errors.Is.
var (
	ErrPlayerNotFound  = errors.New(ErrMsgPlayerNotFound)
	ErrHiveNotFound    = errors.New(ErrMsgHiveNotFound)
	ErrSlotOutOfBounds = errors.New(ErrMsgSlotOutOfBounds)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
