package handler

// User-facing error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Request validation failed"
	ErrMsgPlayerNotFound        = "Player not found"
	ErrMsgRequestNotApplied     = "Request was not applied"
	ErrMsgInternal              = "Internal server error"
)
