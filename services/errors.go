package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses: ErrNotFound
// and ErrInvalidTimeFormat map to 400 on create/update flows, ErrInvalidState
// to 403, ErrDuplicateReview to 400 with a friendly message. Anything else
// surfaces as 500 with the raw error text.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrDuplicateReview   = errors.New("a review for this appointment already exists")
)
