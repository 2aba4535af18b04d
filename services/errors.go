package services

import "errors"

// Caller-visible failure classes. Handlers translate these into HTTP
// statuses; anything else is a storage failure and maps to 500.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrRecordLocked = errors.New("record locked")
)
