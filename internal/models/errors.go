package models

import "errors"

// Custom errors
var (
	ErrNotFound        = errors.New("bet not found")
	ErrAlreadyResolved = errors.New("bet already resolved")
	ErrInvalidOdds     = errors.New("odds must be a nonzero American line")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidInput    = errors.New("sport and team must be non-empty")
)
