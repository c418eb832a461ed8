package model

import "errors"

// Common errors used across the application
var (
	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Identifier errors
	ErrInvalidUUID = errors.New("not a valid player uuid")

	// Stats source errors
	ErrSourceNotFound = errors.New("stats source not found")
)
