package handler

import (
	"github.com/statboard/statboard/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeInvalidUUID         = apierr.CodeInvalidUUID
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeSourceNotFound      = apierr.CodeSourceNotFound
	CodeUpstreamUnavailable = apierr.CodeUpstreamUnavailable
	CodeInternalError       = apierr.CodeInternalError
)

// Re-export error helpers
var (
	WriteError             = apierr.WriteError
	NewInvalidRequestError = apierr.NewInvalidRequestError
	NewInternalError       = apierr.NewInternalError
)
