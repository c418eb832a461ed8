package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/statboard/statboard/internal/model"
	"github.com/statboard/statboard/internal/mojang"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidUUID         = "INVALID_UUID"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeSourceNotFound      = "SOURCE_NOT_FOUND"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidUUID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidUUID, "Not a valid player UUID"}}
	case errors.Is(err, model.ErrProfileNotFound), errors.Is(err, mojang.ErrNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrSourceNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSourceNotFound, "Stats source not found"}}
	case errors.Is(err, mojang.ErrUnavailable):
		return &httpError{http.StatusBadGateway, APIError{CodeUpstreamUnavailable, "Profile service unavailable"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
