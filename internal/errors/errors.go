package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrBidNotFound is returned when a bid is not found or not visible to the requester.
	ErrBidNotFound = errors.New("bid not found")
	// ErrArtisanRoleRequired is returned when a non-artisan tries to place a bid.
	ErrArtisanRoleRequired = errors.New("Only artisans can place bids.")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The taxonomy is
// validation (400), authentication (401), permission (403), not found (404);
// anything unrecognized is a 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrJobNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_NOT_FOUND")
	case ErrBidNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "BID_NOT_FOUND")
	case ErrArtisanRoleRequired:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ARTISAN_ROLE_REQUIRED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
