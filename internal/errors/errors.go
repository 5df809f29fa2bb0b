package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPortfolioNotFound is returned when a portfolio id has no record.
	ErrPortfolioNotFound = errors.New("Portfolio not found")
	// ErrStorage wraps any failure of the underlying document store.
	ErrStorage = errors.New("storage unavailable")
	// ErrNoFileUploaded is returned when the multipart request carries no file.
	ErrNoFileUploaded = errors.New("No file uploaded")
	// ErrNoFilesUploaded is returned when a batch upload carries no acceptable file.
	ErrNoFilesUploaded = errors.New("No files uploaded")
	// ErrUnsupportedMedia is returned when an upload is not an allowlisted image type.
	ErrUnsupportedMedia = errors.New("Only image files are allowed")
	// ErrFileTooLarge is returned when an upload exceeds the size ceiling.
	ErrFileTooLarge = errors.New("File too large")
	// ErrFileNotFound is returned when a stored upload name does not resolve.
	ErrFileNotFound = errors.New("File not found")
	// ErrCredentialsRequired is returned when the demo login misses email or token.
	ErrCredentialsRequired = errors.New("Email and token required")
	// ErrTokenRequired is returned when the verify call carries no token.
	ErrTokenRequired = errors.New("Token required")
	// ErrInvalidToken is returned when the verify call carries the wrong token.
	ErrInvalidToken = errors.New("Invalid token")
)

// FieldError describes a single failed field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed constraint of a request.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	return "Validation failed"
}

// AsValidationError unwraps err into a *ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Storage and unknown
// failures collapse to 500; the router redacts the message in production.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrPortfolioNotFound), errors.Is(err, ErrFileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoFileUploaded),
		errors.Is(err, ErrNoFilesUploaded),
		errors.Is(err, ErrUnsupportedMedia),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrCredentialsRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTokenRequired), errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
