// Package response shapes the JSON envelope every API endpoint speaks:
// {success, data?, error?, details?}.
package response

import "nordstudio/internal/errors"

// Envelope is the uniform API response body.
type Envelope struct {
	Success bool                `json:"success"`
	Data    interface{}         `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
	Details []errors.FieldError `json:"details,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Msg confirms an operation that returns no data.
func Msg(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Err wraps an error message in a failure envelope.
func Err(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// ValidationFailed reports per-field constraint violations.
func ValidationFailed(problems []errors.FieldError) Envelope {
	return Envelope{Success: false, Error: "Validation failed", Details: problems}
}
