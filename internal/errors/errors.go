// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidParameter indicates an invalid business parameter (e.g. yield <= 0)
	TypeInvalidParameter Type = "INVALID_PARAMETER"

	// TypeHeaderNotFound indicates a price list with no recognizable header row
	TypeHeaderNotFound Type = "HEADER_NOT_FOUND"

	// TypeMalformedFile indicates a structurally unreadable restore file
	TypeMalformedFile Type = "MALFORMED_FILE"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a record not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidParameter creates an invalid parameter error
func InvalidParameter(message string) *Error {
	return New(TypeInvalidParameter, message)
}

// HeaderNotFound creates a header-not-found error
func HeaderNotFound(message string) *Error {
	return New(TypeHeaderNotFound, message)
}

// MalformedFile creates a malformed file error
func MalformedFile(message string, cause error) *Error {
	return Wrap(TypeMalformedFile, message, cause)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
