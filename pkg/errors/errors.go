package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule selection errors
	ErrPathResolve    ErrorCode = "PATH_RESOLVE"
	ErrContextInvalid ErrorCode = "CONTEXT_INVALID"
)

// BindleError represents a structured error with code and details
type BindleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BindleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BindleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BindleError) Is(target error) bool {
	var targetErr *BindleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BindleError with the given code and message
func New(code ErrorCode, message string) *BindleError {
	return &BindleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BindleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BindleError {
	return &BindleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BindleError
func Wrap(err error, code ErrorCode, message string) *BindleError {
	if err == nil {
		return nil
	}
	return &BindleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BindleError {
	if err == nil {
		return nil
	}
	return &BindleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BindleError) WithDetail(key string, value interface{}) *BindleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bindleErr *BindleError
	if errors.As(err, &bindleErr) {
		return bindleErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BindleError
func GetErrorCode(err error) ErrorCode {
	var bindleErr *BindleError
	if errors.As(err, &bindleErr) {
		return bindleErr.Code
	}
	return ErrUnknown
}
