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

	// Pattern errors
	ErrPatternParse  ErrorCode = "PATTERN_PARSE"
	ErrPatternStatic ErrorCode = "PATTERN_STATIC"

	// Selection errors
	ErrSelection   ErrorCode = "SELECTION"
	ErrGlobInvalid ErrorCode = "GLOB_INVALID"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"

	// Sequencing errors
	ErrOrderUnsupported ErrorCode = "ORDER_UNSUPPORTED"
	ErrRunAborted       ErrorCode = "RUN_ABORTED"

	// Execution errors
	ErrRename ErrorCode = "RENAME"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Locking errors
	ErrLockAcquire ErrorCode = "LOCK_ACQUIRE"
	ErrLockHeld    ErrorCode = "LOCK_HELD"
)

// RenumError represents a structured error with code and details
type RenumError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenumError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenumError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RenumError) Is(target error) bool {
	var targetErr *RenumError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenumError with the given code and message
func New(code ErrorCode, message string) *RenumError {
	return &RenumError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenumError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenumError {
	return &RenumError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenumError
func Wrap(err error, code ErrorCode, message string) *RenumError {
	if err == nil {
		return nil
	}
	return &RenumError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenumError {
	if err == nil {
		return nil
	}
	return &RenumError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RenumError) WithDetail(key string, value interface{}) *RenumError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RenumError) WithDetails(details map[string]interface{}) *RenumError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var renumErr *RenumError
	if errors.As(err, &renumErr) {
		return renumErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenumError
func GetErrorCode(err error) ErrorCode {
	var renumErr *RenumError
	if errors.As(err, &renumErr) {
		return renumErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RenumError
func GetErrorDetails(err error) map[string]interface{} {
	var renumErr *RenumError
	if errors.As(err, &renumErr) {
		return renumErr.Details
	}
	return nil
}
