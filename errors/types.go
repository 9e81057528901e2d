package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Layout errors
	ErrCodeUnresolvedType ErrorCode = "UNRESOLVED_TYPE"
	ErrCodeUnknownTheme   ErrorCode = "UNKNOWN_THEME"

	// State errors
	ErrCodeStateInvalid ErrorCode = "STATE_INVALID"
	ErrCodeFeedFailed   ErrorCode = "FEED_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// MasonryError represents a structured error with context
type MasonryError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *MasonryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MasonryError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *MasonryError) WithDetail(key string, value interface{}) *MasonryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *MasonryError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new MasonryError
func New(code ErrorCode, message string) *MasonryError {
	return &MasonryError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a MasonryError
func Wrap(err error, code ErrorCode, message string) *MasonryError {
	return &MasonryError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific MasonryError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, searching the wrap chain
// for the outermost MasonryError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	mErr, ok := err.(*MasonryError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return mErr.Code
}
