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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors abort a run before anything is touched
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrNoSelection    ErrorCode = "NO_SELECTION"
	ErrTargetConflict ErrorCode = "TARGET_CONFLICT"

	// Entry errors are reported and recovered per mapping entry
	ErrSourceMissing ErrorCode = "SOURCE_MISSING"
	ErrBackupFailed  ErrorCode = "BACKUP_FAILED"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// Secret sync errors
	ErrSecretUnknown ErrorCode = "SECRET_UNKNOWN"
	ErrSecretMissing ErrorCode = "SECRET_MISSING"
	ErrSecretSync    ErrorCode = "SECRET_SYNC"

	// Installer errors
	ErrToolMissing ErrorCode = "TOOL_MISSING"
	ErrListRead    ErrorCode = "LIST_READ"
	ErrInstallRun  ErrorCode = "INSTALL_RUN"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// OutfitError represents a structured error with code and details
type OutfitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OutfitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OutfitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OutfitError) Is(target error) bool {
	var targetErr *OutfitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OutfitError with the given code and message
func New(code ErrorCode, message string) *OutfitError {
	return &OutfitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OutfitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OutfitError {
	return &OutfitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OutfitError
func Wrap(err error, code ErrorCode, message string) *OutfitError {
	if err == nil {
		return nil
	}
	return &OutfitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OutfitError {
	if err == nil {
		return nil
	}
	return &OutfitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OutfitError) WithDetail(key string, value interface{}) *OutfitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *OutfitError) WithDetails(details map[string]interface{}) *OutfitError {
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
	var outfitErr *OutfitError
	if errors.As(err, &outfitErr) {
		return outfitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OutfitError
func GetErrorCode(err error) ErrorCode {
	var outfitErr *OutfitError
	if errors.As(err, &outfitErr) {
		return outfitErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OutfitError
func GetErrorDetails(err error) map[string]interface{} {
	var outfitErr *OutfitError
	if errors.As(err, &outfitErr) {
		return outfitErr.Details
	}
	return nil
}
