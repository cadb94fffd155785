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
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigValid    ErrorCode = "CONFIG_INVALID"
	ErrConfigMissing  ErrorCode = "CONFIG_MISSING_KEY"

	// Command errors
	ErrCommandInvalid ErrorCode = "COMMAND_INVALID"
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"

	// Share and snapshot errors
	ErrSharesRootNotFound ErrorCode = "SHARES_ROOT_NOT_FOUND"
	ErrShareNotFound      ErrorCode = "SHARE_NOT_FOUND"
	ErrSnapshotList       ErrorCode = "SNAPSHOT_LIST"
	ErrSnapshotRemove     ErrorCode = "SNAPSHOT_REMOVE"
	ErrSnapshotName       ErrorCode = "SNAPSHOT_NAME"
	ErrSnapshotExists     ErrorCode = "SNAPSHOT_EXISTS"
	ErrRunFailed          ErrorCode = "RUN_FAILED"
	ErrInterrupted        ErrorCode = "INTERRUPTED"

	// FileSystem errors
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrStatFS    ErrorCode = "STATFS"
)

// SnapError represents a structured error with code and details
type SnapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SnapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SnapError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SnapError carrying the same code
func (e *SnapError) Is(target error) bool {
	targetErr, ok := As(target)
	return ok && e.Code == targetErr.Code
}

func build(err error, code ErrorCode, message string) *SnapError {
	return &SnapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// New creates a new SnapError with the given code and message
func New(code ErrorCode, message string) *SnapError {
	return build(nil, code, message)
}

// Newf creates a new SnapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SnapError {
	return build(nil, code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code. A nil err gives nil.
func Wrap(err error, code ErrorCode, message string) *SnapError {
	if err == nil {
		return nil
	}
	return build(err, code, message)
}

// Wrapf wraps err with a formatted message. A nil err gives nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SnapError {
	if err == nil {
		return nil
	}
	return build(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SnapError) WithDetail(key string, value interface{}) *SnapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// As returns the outermost SnapError in err's chain
func As(err error) (*SnapError, bool) {
	var snapErr *SnapError
	if errors.As(err, &snapErr) {
		return snapErr, true
	}
	return nil, false
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	snapErr, ok := As(err)
	return ok && snapErr.Code == code
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SnapError
func GetErrorCode(err error) ErrorCode {
	if snapErr, ok := As(err); ok {
		return snapErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SnapError
func GetErrorDetails(err error) map[string]interface{} {
	if snapErr, ok := As(err); ok {
		return snapErr.Details
	}
	return nil
}

// Detail returns one detail rendered as a string, or "" when absent
func Detail(err error, key string) string {
	v, ok := GetErrorDetails(err)[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
