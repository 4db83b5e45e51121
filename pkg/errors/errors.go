package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of a SolError. Codes are stable so that
// callers and tests can branch on them instead of on message text.
type ErrorCode string

const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// ErrIO covers unreadable directories, undeletable or uncreatable files.
	ErrIO ErrorCode = "IO"
	// ErrPatternSyntax is returned for a glob that does not compile.
	ErrPatternSyntax ErrorCode = "PATTERN_SYNTAX"
	// ErrExternalTool is returned when a subprocess or the VCS library fails.
	ErrExternalTool ErrorCode = "EXTERNAL_TOOL"
	// ErrPrecondition is returned when the working environment is not what
	// a command expects, e.g. the packaging root has no common directory.
	ErrPrecondition ErrorCode = "PRECONDITION"

	ErrConfig       ErrorCode = "CONFIG"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrPermission   ErrorCode = "PERMISSION"
)

// SolError is the single application error type. Errors from the
// filesystem, the glob library, go-git and subprocesses are folded into it
// with a Code, and the original error is kept as the wrapped cause.
type SolError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SolError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *SolError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SolError with the same code.
func (e *SolError) Is(target error) bool {
	var targetErr *SolError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SolError with the given code and message
func New(code ErrorCode, message string) *SolError {
	return &SolError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SolError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SolError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. It returns nil if err is nil, so
// callers returning the plain error interface must check err first.
func Wrap(err error, code ErrorCode, message string) *SolError {
	if err == nil {
		return nil
	}
	return &SolError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SolError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SolError) WithDetail(key string, value interface{}) *SolError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var solErr *SolError
	if errors.As(err, &solErr) {
		return solErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SolError
func GetErrorCode(err error) ErrorCode {
	var solErr *SolError
	if errors.As(err, &solErr) {
		return solErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SolError
func GetErrorDetails(err error) map[string]interface{} {
	var solErr *SolError
	if errors.As(err, &solErr) {
		return solErr.Details
	}
	return nil
}
