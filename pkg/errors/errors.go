package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes, one per failure kind the rename pipeline can report
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrIO       ErrorCode = "IO"
	ErrConfig   ErrorCode = "CONFIG"

	// Argument errors
	ErrInvalidSourcePath ErrorCode = "INVALID_SOURCE_PATH"
	ErrInvalidTargetPath ErrorCode = "INVALID_TARGET_PATH"

	// FileSystem errors
	ErrDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"
	ErrPermissionDenied  ErrorCode = "PERMISSION_DENIED"
	ErrNoFilesForPattern ErrorCode = "NO_FILES_FOR_PATTERN"
	ErrFileAlreadyExists ErrorCode = "FILE_ALREADY_EXISTS"
	ErrMoveFailed        ErrorCode = "MOVE_ERROR"
)

// MmvError represents a structured error with code and details.
// Message is the human readable text shown to the user; Error() adds the
// code and the wrapped cause for logs.
type MmvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MmvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MmvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MmvError) Is(target error) bool {
	var targetErr *MmvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MmvError with the given code and message
func New(code ErrorCode, message string) *MmvError {
	return &MmvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MmvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MmvError {
	return &MmvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MmvError
func Wrap(err error, code ErrorCode, message string) *MmvError {
	if err == nil {
		return nil
	}
	return &MmvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MmvError {
	if err == nil {
		return nil
	}
	return &MmvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MmvError) WithDetail(key string, value interface{}) *MmvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MmvError) WithDetails(details map[string]interface{}) *MmvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// InvalidSourcePath reports a source argument without a usable directory or file name.
func InvalidSourcePath(path string) *MmvError {
	return Newf(ErrInvalidSourcePath, "Invalid source path: %s", path).
		WithDetail("path", path)
}

// InvalidTargetPath reports a target that cannot be resolved or has no file name.
func InvalidTargetPath(detail string) *MmvError {
	return Newf(ErrInvalidTargetPath, "Invalid target path: %s", detail)
}

// DirectoryNotFound reports a source or target directory that cannot be opened.
func DirectoryNotFound(dir string, cause error) *MmvError {
	return &MmvError{
		Code:    ErrDirectoryNotFound,
		Message: fmt.Sprintf("Directory `%s` not found", dir),
		Details: map[string]interface{}{"directory": dir},
		Wrapped: cause,
	}
}

// PermissionDenied reports an operation refused by the operating system.
func PermissionDenied(cause error) *MmvError {
	return Wrapf(cause, ErrPermissionDenied, "Permission denied: %v", cause)
}

// NoFilesForPattern reports a source scan without a single match.
func NoFilesForPattern(pattern string) *MmvError {
	return Newf(ErrNoFilesForPattern, "Files for pattern '%s' not found", pattern).
		WithDetail("pattern", pattern)
}

// FileAlreadyExists reports a target that would be overwritten without --force.
func FileAlreadyExists(path string) *MmvError {
	return Newf(ErrFileAlreadyExists, "Not able to replace existing file: %s", path).
		WithDetail("path", path)
}

// MoveFailed reports a rename that failed for a reason not covered by another code.
func MoveFailed(from string, cause error) *MmvError {
	return &MmvError{
		Code:    ErrMoveFailed,
		Message: fmt.Sprintf("Failed move: %s", from),
		Details: map[string]interface{}{"from": from},
		Wrapped: cause,
	}
}

// FromIO classifies a raw filesystem error. Permission problems get their own
// code; everything else is reported as a generic IO error.
func FromIO(err error) *MmvError {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return PermissionDenied(err)
	}
	return Wrap(err, ErrIO, err.Error())
}

// UserMessage returns the text shown to the user for err: the plain message of
// a MmvError, or err.Error() for anything else.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var mmvErr *MmvError
	if errors.As(err, &mmvErr) {
		return mmvErr.Message
	}
	return err.Error()
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mmvErr *MmvError
	if errors.As(err, &mmvErr) {
		return mmvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MmvError
func GetErrorCode(err error) ErrorCode {
	var mmvErr *MmvError
	if errors.As(err, &mmvErr) {
		return mmvErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MmvError
func GetErrorDetails(err error) map[string]interface{} {
	var mmvErr *MmvError
	if errors.As(err, &mmvErr) {
		return mmvErr.Details
	}
	return nil
}
