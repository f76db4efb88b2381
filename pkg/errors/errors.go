package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeDecode          ErrorType = "decode"
	ErrorTypeMissingMetadata ErrorType = "missing_metadata"
	ErrorTypeWrite           ErrorType = "write"
	ErrorTypeBackupExists    ErrorType = "backup_exists"
	ErrorTypePermission      ErrorType = "permission"
	ErrorTypeWalk            ErrorType = "walk"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// Error represents a processing error with type information and the
// filesystem path it relates to
type Error struct {
	Type ErrorType
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Path)
}

// Unwrap returns the wrapped error for errors.Is / errors.As chains
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a typed error for the given path
func New(errorType ErrorType, path string, err error) *Error {
	return &Error{
		Type: errorType,
		Path: path,
		Err:  err,
	}
}

// TypeOf extracts the error type from an error chain.
// Returns ErrorTypeUnknown for errors that did not originate here.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsType checks whether an error chain contains a typed error of the given type
func IsType(err error, errorType ErrorType) bool {
	return TypeOf(err) == errorType
}

// IsDecode checks for an image decode failure
func IsDecode(err error) bool {
	return IsType(err, ErrorTypeDecode)
}

// IsMissingMetadata checks for a missing EXIF block
func IsMissingMetadata(err error) bool {
	return IsType(err, ErrorTypeMissingMetadata)
}

// IsWrite checks for a file write failure
func IsWrite(err error) bool {
	return IsType(err, ErrorTypeWrite)
}

// IsBackupExists checks whether the backup destination was already present
func IsBackupExists(err error) bool {
	return IsType(err, ErrorTypeBackupExists)
}
