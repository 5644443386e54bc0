package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeDegenerateSize    ErrorType = "degenerate_size"
	ErrorTypeUnsupportedFormat ErrorType = "unsupported_format"
	ErrorTypeInvalidAnchor     ErrorType = "invalid_anchor"
	ErrorTypeEmptyDirectory    ErrorType = "empty_directory"
	ErrorTypeOutputExists      ErrorType = "output_exists"
	ErrorTypeConfig            ErrorType = "config"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewDegenerateSizeError is returned for images without a positive width and height
func NewDegenerateSizeError(width, height int) *AppError {
	return &AppError{
		Type:    ErrorTypeDegenerateSize,
		Message: fmt.Sprintf("image size %dx%d has no aspect ratio", width, height),
	}
}

// NewUnsupportedFormatError is returned when an image cannot be decoded or encoded
func NewUnsupportedFormatError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeUnsupportedFormat,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidAnchorWarning is raised for an anchor name outside the anchor table
func NewInvalidAnchorWarning(name string, valid []string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidAnchor,
		Message: fmt.Sprintf("%q is not a valid position %v", name, valid),
	}
}

// NewEmptyDirectoryNotice is raised when there is nothing to process
func NewEmptyDirectoryNotice(dir string) *AppError {
	return &AppError{
		Type:    ErrorTypeEmptyDirectory,
		Message: fmt.Sprintf("there is no image to process in %q", dir),
	}
}

// NewOutputExistsError is returned when the run output directory is already present
func NewOutputExistsError(dir string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutputExists,
		Message: fmt.Sprintf("output directory %q already exists", dir),
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if the error, or any error it wraps, is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}
