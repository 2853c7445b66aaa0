package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures invalid user or configuration input.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SubmitError represents a failed submission to a remote endpoint.
type SubmitError struct {
	Endpoint string
	Err      error
}

// NewSubmitError constructs a SubmitError for the given endpoint.
func NewSubmitError(endpoint string, err error) error {
	return &SubmitError{Endpoint: endpoint, Err: err}
}

func (e *SubmitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Endpoint != "" {
		return fmt.Sprintf("submit error [%s]: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("submit error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *SubmitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PrefsError indicates a failure reading or writing durable preferences.
type PrefsError struct {
	Key     string
	Message string
	Err     error
}

// NewPrefsError constructs a PrefsError for the given preference key.
func NewPrefsError(key string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PrefsError{Key: key, Message: message, Err: err}
}

func (e *PrefsError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("prefs error [%s]: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("prefs error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PrefsError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
