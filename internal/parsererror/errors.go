package parsererror

import (
	"fmt"
	"strings"
)

// UnsupportedSourceError is returned when no extractor is registered for a source tag.
// It is the only error the statement parser surfaces to its callers.
type UnsupportedSourceError struct {
	Source    string
	Supported []string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("unsupported source '%s'. Try: %s",
		e.Source, strings.Join(e.Supported, " or "))
}

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ClassificationError represents a failed call to the classification service
type ClassificationError struct {
	Description string
	Strategy    string
	Err         error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed for '%s' using %s: %v",
		e.Description, e.Strategy, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// PersistenceError represents a failure to read or write a mapping document.
type PersistenceError struct {
	Path      string
	Operation string
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Operation, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// TextExtractionError represents a document whose text could not be read.
// Statement parsing logs it and continues with empty text.
type TextExtractionError struct {
	Reason string
	Err    error
}

func (e *TextExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("text extraction failed: %s", e.Reason)
	}
	return fmt.Sprintf("text extraction failed: %s: %v", e.Reason, e.Err)
}

func (e *TextExtractionError) Unwrap() error {
	return e.Err
}
