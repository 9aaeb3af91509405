package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an application error for the HTTP boundary.
type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindStorage    Kind = "STORAGE_ERROR"
)

// FieldIssue describes one rejected input field.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned when client input does not match an entity schema.
type ValidationError struct {
	Issues []FieldIssue
	Cause  error
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("validation failed: %v", e.Cause)
		}
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+": "+is.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Issues: []FieldIssue{{Field: field, Reason: reason}}}
}

// StorageError wraps a failure of the underlying document engine.
type StorageError struct {
	Op         string
	Collection string
	Cause      error
}

func (e *StorageError) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("storage %s %s: %v", e.Op, e.Collection, e.Cause)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

// NewStorageError wraps cause; a nil cause yields nil.
func NewStorageError(op, collection string, cause error) error {
	if cause == nil {
		return nil
	}
	return &StorageError{Op: op, Collection: collection, Cause: cause}
}

// KindOf reports the Kind of err, or "" for unclassified errors.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var se *StorageError
	if errors.As(err, &se) {
		return KindStorage
	}
	return ""
}

// HTTPStatus maps err to the status code the API answers with.
func HTTPStatus(err error) int {
	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
