package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectivity signals that the document store never became reachable.
	ErrConnectivity = errors.New("document store unreachable")
	// ErrMissingField signals a hit without a required stored field.
	ErrMissingField = errors.New("missing field")
	// ErrQuery signals that the document store rejected or failed a search.
	ErrQuery = errors.New("query failed")
	// ErrInvalidDocument signals a document that cannot be indexed.
	ErrInvalidDocument = errors.New("invalid document")
)

// MissingFieldError wraps ErrMissingField with the offending hit and field.
type MissingFieldError struct {
	HitID string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: hit %q has no %q", ErrMissingField.Error(), e.HitID, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// QueryError wraps a backend search failure.
type QueryError struct {
	Index string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s on index %q: %v", ErrQuery.Error(), e.Index, e.Err)
}

// Unwrap exposes both the sentinel and the backend cause.
func (e *QueryError) Unwrap() []error { return []error{ErrQuery, e.Err} }
