package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated is returned when the caller has no valid token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrMissingToken is returned when a request carries no token at all.
	ErrMissingToken = fmt.Errorf("%w: missing token", ErrUnauthenticated)
	// ErrNotOwner is returned when the caller does not own the requested entity.
	ErrNotOwner = errors.New("not owner")
	// ErrInvalid is returned when input fails validation.
	ErrInvalid = errors.New("invalid input")
	// ErrConflict is returned when an entity violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
	// ErrStorageDisabled is returned by cover operations when object storage is off.
	ErrStorageDisabled = errors.New("object storage disabled")
)

// ValidationError carries per-field validation messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalid.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap allows errors.Is(err, ErrInvalid).
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
