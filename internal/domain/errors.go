package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
var ErrNotFound = errors.New("resource not found")

// ValidationError reports the first business rule violated while
// constructing or patching an entity. Field names match the JSON wire
// names so the delivery layer can return them verbatim.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Min     int    `json:"min,omitempty"`
	Max     int    `json:"max,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func errRequired(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

func errMaxLength(field string, max int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("exceeds maximum length of %d", max),
		Max:     max,
	}
}

func errMinLength(field string, min int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be at least %d characters long", min),
		Min:     min,
	}
}

func errInvalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a uniqueness violation detected against stored
// state: duplicate name/platform/order_index, or a second singleton.
type ConflictError struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// NotFoundError identifies which entity a miss refers to. Repositories
// return the bare ErrNotFound sentinel; usecases wrap it with context.
type NotFoundError struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
