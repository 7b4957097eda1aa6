package service

import "fmt"

// FieldError is a validation failure attached to a single request field.
// Handlers render it as a per-field payload instead of a bare message.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
