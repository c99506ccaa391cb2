// Package model provides domain model for formcsv
package model

import (
	"errors"
	"fmt"
)

// ErrNotValidData is returned when a value is rejected by a field validator
var ErrNotValidData = errors.New("formcsv: not valid data")

// NotValidDataError carries the message of the validator that rejected a value.
type NotValidDataError struct {
	// Field is the record field that rejected the value. It may be empty.
	Field string
	// Message is the validator message.
	Message string
}

// newNotValidDataError creates a NotValidDataError.
func newNotValidDataError(field, message string) *NotValidDataError {
	return &NotValidDataError{
		Field:   field,
		Message: message,
	}
}

// Error returns the validator message, prefixed by the field when known.
func (e *NotValidDataError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap makes errors.Is(err, ErrNotValidData) report true.
func (e *NotValidDataError) Unwrap() error {
	return ErrNotValidData
}
