package model

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

// Validator checks a single field value.
// ErrorMessage is meaningful only after IsValid returned false.
type Validator[T any] interface {
	// IsValid reports whether value is acceptable.
	IsValid(value T) bool
	// ErrorMessage describes the latest failure.
	ErrorMessage() string
}

// NameValidator accepts non-empty strings whose length is within [min, max].
type NameValidator struct {
	minLength int
	maxLength int
	message   string
}

// NewNameValidator creates a NameValidator.
func NewNameValidator(minLength, maxLength int) *NameValidator {
	return &NameValidator{
		minLength: minLength,
		maxLength: maxLength,
	}
}

// IsValid checks length only. Digits or punctuation are not rejected.
func (v *NameValidator) IsValid(value string) bool {
	length := utf8.RuneCountInString(value)
	switch {
	case length == 0:
		v.message = "the value is empty."
		return false
	case length < v.minLength:
		v.message = fmt.Sprintf("the value: %s is shorter than %d characters.", value, v.minLength)
		return false
	case length > v.maxLength:
		v.message = fmt.Sprintf("the value: %s is longer than %d characters.", value, v.maxLength)
		return false
	}
	return true
}

// ErrorMessage returns the latest failure message.
func (v *NameValidator) ErrorMessage() string {
	return v.message
}

// EmailValidator accepts every value.
//
// No address check is applied; the permissive behaviour is kept so that
// existing files keep loading. Inject a stricter Validator[string] with
// WithEmailValidator when needed.
type EmailValidator struct {
	message string
}

// NewEmailValidator creates an EmailValidator.
func NewEmailValidator() *EmailValidator {
	return &EmailValidator{}
}

// IsValid always reports true.
func (v *EmailValidator) IsValid(_ string) bool {
	return true
}

// ErrorMessage returns the latest failure message.
func (v *EmailValidator) ErrorMessage() string {
	return v.message
}

// NumberValidator accepts numeric strings (phone numbers) whose length is within [min, max].
type NumberValidator struct {
	minLength  int
	maxLength  int
	digitsOnly bool
	message    string
}

// NumberValidatorOption configures a NumberValidator.
type NumberValidatorOption func(*NumberValidator)

// WithDigitsOnly makes the validator reject any rune that is not a decimal digit.
// Without it only the length is checked, so "+41 79 627" is accepted.
func WithDigitsOnly() NumberValidatorOption {
	return func(v *NumberValidator) {
		v.digitsOnly = true
	}
}

// NewNumberValidator creates a NumberValidator.
func NewNumberValidator(minLength, maxLength int, opts ...NumberValidatorOption) *NumberValidator {
	v := &NumberValidator{
		minLength: minLength,
		maxLength: maxLength,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// IsValid checks the length and, if configured, the digits.
func (v *NumberValidator) IsValid(value string) bool {
	length := utf8.RuneCountInString(value)
	if length < v.minLength || length > v.maxLength {
		v.message = fmt.Sprintf("the number: %s must be between %d and %d characters long.", value, v.minLength, v.maxLength)
		return false
	}
	if v.digitsOnly {
		for _, r := range value {
			if !unicode.IsDigit(r) {
				v.message = fmt.Sprintf("the number: %s contains the not numeric character %q.", value, r)
				return false
			}
		}
	}
	return true
}

// ErrorMessage returns the latest failure message.
func (v *NumberValidator) ErrorMessage() string {
	return v.message
}

// DateValidator accepts dates that are not after the reference date.
type DateValidator struct {
	reference time.Time
	message   string
}

// NewDateValidator creates a DateValidator.
// time.Time is a value, so later changes by the caller do not move the reference.
func NewDateValidator(reference time.Time) *DateValidator {
	return &DateValidator{
		reference: reference,
	}
}

// Reference returns the reference date.
func (v *DateValidator) Reference() time.Time {
	return v.reference
}

// IsValid reports whether value is not strictly after the reference date.
func (v *DateValidator) IsValid(value time.Time) bool {
	if value.After(v.reference) {
		v.message = fmt.Sprintf("the date: %s is after %s.", formatDate(value), formatDate(v.reference))
		return false
	}
	return true
}

// ErrorMessage returns the latest failure message.
func (v *DateValidator) ErrorMessage() string {
	return v.message
}
