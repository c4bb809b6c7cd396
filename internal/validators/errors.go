package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages attached to field errors.
const (
	MsgRequired        = "is required"
	MsgInvalidPhone    = "must be a valid phone number"
	MsgInvalidEmail    = "must be a valid email address"
	MsgInvalidCategory = "invalid category"
	MsgCategoryInUse   = "category still has contacts"
)

// FieldError describes a problem with a single input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries field-level and cross-entity validation failures.
// errors.Is(err, ErrValidation) holds for every ValidationError, and
// errors.Is also reaches Cause when one is set.
type ValidationError struct {
	Fields []FieldError
	Cause  error
}

// NewValidationError builds a ValidationError for a single field, optionally
// wrapping the store or service error that caused it.
func NewValidationError(cause error, field, message string) *ValidationError {
	return &ValidationError{
		Fields: []FieldError{{Field: field, Message: message}},
		Cause:  cause,
	}
}

// Add records a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns e as an error when it holds at least one field error and nil
// otherwise, avoiding typed-nil interface values.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
