package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// FieldCategoryName targets the category name.
const FieldCategoryName = "name"

// CategoryValidator validates category input. Names are measured in
// characters, not bytes, after trimming.
type CategoryValidator struct {
}

// NewCategoryValidator constructs a new CategoryValidator
// and returns it as the Validator interface.
func NewCategoryValidator() Validator {
	return &CategoryValidator{}
}

func (v *CategoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CategoryInput:
		return v.validateCategoryInput(value, fields...)
	case *models.CategoryInput:
		return v.validateCategoryInput(*value, fields...)
	case models.Category:
		return v.validateCategoryInput(models.CategoryInput{Name: value.Name}, fields...)
	case *models.Category:
		return v.validateCategoryInput(models.CategoryInput{Name: value.Name}, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CategoryValidator) validateCategoryInput(in models.CategoryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategoryName}
	}

	in = in.Normalize()
	verr := &ValidationError{}

	for _, f := range fields {
		switch f {
		case FieldCategoryName:
			checkRequired(verr, f, in.Name)
			checkMaxLength(verr, f, in.Name, models.CategoryNameMaxLength)
		default:
			return ErrUnknownField
		}
	}

	return verr.OrNil()
}

func checkRequired(verr *ValidationError, field, value string) {
	if value == "" {
		verr.Add(field, MsgRequired)
	}
}

func checkMaxLength(verr *ValidationError, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		verr.Add(field, fmt.Sprintf("must be at most %d characters", limit))
	}
}
