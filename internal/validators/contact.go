package validators

import (
	"context"
	"net/mail"
	"regexp"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// Field name constants used to specify which contact fields should be
// validated. They match the JSON names of [models.ContactFields].
const (
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldProvince   = "province"
	FieldPostalCode = "postal_code"
	FieldPhone      = "phone"
	FieldEmail      = "email"
	FieldCategoryID = "category_id"
)

var allContactFields = []string{
	FieldFirstName, FieldLastName, FieldAddress, FieldCity, FieldProvince,
	FieldPostalCode, FieldPhone, FieldEmail, FieldCategoryID,
}

// phonePattern accepts an optional leading "+", digits with common
// separators and an optional extension ("x 12", "ext. 12").
var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ().\-]{5,23}[0-9)]((\s*(x|ext\.?)\s*)[0-9]{1,6})?$`)

// ContactValidator validates the editable fields of a contact. Optional
// fields are only checked when present.
type ContactValidator struct {
}

// NewContactValidator constructs a new ContactValidator
// and returns it as the Validator interface.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactFields:
		return v.validateContactFields(value, fields...)
	case *models.ContactFields:
		return v.validateContactFields(*value, fields...)
	case models.Contact:
		return v.validateContactFields(value.Fields(), fields...)
	case *models.Contact:
		return v.validateContactFields(value.Fields(), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateContactFields(in models.ContactFields, fields ...string) error {
	if len(fields) == 0 {
		fields = allContactFields
	}

	in = in.Normalize()
	verr := &ValidationError{}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			checkRequired(verr, f, in.FirstName)
			checkMaxLength(verr, f, in.FirstName, models.ContactNameMaxLength)
		case FieldLastName:
			checkRequired(verr, f, in.LastName)
			checkMaxLength(verr, f, in.LastName, models.ContactNameMaxLength)
		case FieldAddress:
			checkOptionalMaxLength(verr, f, in.Address, models.ContactAddressMaxLength)
		case FieldCity:
			checkOptionalMaxLength(verr, f, in.City, models.ContactCityMaxLength)
		case FieldProvince:
			checkOptionalMaxLength(verr, f, in.Province, models.ContactProvinceMaxLength)
		case FieldPostalCode:
			checkOptionalMaxLength(verr, f, in.PostalCode, models.ContactPostalCodeMaxLength)
		case FieldPhone:
			if in.Phone != nil && !IsPhone(*in.Phone) {
				verr.Add(f, MsgInvalidPhone)
			}
		case FieldEmail:
			if in.Email != nil && !IsEmail(*in.Email) {
				verr.Add(f, MsgInvalidEmail)
			}
		case FieldCategoryID:
			if in.CategoryID <= 0 {
				verr.Add(f, MsgRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.OrNil()
}

func checkOptionalMaxLength(verr *ValidationError, field string, value *string, limit int) {
	if value != nil {
		checkMaxLength(verr, field, *value, limit)
	}
}

// IsPhone reports whether s looks like a phone number.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsEmail reports whether s is a bare email address (no display name).
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && addr.Name == ""
}
