package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"

	loginMaxLength    = 64
	passwordMinLength = 6
)

// CredentialsValidator validates login and password pairs used for
// registration and login.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldLogin:
			checkRequired(verr, f, user.Login)
			checkMaxLength(verr, f, user.Login, loginMaxLength)
		case FieldPassword:
			checkRequired(verr, f, user.Password)
			if user.Password != "" && utf8.RuneCountInString(user.Password) < passwordMinLength {
				verr.Add(f, "must be at least 6 characters")
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.OrNil()
}
