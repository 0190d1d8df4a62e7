package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-contacts-book/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"

	MaxUsernameLength = 20
	MinPasswordLength = 6
	// bcrypt ignores input beyond 72 bytes
	MaxPasswordLength = 72
)

// CredentialsValidator validates register and login input.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			n := utf8.RuneCountInString(c.Username)
			if n == 0 || n > MaxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(c.Password) < MinPasswordLength || len(c.Password) > MaxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
