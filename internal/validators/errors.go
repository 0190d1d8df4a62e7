package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidContactID = errors.New("invalid contact ID")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptySurename    = errors.New("surename is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email is not a valid address")
	ErrEmptyPhoneNumber = errors.New("phone number is required")
	ErrEmptyDateOfBirth = errors.New("date of birth is required")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrNullRequired     = errors.New("required field cannot be null")

	ErrInvalidUsername = errors.New("username must be 1 to 20 characters")
	ErrInvalidPassword = errors.New("password must be 6 to 72 characters long")
)
