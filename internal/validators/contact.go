// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-contacts-book/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldName        = "name"
	FieldSurename    = "surename"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldDateOfBirth = "date_of_birth"
	FieldDescription = "description"
)

// Length limits of contact fields, matching the column definitions.
const (
	MaxNameLength        = 255
	MaxEmailLength       = 255
	MaxPhoneNumberLength = 50
	MaxDescriptionLength = 2000
)

var allContactFields = []string{
	FieldName,
	FieldSurename,
	FieldEmail,
	FieldPhoneNumber,
	FieldDateOfBirth,
	FieldDescription,
}

// ContactValidator validates contacts, partial updates and contact ids.
type ContactValidator struct{}

func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate dispatches on the dynamic type of obj:
//   - models.Contact: every field in fields (all contact fields by default);
//   - models.ContactUpdate: each present field, rejecting null on required ones;
//   - int64: a contact or user id, which must be positive.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)

	case models.ContactUpdate:
		return v.validateContactUpdate(ctx, value)
	case *models.ContactUpdate:
		return v.validateContactUpdate(ctx, *value)

	case int64:
		return v.validateID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateID(id int64, fields ...string) error {
	if id > 0 {
		return nil
	}
	if len(fields) > 0 && fields[0] == FieldUserID {
		return ErrInvalidUserID
	}
	return ErrInvalidContactID
}

func (v *ContactValidator) validateContact(_ context.Context, contact models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = allContactFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = v.validateID(contact.ID)
		case FieldUserID:
			err = v.validateID(contact.UserID, FieldUserID)
		case FieldName:
			err = requiredString(contact.Name, MaxNameLength, ErrEmptyName)
		case FieldSurename:
			err = requiredString(contact.Surename, MaxNameLength, ErrEmptySurename)
		case FieldEmail:
			err = validateEmail(contact.Email)
		case FieldPhoneNumber:
			err = requiredString(contact.PhoneNumber, MaxPhoneNumberLength, ErrEmptyPhoneNumber)
		case FieldDateOfBirth:
			if contact.DateOfBirth.IsZero() {
				err = ErrEmptyDateOfBirth
			}
		case FieldDescription:
			if contact.Description != nil {
				err = maxLength(*contact.Description, MaxDescriptionLength)
			}
		default:
			return ErrUnknownField
		}

		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

func (v *ContactValidator) validateContactUpdate(ctx context.Context, update models.ContactUpdate) error {
	// only description may be cleared
	nulls := []struct {
		field  string
		isNull bool
	}{
		{FieldName, update.Name.IsNull()},
		{FieldSurename, update.Surename.IsNull()},
		{FieldEmail, update.Email.IsNull()},
		{FieldPhoneNumber, update.PhoneNumber.IsNull()},
		{FieldDateOfBirth, update.DateOfBirth.IsNull()},
	}
	for _, n := range nulls {
		if n.isNull {
			return fmt.Errorf("%s: %w", n.field, ErrNullRequired)
		}
	}

	// validate the present values against a contact built from them
	var present []string
	if update.Name.IsSet() {
		present = append(present, FieldName)
	}
	if update.Surename.IsSet() {
		present = append(present, FieldSurename)
	}
	if update.Email.IsSet() {
		present = append(present, FieldEmail)
	}
	if update.PhoneNumber.IsSet() {
		present = append(present, FieldPhoneNumber)
	}
	if update.DateOfBirth.IsSet() {
		present = append(present, FieldDateOfBirth)
	}
	if update.Description.IsSet() {
		present = append(present, FieldDescription)
	}
	if len(present) == 0 {
		return nil
	}

	return v.validateContact(ctx, update.Apply(models.Contact{}), present...)
}

func requiredString(s string, limit int, emptyErr error) error {
	if strings.TrimSpace(s) == "" {
		return emptyErr
	}
	return maxLength(s, limit)
}

func maxLength(s string, limit int) error {
	if utf8.RuneCountInString(s) > limit {
		return fmt.Errorf("%w: at most %d characters", ErrFieldTooLong, limit)
	}
	return nil
}

func validateEmail(email string) error {
	if err := requiredString(email, MaxEmailLength, ErrEmptyEmail); err != nil {
		return err
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
