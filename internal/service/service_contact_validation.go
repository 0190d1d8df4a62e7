package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-book/internal/validators"
	"github.com/MKhiriev/go-contacts-book/models"
)

// ContactValidationService rejects malformed input before it reaches the
// wrapped ContactService. Every rejection wraps ErrInvalidDataProvided.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

func (v *ContactValidationService) ListContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	if err := v.validateUserID(ctx, userID); err != nil {
		return nil, err
	}
	return v.inner.ListContacts(ctx, userID)
}

func (v *ContactValidationService) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	if err := v.validateIDs(ctx, userID, contactID); err != nil {
		return models.Contact{}, err
	}
	return v.inner.GetContact(ctx, userID, contactID)
}

func (v *ContactValidationService) CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	if err := v.validateUserID(ctx, userID); err != nil {
		return models.Contact{}, err
	}
	if err := v.validator.Validate(ctx, contact); err != nil {
		return models.Contact{}, invalid(err)
	}
	return v.inner.CreateContact(ctx, userID, contact)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, userID, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	if err := v.validateIDs(ctx, userID, contactID); err != nil {
		return models.Contact{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Contact{}, invalid(err)
	}
	return v.inner.UpdateContact(ctx, userID, contactID, update)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, userID, contactID int64) error {
	if err := v.validateIDs(ctx, userID, contactID); err != nil {
		return err
	}
	return v.inner.DeleteContact(ctx, userID, contactID)
}

func (v *ContactValidationService) SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter) ([]models.Contact, error) {
	if err := v.validateUserID(ctx, userID); err != nil {
		return nil, err
	}
	return v.inner.SearchContacts(ctx, userID, filter)
}

func (v *ContactValidationService) UpcomingBirthdays(ctx context.Context, userID int64) ([]models.Contact, error) {
	if err := v.validateUserID(ctx, userID); err != nil {
		return nil, err
	}
	return v.inner.UpcomingBirthdays(ctx, userID)
}

func (v *ContactValidationService) Wrap(wrapper ContactService) ContactService {
	v.inner = wrapper
	return v
}

func (v *ContactValidationService) validateUserID(ctx context.Context, userID int64) error {
	if err := v.validator.Validate(ctx, userID, validators.FieldUserID); err != nil {
		return invalid(err)
	}
	return nil
}

func (v *ContactValidationService) validateIDs(ctx context.Context, userID, contactID int64) error {
	if err := v.validateUserID(ctx, userID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, contactID); err != nil {
		return invalid(err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
