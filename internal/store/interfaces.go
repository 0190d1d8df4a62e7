package store

import (
	"context"

	"github.com/MKhiriev/go-contacts-book/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a user and returns it with the generated id.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateRefreshToken stores refreshToken for the user; an empty string
	// clears it.
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string) error
	// DeleteUser removes the user and, through the foreign key, all of the
	// user's contacts.
	DeleteUser(ctx context.Context, userID int64) error
}

// ContactRepository persists contacts. Every method is scoped to the owner:
// a contact that exists but belongs to another user is reported as
// [ErrContactNotFound].
type ContactRepository interface {
	ListContacts(ctx context.Context, userID int64) ([]models.Contact, error)
	GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	// CreateContact inserts contact as owned by contact.UserID.
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	// UpdateContact applies the present fields of update in one statement
	// and returns the stored row.
	UpdateContact(ctx context.Context, userID, contactID int64, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) error
	SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter) ([]models.Contact, error)
}
