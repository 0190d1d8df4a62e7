package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-contacts-book/models"
)

// ContactService is the authorization-scoped access layer over contacts.
// Every method takes the id of the authenticated user and never reads or
// mutates a contact owned by someone else.
type ContactService interface {
	ListContacts(ctx context.Context, userID int64) ([]models.Contact, error)
	GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	// CreateContact stores contact as owned by userID, whatever
	// contact.UserID holds.
	CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, userID, contactID int64, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) error
	SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter) ([]models.Contact, error)
	// UpcomingBirthdays returns the contacts whose next birthday falls
	// within the configured window starting today.
	UpcomingBirthdays(ctx context.Context, userID int64) ([]models.Contact, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	Logout(ctx context.Context, userID int64) error
	// CurrentUser resolves the owner of a valid access token.
	CurrentUser(ctx context.Context, accessToken string) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// logging or validating.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService // returns a decorated ContactService applying additional behavior
}
