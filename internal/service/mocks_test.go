package service

import (
	"context"

	"github.com/MKhiriev/go-contacts-book/internal/store"
	"github.com/MKhiriev/go-contacts-book/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
	updateRefreshTokenFn func(ctx context.Context, userID int64, refreshToken string) error
	deleteUserFn         func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	if m.updateRefreshTokenFn != nil {
		return m.updateRefreshTokenFn(ctx, userID, refreshToken)
	}
	return nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ContactRepository
// ─────────────────────────────────────────────

type mockContactRepository struct {
	listContactsFn   func(ctx context.Context, userID int64) ([]models.Contact, error)
	getContactFn     func(ctx context.Context, userID, contactID int64) (models.Contact, error)
	createContactFn  func(ctx context.Context, contact models.Contact) (models.Contact, error)
	updateContactFn  func(ctx context.Context, userID, contactID int64, update models.ContactUpdate) (models.Contact, error)
	deleteContactFn  func(ctx context.Context, userID, contactID int64) error
	searchContactsFn func(ctx context.Context, userID int64, filter models.ContactFilter) ([]models.Contact, error)
}

func (m *mockContactRepository) ListContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	if m.listContactsFn != nil {
		return m.listContactsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockContactRepository) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	if m.getContactFn != nil {
		return m.getContactFn(ctx, userID, contactID)
	}
	return models.Contact{}, store.ErrContactNotFound
}

func (m *mockContactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.createContactFn != nil {
		return m.createContactFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactRepository) UpdateContact(ctx context.Context, userID, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	if m.updateContactFn != nil {
		return m.updateContactFn(ctx, userID, contactID, update)
	}
	return models.Contact{}, store.ErrContactNotFound
}

func (m *mockContactRepository) DeleteContact(ctx context.Context, userID, contactID int64) error {
	if m.deleteContactFn != nil {
		return m.deleteContactFn(ctx, userID, contactID)
	}
	return nil
}

func (m *mockContactRepository) SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter) ([]models.Contact, error) {
	if m.searchContactsFn != nil {
		return m.searchContactsFn(ctx, userID, filter)
	}
	return nil, nil
}
