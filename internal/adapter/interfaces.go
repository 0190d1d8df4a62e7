// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the contacts server.
//
// The primary abstraction is [ServerAdapter]; [NewHTTPServerAdapter] returns
// its HTTP/REST implementation built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors of
// errors.go so that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts-book/models"
)

// ServerAdapter defines communication with the contacts server.
// Implementations keep the token pair of the last Login or Refresh and
// attach the access token to every authenticated request.
type ServerAdapter interface {
	// SetTokens stores the pair used by subsequent requests.
	SetTokens(pair models.TokenPair)

	// Tokens returns the stored pair, empty before the first login.
	Tokens() models.TokenPair

	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates and stores the returned token pair.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)

	// Refresh exchanges the stored refresh token for a new pair and stores it.
	Refresh(ctx context.Context) (models.TokenPair, error)

	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	ListContacts(ctx context.Context) ([]models.Contact, error)
	FindContact(ctx context.Context, contactID int64) (models.Contact, error)
	AddContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID int64, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error
	SearchContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	UpcomingBirthdays(ctx context.Context) ([]models.Contact, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
