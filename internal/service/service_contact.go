// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/store"
	"github.com/MKhiriev/go-contacts-book/models"
)

type contactService struct {
	contactRepository store.ContactRepository

	// birthdayWindowDays is the length of the upcoming birthdays window,
	// today included.
	birthdayWindowDays int

	// now is the clock used to determine today.
	now func() time.Time

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, cfg config.App, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository:  contactRepository,
		birthdayWindowDays: cfg.BirthdayWindowDays,
		now:                time.Now,
		logger:             logger,
	}
}

func (s *contactService) ListContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	contacts, err := s.contactRepository.ListContacts(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing contacts failed")
		return nil, fmt.Errorf("listing contacts failed: %w", err)
	}
	return contacts, nil
}

func (s *contactService) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	contact, err := s.contactRepository.GetContact(ctx, userID, contactID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("contact_id", contactID).
			Msg("getting contact failed")
		return models.Contact{}, fmt.Errorf("getting contact failed: %w", err)
	}
	return contact, nil
}

func (s *contactService) CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	contact.ID = 0
	contact.UserID = userID

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("creating contact failed")
		return models.Contact{}, fmt.Errorf("creating contact failed: %w", err)
	}
	return created, nil
}

// UpdateContact applies update to the owned contact. An update without any
// field returns the contact unchanged.
func (s *contactService) UpdateContact(ctx context.Context, userID, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	if update.IsEmpty() {
		return s.GetContact(ctx, userID, contactID)
	}

	updated, err := s.contactRepository.UpdateContact(ctx, userID, contactID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("contact_id", contactID).
			Msg("updating contact failed")
		return models.Contact{}, fmt.Errorf("updating contact failed: %w", err)
	}
	return updated, nil
}

func (s *contactService) DeleteContact(ctx context.Context, userID, contactID int64) error {
	if err := s.contactRepository.DeleteContact(ctx, userID, contactID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("contact_id", contactID).
			Msg("deleting contact failed")
		return fmt.Errorf("deleting contact failed: %w", err)
	}
	return nil
}

// SearchContacts returns the owned contacts matching every criterion set in
// filter. An empty filter matches all owned contacts.
func (s *contactService) SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter) ([]models.Contact, error) {
	contacts, err := s.contactRepository.SearchContacts(ctx, userID, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Any("filter", filter).
			Msg("searching contacts failed")
		return nil, fmt.Errorf("searching contacts failed: %w", err)
	}
	return contacts, nil
}

func (s *contactService) UpcomingBirthdays(ctx context.Context, userID int64) ([]models.Contact, error) {
	contacts, err := s.ListContacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return upcomingBirthdays(contacts, models.DateOf(s.now()), s.birthdayWindowDays), nil
}
