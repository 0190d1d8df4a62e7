// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/models"
)

// contactRepository is the SQL implementation of [ContactRepository].
// Every query it issues carries a user_id condition.
type contactRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) ListContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	return r.selectContacts(ctx, "*contactRepository.ListContacts", userID, models.ContactFilter{})
}

// SearchContacts returns the user's contacts matching every non-empty
// criterion of filter exactly.
func (r *contactRepository) SearchContacts(ctx context.Context, userID int64, filter models.ContactFilter) ([]models.Contact, error) {
	return r.selectContacts(ctx, "*contactRepository.SearchContacts", userID, filter)
}

func (r *contactRepository) selectContacts(ctx context.Context, funcName string, userID int64, filter models.ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectContactsQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("failed to execute query")
		return nil, r.db.queryError(err, ErrContactNotFound, ErrExecutingQuery)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Int64("user_id", userID).Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		contacts = append(contacts, contact)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return contacts, nil
}

// GetContact returns the contact iff it exists and is owned by userID.
func (r *contactRepository) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetContactQuery(userID, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Contact{}, r.db.queryError(err, ErrContactNotFound, ErrExecutingQuery)
	}

	return contact, nil
}

// CreateContact inserts contact owned by contact.UserID and returns the
// stored row. An owner that does not exist yields [ErrUserNotFound].
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCreateContactQuery(contact)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Int64("user_id", contact.UserID).Msg("failed to create contact")
		return models.Contact{}, r.db.queryError(err, ErrUserNotFound, ErrExecutingQuery)
	}

	return created, nil
}

// UpdateContact runs one UPDATE ... WHERE id AND user_id RETURNING. No
// matching row yields [ErrContactNotFound]. An empty update returns the
// current record.
func (r *contactRepository) UpdateContact(ctx context.Context, userID, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	if update.IsEmpty() {
		return r.GetContact(ctx, userID, contactID)
	}

	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateContactQuery(userID, contactID, update)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", "*contactRepository.UpdateContact").
			Int64("user_id", userID).Int64("contact_id", contactID).Msg("update did not return a row")
		return models.Contact{}, r.db.queryError(err, ErrContactNotFound, ErrExecutingQuery)
	}

	return updated, nil
}

// DeleteContact deletes the contact iff owned by userID.
func (r *contactRepository) DeleteContact(ctx context.Context, userID, contactID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteContactQuery(userID, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Int64("contact_id", contactID).Msg("failed to execute statement")
		return r.db.queryError(err, ErrContactNotFound, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Surename,
		&c.Email,
		&c.PhoneNumber,
		&c.DateOfBirth,
		&c.Description,
		&c.UserID,
	)
	return c, err
}
