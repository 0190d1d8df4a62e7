package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contacts-book/models"
)

const (
	usersTable    = "users"
	contactsTable = "contacts"
)

var (
	userColumns = []string{"id", "username", "hash_password", "refresh_token"}

	contactColumns = []string{
		"id",
		"name",
		"surename",
		"email",
		"phone_number",
		"date_of_birth",
		"description",
		"user_id",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "hash_password").
		Values(user.Username, user.HashPassword).
		Suffix(returning(userColumns)).
		ToSql()
}

func (db *DB) buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func (db *DB) buildUpdateRefreshTokenQuery(userID int64, refreshToken string) (string, []any, error) {
	var token any
	if refreshToken != "" {
		token = refreshToken
	}

	return db.builder.
		Update(usersTable).
		Set("refresh_token", token).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func (db *DB) buildDeleteUserQuery(userID int64) (string, []any, error) {
	return db.builder.
		Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildSelectContactsQuery selects the contacts owned by userID, narrowed by
// the non-empty criteria of filter, ordered by id.
func (db *DB) buildSelectContactsQuery(userID int64, filter models.ContactFilter) (string, []any, error) {
	query := db.builder.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"user_id": userID})

	if filter.Name != "" {
		query = query.Where(sq.Eq{"name": filter.Name})
	}
	if filter.Surename != "" {
		query = query.Where(sq.Eq{"surename": filter.Surename})
	}
	if filter.Email != "" {
		query = query.Where(sq.Eq{"email": filter.Email})
	}

	return query.OrderBy("id").ToSql()
}

func (db *DB) buildGetContactQuery(userID, contactID int64) (string, []any, error) {
	return db.builder.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": contactID, "user_id": userID}).
		ToSql()
}

func (db *DB) buildCreateContactQuery(contact models.Contact) (string, []any, error) {
	return db.builder.
		Insert(contactsTable).
		Columns(contactColumns[1:]...).
		Values(
			contact.Name,
			contact.Surename,
			contact.Email,
			contact.PhoneNumber,
			contact.DateOfBirth,
			contact.Description,
			contact.UserID,
		).
		Suffix(returning(contactColumns)).
		ToSql()
}

// buildUpdateContactQuery builds a single owner-scoped UPDATE whose SET list
// holds only the fields present in update.
func (db *DB) buildUpdateContactQuery(userID, contactID int64, update models.ContactUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty update", ErrBuildingSQLQuery)
	}

	query := db.builder.Update(contactsTable)

	if v, ok := update.Name.Get(); ok {
		query = query.Set("name", v)
	}
	if v, ok := update.Surename.Get(); ok {
		query = query.Set("surename", v)
	}
	if v, ok := update.Email.Get(); ok {
		query = query.Set("email", v)
	}
	if v, ok := update.PhoneNumber.Get(); ok {
		query = query.Set("phone_number", v)
	}
	if v, ok := update.DateOfBirth.Get(); ok {
		query = query.Set("date_of_birth", v)
	}
	if update.Description.IsNull() {
		query = query.Set("description", nil)
	} else if v, ok := update.Description.Get(); ok {
		query = query.Set("description", v)
	}

	return query.
		Where(sq.Eq{"id": contactID, "user_id": userID}).
		Suffix(returning(contactColumns)).
		ToSql()
}

func (db *DB) buildDeleteContactQuery(userID, contactID int64) (string, []any, error) {
	return db.builder.
		Delete(contactsTable).
		Where(sq.Eq{"id": contactID, "user_id": userID}).
		ToSql()
}
