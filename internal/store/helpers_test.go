package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/migrations"
	"github.com/MKhiriev/go-contacts-book/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, migrations.Postgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func strPtr(s string) *string {
	return &s
}

func sampleContact(userID int64) models.Contact {
	return models.Contact{
		Name:        "Ann",
		Surename:    "Lee",
		Email:       "ann@example.com",
		PhoneNumber: "+1-555-0100",
		DateOfBirth: models.NewDate(1990, time.May, 1),
		UserID:      userID,
	}
}

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows(contactColumns)
}

func addContactRow(rows *sqlmock.Rows, id int64, c models.Contact) *sqlmock.Rows {
	var desc any
	if c.Description != nil {
		desc = *c.Description
	}
	return rows.AddRow(id, c.Name, c.Surename, c.Email, c.PhoneNumber, c.DateOfBirth.Time, desc, c.UserID)
}
