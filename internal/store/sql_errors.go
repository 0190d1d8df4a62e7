// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorKind is the driver-independent category of a failed database
// operation.
type ErrorKind int

const (
	// UnknownError covers every error the classifier does not recognise.
	UnknownError ErrorKind = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	// ConnectionError covers lost connections, deadlocks and serialization
	// failures: the statement may succeed if attempted again.
	ConnectionError
)

// ErrorClassificator maps a driver error to an [ErrorKind].
type ErrorClassificator interface {
	Classify(err error) ErrorKind
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as a *pgconn.PgError and delegates to
// [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return UnknownError
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return UnknownError
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorKind].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorKind {
	switch pgErr.Code {
	// Class 23: integrity constraint violations
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40: transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return ConnectionError
	}

	return UnknownError
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return UnknownError
	}

	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return UnknownError
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	}

	switch liteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return ConnectionError
	}

	return UnknownError
}
