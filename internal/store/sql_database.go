package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/migrations"
)

// DB is a connection pool bound to one SQL dialect. It carries the query
// builder with the dialect's placeholder format and the matching error
// classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect migrations.Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.SQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewDB opens the database selected by cfg.DSN: PostgreSQL for postgres://,
// postgresql:// and key=value DSNs, SQLite for sqlite3://, file: and
// :memory:.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dialectFromDSN(cfg.DSN) {
	case migrations.Postgres:
		return NewConnectPostgres(ctx, cfg, log)
	case migrations.SQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
}

func dialectFromDSN(dsn string) migrations.Dialect {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.Postgres
	case strings.HasPrefix(dsn, "sqlite3://"), strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, ":memory:"):
		return migrations.SQLite
	case strings.Contains(dsn, "host=") || strings.Contains(dsn, "dbname="):
		return migrations.Postgres
	default:
		return ""
	}
}

// redactDSN keeps only the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	return "..."
}

// Dialect reports the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		return err
	}

	db.logger.Info().Str("dialect", string(db.dialect)).Int("applied", applied).Msg("migrations applied")
	return nil
}

// queryError converts a driver error from a query or statement into a store
// error. Constraint violations map to domain sentinels, connection failures
// to ErrDatabaseUnavailable and sql.ErrNoRows to notFound; anything else is
// wrapped with fallback.
func (db *DB) queryError(err error, notFound, fallback error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrUsernameAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case NotNullViolation:
		return fmt.Errorf("%w: %w", ErrMissingRequiredField, err)
	case ConnectionError:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
