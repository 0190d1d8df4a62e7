// Package migrations embeds the SQL schema of the contacts database, one
// migration set per supported dialect, and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect selects the migration set.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDialect is returned for a dialect without a migration set.
var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// Migrate applies all pending migrations for dialect and returns the
// number of migrations applied.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) (int, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	gooseDialect, dir, err := resolve(dialect)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return 0, fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}

func resolve(dialect Dialect) (goose.Dialect, string, error) {
	switch dialect {
	case Postgres:
		return goose.DialectPostgres, "postgres", nil
	case SQLite:
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}
