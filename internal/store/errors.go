package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registering a user whose
	// username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the lookup, and when a
	// contact is created for an owner that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrContactNotFound is returned when no contact with the given id is
	// owned by the given user. Missing and foreign contacts are
	// indistinguishable.
	ErrContactNotFound = errors.New("contact not found")

	// ErrMissingRequiredField is returned when storage rejects a NULL in a
	// NOT NULL column.
	ErrMissingRequiredField = errors.New("required field is missing")

	// ErrDatabaseUnavailable is returned when the driver reports a lost
	// connection, a busy database or a transaction rolled back by the
	// server. The same request may succeed later.
	ErrDatabaseUnavailable = errors.New("database temporarily unavailable")

	// ErrUnsupportedDSN is returned when the DSN does not select a known
	// database driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an UPDATE or DELETE
	// without result rows fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
