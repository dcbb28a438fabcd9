package store

import "errors"

// Sentinel errors returned by session stores and repositories. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned by [SessionStore.Get] when the slot is empty.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCorrupted is returned when the persisted session cannot be decoded.
	ErrSessionCorrupted = errors.New("session record is corrupted")

	// ErrUnsupportedSessionDSN is returned for a session DSN with an unknown scheme.
	ErrUnsupportedSessionDSN = errors.New("unsupported session store dsn")

	// ErrNotFound is returned when a record addressed by id does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when an INSERT violates a primary key or
	// unique constraint (duplicate id or duplicate user email).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUnsupportedDriver is returned for a database driver other than sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These wrap failures that happen
// before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
