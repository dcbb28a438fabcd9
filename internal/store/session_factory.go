package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
)

// Session DSN schemes understood by [NewSessionStore].
const (
	SchemeMemory = "memory://"
	SchemeJSON   = "json://"
	SchemeSQLite = "sqlite://"
	SchemeBolt   = "bolt://"
)

// NewSessionStore builds the [SessionStore] selected by dsn:
//
//	memory://        in-process, lost on exit
//	json://<path>    JSON document
//	sqlite://<path>  "session" table of a SQLite file
//	bolt://<path>    "session" bucket of a bbolt file
func NewSessionStore(ctx context.Context, dsn string, log *logger.Logger) (SessionStore, error) {
	switch {
	case strings.HasPrefix(dsn, SchemeMemory):
		return NewMemorySessionStore(), nil
	case strings.HasPrefix(dsn, SchemeJSON):
		return NewFileSessionStore(strings.TrimPrefix(dsn, SchemeJSON)), nil
	case strings.HasPrefix(dsn, SchemeSQLite):
		return NewSQLiteSessionStore(ctx, strings.TrimPrefix(dsn, SchemeSQLite), log)
	case strings.HasPrefix(dsn, SchemeBolt):
		return NewBoltSessionStore(strings.TrimPrefix(dsn, SchemeBolt))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSessionDSN, dsn)
	}
}
