// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/migrations"
	"github.com/MKhiriev/go-employee-registry/models"
)

const (
	sessionTable = "session"
	sessionSlot  = 1
)

// sqliteSessionStore keeps the session in the single-row "session" table of
// a local SQLite database.
type sqliteSessionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSessionStore opens (creating if needed) the SQLite file at path,
// applies the client migrations and returns a [SessionStore] over it.
func NewSQLiteSessionStore(ctx context.Context, path string, log *logger.Logger) (SessionStore, error) {
	db, err := NewConnectSQLite(ctx, path, log)
	if err != nil {
		return nil, fmt.Errorf("session db connection error: %w", err)
	}

	if err = migrations.MigrateClient(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session db migration failed: %w", err)
	}

	return newSQLiteSessionStore(db, log), nil
}

func newSQLiteSessionStore(db *DB, log *logger.Logger) *sqliteSessionStore {
	return &sqliteSessionStore{db: db, logger: log}
}

func (s *sqliteSessionStore) Get(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Select("payload").
		From(sessionTable).
		Where(sq.Eq{"slot": sessionSlot}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sqliteSessionStore.Get").Msg("error reading session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var session models.Session
	if err = json.Unmarshal([]byte(payload), &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCorrupted, err)
	}

	return session, nil
}

func (s *sqliteSessionStore) Set(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	query, args, err := s.db.builder().
		Insert(sessionTable).
		Columns("slot", "payload", "updated_at").
		Values(sessionSlot, string(payload), formatTime(time.Now())).
		Suffix("ON CONFLICT (slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteSessionStore.Set").Msg("error writing session row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Delete(sessionTable).
		Where(sq.Eq{"slot": sessionSlot}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteSessionStore.Clear").Msg("error deleting session row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
