package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-employee-registry/models"
)

var (
	bucketSession = []byte("session")
	keyCurrent    = []byte("current")
)

// boltSessionStore keeps the session under a single key of a bbolt bucket.
type boltSessionStore struct {
	db *bolt.DB
}

// NewBoltSessionStore opens the bbolt file at path and prepares the session bucket.
func NewBoltSessionStore(path string) (SessionStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &boltSessionStore{db: db}, nil
}

func (s *boltSessionStore) Get(_ context.Context) (models.Session, error) {
	var session models.Session

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSession).Get(keyCurrent)
		if data == nil {
			return ErrSessionNotFound
		}
		if err := json.Unmarshal(data, &session); err != nil {
			return fmt.Errorf("%w: %w", ErrSessionCorrupted, err)
		}
		return nil
	})

	return session, err
}

func (s *boltSessionStore) Set(_ context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyCurrent, data)
	})
}

func (s *boltSessionStore) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyCurrent)
	})
}

func (s *boltSessionStore) Close() error {
	return s.db.Close()
}
